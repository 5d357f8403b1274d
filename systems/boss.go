package systems

import (
	"math"

	"github.com/automoto/arena-survivor/components"
	cfg "github.com/automoto/arena-survivor/config"
	"github.com/automoto/arena-survivor/events"
	"github.com/automoto/arena-survivor/gamemath"
	"github.com/automoto/arena-survivor/pool"
	"github.com/automoto/arena-survivor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// BossPhaseFor maps a health ratio to a phase. It has no hysteresis.
func BossPhaseFor(ratio float64) components.BossPhase {
	p := cfg.Boss.Params
	switch {
	case ratio > p.Phase1Above:
		return components.BossPhase1
	case ratio >= p.Phase3Below:
		return components.BossPhase2
	}
	return components.BossPhase3
}

// BossPhaseSpeed is the chase speed multiplier of a phase.
func BossPhaseSpeed(phase components.BossPhase) float64 {
	p := cfg.Boss.Params
	switch phase {
	case components.BossPhase1:
		return p.Phase1Speed
	case components.BossPhase2:
		return p.Phase2Speed
	}
	return p.Phase3Speed
}

// DashCooldownFor is the phase 3 dash cooldown after bossesKilled kills.
func DashCooldownFor(bossesKilled int) int {
	p := cfg.Boss.Params
	kills := min(max(bossesKilled, 0), p.DashCooldownKillCap)
	return max(p.DashCooldownFloor, p.DashCooldown-p.DashCooldownPerKill*kills)
}

func updateBoss(ecs *ecs.ECS, game *components.GameData, e *donburi.Entry, pt *components.TransformData) {
	enemy := components.Enemy.Get(e)
	boss := components.Boss.Get(e)
	t := components.Transform.Get(e)
	p := cfg.Boss.Params

	boss.Phase = BossPhaseFor(components.Health.Get(e).Ratio())
	enemy.Speed = enemy.BaseSpeed * BossPhaseSpeed(boss.Phase)

	if boss.Phase == components.BossPhase3 {
		updateBossDash(boss, enemy, t, pt)
	} else {
		boss.Dashing = false
		dx, dy, _ := gamemath.Direction(t.X, t.Y, pt.X, pt.Y)
		step(t, dx, dy, enemy.Speed)
	}

	if gamemath.DistSq(t.X, t.Y, pt.X, pt.Y) > p.LeashDistance*p.LeashDistance {
		leashBoss(game, boss, t, pt)
	}

	boss.MissileTimer--
	if boss.MissileTimer <= 0 {
		boss.MissileTimer = p.MissileInterval
		fireBossVolley(game, boss, t, pt)
	}
}

func updateBossDash(boss *components.BossData, enemy *components.EnemyData, t, pt *components.TransformData) {
	p := cfg.Boss.Params

	if boss.Dashing {
		boss.DashTimer++
		dx, dy, dist := gamemath.Direction(t.X, t.Y, boss.DashTargetX, boss.DashTargetY)
		speed := enemy.BaseSpeed * p.DashSpeed
		if dist <= speed {
			t.X, t.Y = clampToArena(boss.DashTargetX, boss.DashTargetY, t.Radius)
		} else {
			step(t, dx, dy, speed)
		}
		remaining := gamemath.Dist(t.X, t.Y, boss.DashTargetX, boss.DashTargetY)
		if boss.DashTimer >= p.DashDuration || remaining <= p.DashArriveDistance {
			boss.Dashing = false
			boss.DashCooldown = DashCooldownFor(boss.Level - 1)
		}
		return
	}

	if boss.DashCooldown > 0 {
		boss.DashCooldown--
		dx, dy, _ := gamemath.Direction(t.X, t.Y, pt.X, pt.Y)
		step(t, dx, dy, enemy.Speed)
		return
	}

	boss.Dashing = true
	boss.DashTimer = 0
	boss.DashTargetX, boss.DashTargetY = pt.X, pt.Y
}

// leashBoss teleports the boss past the player's previous position, on the
// far side from where the boss was.
func leashBoss(game *components.GameData, boss *components.BossData, t, pt *components.TransformData) {
	p := cfg.Boss.Params
	game.Events.EmitBurst(events.Burst{Kind: events.BurstTeleportOut, X: t.X, Y: t.Y, Count: 16, Radius: t.Radius})

	dx, dy, dist := gamemath.Direction(t.X, t.Y, pt.PrevX, pt.PrevY)
	if dist == 0 {
		dx, dy = 1, 0
	}
	behind := p.LeashMinBehind + game.Rand.Float64()*(p.LeashMaxBehind-p.LeashMinBehind)
	t.X, t.Y = clampToArena(pt.PrevX+dx*behind, pt.PrevY+dy*behind, t.Radius)
	boss.Dashing = false
	boss.Teleports++

	game.Events.EmitBurst(events.Burst{Kind: events.BurstTeleportIn, X: t.X, Y: t.Y, Count: 16, Radius: t.Radius})
}

// fireBossVolley launches the phase's missile spread at the player.
func fireBossVolley(game *components.GameData, boss *components.BossData, t, pt *components.TransformData) {
	p := cfg.Boss.Params
	v := p.Volleys[int(boss.Phase)-1]
	lvl := float64(max(boss.Level, 1) - 1)
	damage := v.Damage * math.Pow(p.MissileDamagePerLevel, lvl)
	speed := v.Speed * math.Pow(p.MissileSpeedPerLevel, lvl)

	aim := angleOf(pt.X-t.X, pt.Y-t.Y)
	for i := 0; i < v.Count; i++ {
		angle := aim + (float64(i)-float64(v.Count-1)/2)*p.MissileSpread
		vx, vy := velocityAt(angle, speed)
		game.Projectiles.BossMissile(pool.Shot{
			X: t.X, Y: t.Y,
			VX: vx, VY: vy,
			Damage: damage,
			Life:   p.MissileLife,
			Radius: p.MissileRadius,
		}, v.Homing, p.MissileExplosion)
	}
}

// defeatBoss starts the defeat sequence once. It clears the field and
// schedules the boss's removal and the victory signal on the tick clock.
func defeatBoss(ecs *ecs.ECS, e *donburi.Entry) {
	game := GetGame(ecs.World)
	if game.DefeatInProgress {
		return
	}
	game.DefeatInProgress = true

	boss := components.Boss.Get(e)
	boss.Defeated = true
	boss.Dashing = false
	game.BossesKilled++

	// Non-boss enemies leave without dropping XP.
	tags.Enemy.Each(ecs.World, func(other *donburi.Entry) {
		if other.Entity() == e.Entity() {
			return
		}
		enemy := components.Enemy.Get(other)
		enemy.Dead = true
		enemy.XP = 0
		enemy.Burning = components.BurnData{}
		components.Health.Get(other).Current = 0
	})
	game.Projectiles.ReleaseAll()

	t := components.Transform.Get(e)
	game.Events.OnEnemyDeath(events.EnemyDeath{
		Entity: e.Entity(),
		Boss:   true,
		X:      t.X,
		Y:      t.Y,
		XP:     components.Enemy.Get(e).XP,
	})
	game.Events.EmitBurst(events.Burst{Kind: events.BurstExplosion, X: t.X, Y: t.Y, Count: 40, Radius: t.Radius * 2})
	requestShake(game, cfg.Effects.BossDefeatShake, cfg.Effects.BossDefeatShakeTime)

	game.Schedule(cfg.Director.BossRemovalDelayTicks, components.DelayedRemoveBoss, e.Entity())
	game.Schedule(cfg.Director.BossVictoryDelayTicks, components.DelayedVictory, e.Entity())

	game.Logger.Info("boss defeated",
		zap.Int("kills", game.BossesKilled),
		zap.Int("level", boss.Level),
		zap.Int("tick", game.Tick),
	)
}
