package systems

import (
	"math"

	"github.com/automoto/arena-survivor/components"
	cfg "github.com/automoto/arena-survivor/config"
	"github.com/automoto/arena-survivor/events"
	"github.com/automoto/arena-survivor/gamemath"
	"github.com/automoto/arena-survivor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

const enemyHitFlashFrames = 6

// damageEnemy subtracts amount from a live enemy, reports the hit and
// starts the death path when health reaches zero. It returns false when
// the enemy could not be damaged.
func damageEnemy(ecs *ecs.ECS, e *donburi.Entry, amount float64, source cfg.WeaponType, crit bool) bool {
	if amount <= 0 || !alive(e) {
		return false
	}
	game := GetGame(ecs.World)
	health := components.Health.Get(e)
	t := components.Transform.Get(e)
	isBoss := e.HasComponent(components.Boss)

	dealt := math.Min(amount, health.Current)
	health.Current -= amount
	components.Flash.Get(e).Duration = enemyHitFlashFrames

	game.Events.OnHit(events.Hit{
		Target: e.Entity(),
		X:      t.X,
		Y:      t.Y,
		Damage: amount,
		Crit:   crit,
		Source: source,
		Boss:   isBoss,
	})
	game.Events.RecordDamage(events.Attribution{Source: source, Damage: dealt})
	creditWeapon(ecs.World, source, dealt)

	if health.Current > 0 {
		return true
	}
	if isBoss {
		defeatBoss(ecs, e)
	} else {
		killEnemy(game, e)
	}
	return true
}

// creditWeapon adds dealt to the owned weapon's running total.
func creditWeapon(w donburi.World, source cfg.WeaponType, dealt float64) {
	pe, ok := GetPlayer(w)
	if !ok {
		return
	}
	if weapon, ok := components.Player.Get(pe).Weapon(source); ok {
		weapon.TotalDamage += dealt
	}
}

// killEnemy queues a regular enemy for removal. UpdateDeaths drops its XP
// orb and removes the entity.
func killEnemy(game *components.GameData, e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	if enemy.Dead {
		return
	}
	enemy.Dead = true
	enemy.Burning = components.BurnData{}
	game.Kills++

	t := components.Transform.Get(e)
	game.Events.OnEnemyDeath(events.EnemyDeath{
		Entity: e.Entity(),
		Kind:   enemy.Kind,
		X:      t.X,
		Y:      t.Y,
		XP:     enemy.XP,
	})
	game.Events.EmitBurst(events.Burst{Kind: events.BurstDeath, X: t.X, Y: t.Y, Count: 8, Radius: t.Radius})
}

// rollDamage applies the critical-hit roll for the player's crit stacks.
func rollDamage(game *components.GameData, player *components.PlayerData, base float64) (float64, bool) {
	chance := CritChance(player.Stacks(cfg.PassiveCritical))
	if chance > 0 && game.Rand.Float64() < chance {
		return base * cfg.Passives.CritMultiplier, true
	}
	return base, false
}

// explode damages every live enemy whose circle intersects the blast, except
// skip. It returns the number of enemies hit.
func explode(ecs *ecs.ECS, x, y, radius, damage float64, source cfg.WeaponType, skip donburi.Entity) int {
	if radius <= 0 {
		return 0
	}
	game := GetGame(ecs.World)
	game.Events.EmitBurst(events.Burst{Kind: events.BurstExplosion, X: x, Y: y, Count: 12, Radius: radius})

	var hit []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if e.Entity() == skip || !alive(e) {
			return
		}
		t := components.Transform.Get(e)
		if gamemath.CirclesOverlap(x, y, radius, t.X, t.Y, t.Radius) {
			hit = append(hit, e)
		}
	})
	for _, e := range hit {
		damageEnemy(ecs, e, damage, source, false)
	}
	return len(hit)
}

// ContactDamage is the damage an armored player takes from a contact hit.
func ContactDamage(raw float64, armorStacks int) float64 {
	return math.Floor(raw * (1 - ArmorReduction(armorStacks)))
}

// damagePlayer applies already-mitigated damage to the player and starts
// the invulnerability window.
func damagePlayer(ecs *ecs.ECS, pe *donburi.Entry, amount float64, fromEnemy bool) {
	game := GetGame(ecs.World)
	player := components.Player.Get(pe)
	if player.Dead {
		return
	}
	health := components.Health.Get(pe)

	health.Current -= amount
	player.InvulnFrames = cfg.Player.InvulnFrames
	components.Flash.Get(pe).Duration = cfg.Effects.PlayerDamageFlashTime

	game.Events.OnPlayerDamaged(events.PlayerDamaged{
		Amount:    amount,
		Remaining: health.Current,
		FromEnemy: fromEnemy,
	})
	requestShake(game, cfg.Effects.PlayerDamageShake, cfg.Effects.PlayerDamageShakeTime)
	requestFlash(game, cfg.Effects.PlayerDamageFlash, cfg.Effects.PlayerDamageFlashTime)

	if health.Current > 0 {
		return
	}
	health.Current = 0
	player.Dead = true
	game.Over = true
	game.Logger.Info("player killed", zap.Int("tick", game.Tick), zap.Int("kills", game.Kills))
	game.Events.OnPlayerKilled(events.PlayerKilled{Tick: game.Tick, Time: game.Time()})
}
