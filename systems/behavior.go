package systems

import (
	"math"

	"github.com/automoto/arena-survivor/components"
	cfg "github.com/automoto/arena-survivor/config"
	"github.com/automoto/arena-survivor/events"
	"github.com/automoto/arena-survivor/gamemath"
	"github.com/automoto/arena-survivor/pool"
	"github.com/automoto/arena-survivor/systems/factory"
	"github.com/automoto/arena-survivor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// minionSpawn is a tank add created after the behavior pass.
type minionSpawn struct {
	x, y  float64
	stats factory.EnemyStats
}

// UpdateEnemies groups enemies by behavior and runs each group's state
// machine.
func UpdateEnemies(ecs *ecs.ECS) {
	game := GetGame(ecs.World)
	pe, ok := GetPlayer(ecs.World)
	if !ok {
		return
	}
	pt := components.Transform.Get(pe)

	rebuildBuckets(ecs.World, game)

	var minions []minionSpawn
	for _, e := range game.Buckets[cfg.BehaviorChase] {
		updateChase(e, pt)
	}
	for _, e := range game.Buckets[cfg.BehaviorDodge] {
		updateDodge(game, e, pt)
	}
	for _, e := range game.Buckets[cfg.BehaviorTank] {
		minions = updateTank(game, e, pt, minions)
	}
	for _, e := range game.Buckets[cfg.BehaviorFly] {
		updateFly(e, pt)
	}
	for _, e := range game.Buckets[cfg.BehaviorTeleport] {
		updateTeleport(game, e, pt)
	}
	for _, e := range game.Buckets[cfg.BehaviorBoss] {
		updateBoss(ecs, game, e, pt)
	}

	for _, m := range minions {
		factory.CreateEnemy(ecs, m.x, m.y, m.stats)
	}
}

func rebuildBuckets(w donburi.World, game *components.GameData) {
	for i := range game.Buckets {
		game.Buckets[i] = game.Buckets[i][:0]
	}
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if !alive(e) {
			return
		}
		enemy := components.Enemy.Get(e)
		enemy.Age++
		game.Buckets[enemy.Behavior] = append(game.Buckets[enemy.Behavior], e)
	})
}

// step moves e by (dx, dy) scaled to speed.
func step(t *components.TransformData, dx, dy, speed float64) {
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	t.X += dx / l * speed
	t.Y += dy / l * speed
	t.X, t.Y = clampToArena(t.X, t.Y, t.Radius)
}

func updateChase(e *donburi.Entry, pt *components.TransformData) {
	enemy := components.Enemy.Get(e)
	t := components.Transform.Get(e)
	dx, dy, dist := gamemath.Direction(t.X, t.Y, pt.X, pt.Y)
	if dist == 0 {
		return
	}
	if orbit, ok := enemy.Variant.Trait.(cfg.OrbitTrait); ok {
		px, py := gamemath.Perpendicular(dx, dy)
		dx += px * orbit.Strength * enemy.OrbitDir
		dy += py * orbit.Strength * enemy.OrbitDir
	}
	step(t, dx, dy, enemy.Speed)
}

func updateDodge(game *components.GameData, e *donburi.Entry, pt *components.TransformData) {
	enemy := components.Enemy.Get(e)
	params, _ := enemy.Params.(cfg.DodgeParams)
	t := components.Transform.Get(e)

	cx, cy, dist := gamemath.Direction(t.X, t.Y, pt.X, pt.Y)
	if dist == 0 {
		return
	}

	// Repulsion from nearby player projectiles, weighted by 1/d².
	var rx, ry float64
	r2 := params.Radius * params.Radius
	for _, pr := range game.Projectiles.Active() {
		if pr.Owner != pool.OwnerPlayer || !gamemath.WithinBox(t.X, t.Y, pr.X, pr.Y, params.Radius) {
			continue
		}
		d2 := gamemath.DistSq(pr.X, pr.Y, t.X, t.Y)
		if d2 == 0 || d2 > r2 {
			continue
		}
		d := math.Sqrt(d2)
		rx += (t.X - pr.X) / d / d2
		ry += (t.Y - pr.Y) / d / d2
	}

	dx, dy := cx, cy
	if l := math.Hypot(rx, ry); l > 0 {
		w := params.DodgeWeight
		dx = rx/l*w + cx*(1-w)
		dy = ry/l*w + cy*(1-w)
	}
	if zz, ok := enemy.Variant.Trait.(cfg.ZigZagTrait); ok && zz.Period > 0 {
		side := 1.0
		if (enemy.Age/zz.Period)%2 == 1 {
			side = -1
		}
		px, py := gamemath.Perpendicular(cx, cy)
		dx += px * zz.Strength * side
		dy += py * zz.Strength * side
	}
	step(t, dx, dy, enemy.Speed)
}

func updateTank(game *components.GameData, e *donburi.Entry, pt *components.TransformData, minions []minionSpawn) []minionSpawn {
	enemy := components.Enemy.Get(e)
	t := components.Transform.Get(e)
	dx, dy, _ := gamemath.Direction(t.X, t.Y, pt.X, pt.Y)
	step(t, dx, dy, enemy.Speed)

	params, ok := enemy.Params.(cfg.TankParams)
	if !ok || enemy.MinionsSpawned {
		return minions
	}
	if components.Health.Get(e).Ratio() >= params.MinionThreshold {
		return minions
	}
	enemy.MinionsSpawned = true

	hs, ds := Difficulty(game.Time(), game.BossesKilled)
	mt := cfg.Enemy.Types[params.MinionKind]
	normal := cfg.VariantConfig{Name: "normal", HealthMult: 1, SpeedMult: 1, DamageMult: 1, SizeMult: 1}
	for i := 0; i < params.MinionCount; i++ {
		angle := 2 * math.Pi * float64(i) / float64(params.MinionCount)
		ox, oy := velocityAt(angle, t.Radius+mt.Radius+4)
		stats := factory.NewEnemyStats(params.MinionKind, normal, hs, ds)
		stats.Minion = true
		x, y := clampToArena(t.X+ox, t.Y+oy, stats.Radius)
		minions = append(minions, minionSpawn{x: x, y: y, stats: stats})
	}
	return minions
}

func updateFly(e *donburi.Entry, pt *components.TransformData) {
	enemy := components.Enemy.Get(e)
	params, _ := enemy.Params.(cfg.FlyParams)
	t := components.Transform.Get(e)
	dx, dy, dist := gamemath.Direction(t.X, t.Y, pt.X, pt.Y)
	if dist == 0 {
		return
	}

	if dive, ok := enemy.Variant.Trait.(cfg.DiveTrait); ok {
		if enemy.DiveTicks > 0 {
			enemy.DiveTicks--
			step(t, dx, dy, enemy.Speed*dive.Multiplier)
			return
		}
		if enemy.SpecialCooldown > 0 {
			enemy.SpecialCooldown--
		} else {
			enemy.SpecialCooldown = dive.Cooldown
			enemy.DiveTicks = dive.Duration
		}
	}

	if dist > params.OrbitRadius {
		step(t, dx, dy, enemy.Speed)
		return
	}
	px, py := gamemath.Perpendicular(dx, dy)
	step(t, px*enemy.OrbitDir, py*enemy.OrbitDir, enemy.Speed)
}

func updateTeleport(game *components.GameData, e *donburi.Entry, pt *components.TransformData) {
	enemy := components.Enemy.Get(e)
	params, _ := enemy.Params.(cfg.TeleportParams)
	t := components.Transform.Get(e)
	dx, dy, dist := gamemath.Direction(t.X, t.Y, pt.X, pt.Y)

	if enemy.SpecialCooldown > 0 {
		enemy.SpecialCooldown--
	}
	if enemy.SpecialCooldown == 0 && dist > params.Leash {
		game.Events.EmitBurst(events.Burst{Kind: events.BurstTeleportOut, X: t.X, Y: t.Y, Count: 6, Radius: t.Radius})
		ox, oy := velocityAt(game.Rand.Float64()*2*math.Pi, params.Distance)
		t.X, t.Y = clampToArena(pt.X+ox, pt.Y+oy, t.Radius)
		enemy.SpecialCooldown = params.Cooldown
		game.Events.EmitBurst(events.Burst{Kind: events.BurstTeleportIn, X: t.X, Y: t.Y, Count: 6, Radius: t.Radius})
		return
	}
	if dist == 0 {
		return
	}
	if drift, ok := enemy.Variant.Trait.(cfg.DriftTrait); ok {
		px, py := gamemath.Perpendicular(dx, dy)
		dx += px * drift.Strength * enemy.OrbitDir
		dy += py * drift.Strength * enemy.OrbitDir
	}
	step(t, dx, dy, enemy.Speed*params.ClosingSpeed)
}
