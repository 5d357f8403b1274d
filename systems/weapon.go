package systems

import (
	"github.com/automoto/arena-survivor/components"
	cfg "github.com/automoto/arena-survivor/config"
	"github.com/automoto/arena-survivor/gamemath"
	"github.com/automoto/arena-survivor/pool"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const flameJitter = 0.05

// UpdateWeapons fires every ready weapon at the nearest enemy in range.
// A weapon with nothing in range stays ready.
func UpdateWeapons(ecs *ecs.ECS) {
	game := GetGame(ecs.World)
	pe, ok := GetPlayer(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(pe)
	if player.Dead {
		return
	}
	pt := components.Transform.Get(pe)

	for _, w := range player.Weapons {
		if w.FramesSinceFire < w.FireRate {
			w.FramesSinceFire++
		}
		if !w.Ready() || game.DefeatInProgress {
			continue
		}
		target, ok := nearestEnemy(ecs.World, pt.X, pt.Y, w.Range)
		if !ok {
			continue
		}
		fireWeapon(ecs, game, player, w, pt, target)
		w.FramesSinceFire = 0
	}
}

func fireWeapon(ecs *ecs.ECS, game *components.GameData, player *components.PlayerData, w *components.WeaponData, pt *components.TransformData, target *donburi.Entry) {
	wc := cfg.Weapons.Types[w.Type]
	tt := components.Transform.Get(target)
	aim := angleOf(tt.X-pt.X, tt.Y-pt.Y)
	blast := BlastMultiplier(player)
	shot := pool.Shot{
		X: pt.X, Y: pt.Y,
		Damage: w.Damage,
		Life:   wc.Life,
		Radius: wc.Radius,
		Source: w.Type,
	}
	projectiles := game.Projectiles

	switch sp := wc.Special.(type) {
	case cfg.ChainSpecial:
		fireChain(ecs, game, player, w, sp, pt, blast)
	case cfg.HomingSpecial:
		fireHoming(ecs.World, projectiles, w, sp, shot, blast)
	case cfg.BarrelSpecial:
		fireBarrels(ecs.World, projectiles, w, sp, shot)
	case cfg.PelletSpecial:
		for i := 0; i < w.ProjectileCount; i++ {
			angle := aim + (game.Rand.Float64()-0.5)*sp.Spread
			s := shot
			s.Damage *= 1 + (game.Rand.Float64()*2-1)*sp.DamageVariance
			speed := w.ProjectileSpeed * (1 + (game.Rand.Float64()*2-1)*sp.SpeedVariance)
			s.VX, s.VY = velocityAt(angle, speed)
			projectiles.Basic(s, w.Pierce)
		}
	case cfg.FanSpecial:
		total := sp.Angle + sp.AnglePerLevel*float64(w.Level-1)
		for i := 0; i < w.ProjectileCount; i++ {
			angle := aim
			if w.ProjectileCount > 1 {
				angle = aim - total/2 + total*float64(i)/float64(w.ProjectileCount-1)
			}
			s := shot
			s.VX, s.VY = velocityAt(angle, w.ProjectileSpeed)
			projectiles.Basic(s, w.Pierce)
		}
	case cfg.ExplosiveSpecial:
		for _, angle := range spreadAngles(aim, w.ProjectileCount, wc.Spread) {
			s := shot
			s.VX, s.VY = velocityAt(angle, w.ProjectileSpeed)
			projectiles.Explosive(s, sp.Radius*blast, sp.DamageShare)
		}
	case cfg.BurnSpecial:
		for _, angle := range spreadAngles(aim, w.ProjectileCount, wc.Spread) {
			angle += (game.Rand.Float64()*2 - 1) * flameJitter
			s := shot
			s.VX, s.VY = velocityAt(angle, w.ProjectileSpeed)
			projectiles.Flame(s, w.Pierce, sp)
		}
	default:
		for _, angle := range spreadAngles(aim, w.ProjectileCount, wc.Spread) {
			s := shot
			s.VX, s.VY = velocityAt(angle, w.ProjectileSpeed)
			projectiles.Basic(s, w.Pierce)
		}
	}
}

// spreadAngles centers n directions spread apart around aim.
func spreadAngles(aim float64, n int, spread float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = aim + (float64(i)-float64(n-1)/2)*spread
	}
	return out
}

// fireHoming distributes the weapon's projectiles over the nearest
// targets, round robin.
func fireHoming(w donburi.World, projectiles *pool.Pool, weapon *components.WeaponData, sp cfg.HomingSpecial, shot pool.Shot, blast float64) {
	targets := nearestEnemies(w, shot.X, shot.Y, weapon.Range, sp.MaxTargets, nil)
	if len(targets) == 0 {
		return
	}
	for i := 0; i < weapon.ProjectileCount; i++ {
		target := targets[i%len(targets)]
		tt := components.Transform.Get(target)
		s := shot
		s.VX, s.VY = gamemath.HomingVelocity(s.X, s.Y, tt.X, tt.Y, weapon.ProjectileSpeed)
		pr := projectiles.Homing(s, target.Entity(), sp.Strength, weapon.Pierce, sp.MaxHits)
		if sp.BlastRadius > 0 {
			pr.ExplosionRadius = sp.BlastRadius * blast
			pr.ExplosionShare = sp.BlastShare
		}
	}
}

// fireBarrels fires one projectile per target, one barrel per weapon
// level or per projectile when a merge or multishot grants more, each
// offset sideways from the muzzle.
func fireBarrels(w donburi.World, projectiles *pool.Pool, weapon *components.WeaponData, sp cfg.BarrelSpecial, shot pool.Shot) {
	barrels := min(max(weapon.Level, weapon.ProjectileCount), cfg.Weapons.Leveling.MaxProjectileCount)
	targets := nearestEnemies(w, shot.X, shot.Y, weapon.Range, barrels, nil)
	n := len(targets)
	for i, target := range targets {
		tt := components.Transform.Get(target)
		dx, dy, dist := gamemath.Direction(shot.X, shot.Y, tt.X, tt.Y)
		if dist == 0 {
			dx, dy = 1, 0
		}
		px, py := gamemath.Perpendicular(dx, dy)
		offset := (float64(i) - float64(n-1)/2) * sp.MuzzleOffset
		s := shot
		s.X += px * offset
		s.Y += py * offset
		s.VX, s.VY = dx*weapon.ProjectileSpeed, dy*weapon.ProjectileSpeed
		projectiles.Basic(s, weapon.Pierce)
	}
}
