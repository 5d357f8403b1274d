package systems

import (
	"github.com/automoto/arena-survivor/components"
	cfg "github.com/automoto/arena-survivor/config"
	"github.com/automoto/arena-survivor/gamemath"
	"github.com/automoto/arena-survivor/pool"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles ages, steers and moves every projectile in flight,
// releasing the ones whose life ran out or that left the play area.
func UpdateProjectiles(ecs *ecs.ECS) {
	game := GetGame(ecs.World)
	projectiles := game.Projectiles

	var pt *components.TransformData
	if pe, ok := GetPlayer(ecs.World); ok {
		pt = components.Transform.Get(pe)
	}

	for i := projectiles.InFlight() - 1; i >= 0; i-- {
		pr := projectiles.Active()[i]
		pr.Life--
		if pr.Life <= 0 {
			projectiles.ReleaseAt(i)
			continue
		}
		if pr.Homing {
			steer(ecs.World, pr, pt)
		}
		pr.Move()
		if outOfRange(pr, pt) {
			projectiles.ReleaseAt(i)
		}
	}
}

// steer turns a homing projectile. A player projectile whose target is gone
// searches for a new one and flies straight when none is found.
func steer(w donburi.World, pr *pool.Projectile, pt *components.TransformData) {
	if pr.Owner == pool.OwnerEnemy {
		if pt != nil {
			pr.VX, pr.VY = gamemath.BlendVelocity(pr.X, pr.Y, pr.VX, pr.VY, pt.X, pt.Y, pr.Speed, pr.HomingStrength)
		}
		return
	}

	var target *donburi.Entry
	ok := false
	if pr.HasTarget {
		target, ok = resolveEnemy(w, pr.Target)
	}
	if !ok {
		target, ok = nearestEnemy(w, pr.X, pr.Y, cfg.Weapons.Types[pr.Source].Range)
		if !ok {
			pr.HasTarget = false
			return
		}
		pr.Target = target.Entity()
		pr.HasTarget = true
	}

	tt := components.Transform.Get(target)
	if pr.HomingStrength >= 1 {
		pr.VX, pr.VY = gamemath.HomingVelocity(pr.X, pr.Y, tt.X, tt.Y, pr.Speed)
		return
	}
	pr.VX, pr.VY = gamemath.BlendVelocity(pr.X, pr.Y, pr.VX, pr.VY, tt.X, tt.Y, pr.Speed, pr.HomingStrength)
}

func outOfRange(pr *pool.Projectile, pt *components.TransformData) bool {
	if pr.X < 0 || pr.Y < 0 || pr.X > cfg.Sim.ArenaWidth || pr.Y > cfg.Sim.ArenaHeight {
		return true
	}
	if pt == nil {
		return false
	}
	d := cfg.Sim.DespawnDistance
	return gamemath.DistSq(pr.X, pr.Y, pt.X, pt.Y) > d*d
}
