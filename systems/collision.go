package systems

import (
	"github.com/automoto/arena-survivor/components"
	cfg "github.com/automoto/arena-survivor/config"
	"github.com/automoto/arena-survivor/events"
	"github.com/automoto/arena-survivor/gamemath"
	"github.com/automoto/arena-survivor/pool"
	"github.com/automoto/arena-survivor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves projectile→enemy, enemy→player and enemy
// projectile→player collisions, in that order.
func UpdateCollisions(ecs *ecs.ECS) {
	game := GetGame(ecs.World)
	pe, ok := GetPlayer(ecs.World)
	if !ok {
		return
	}
	resolveProjectileHits(ecs, game, components.Player.Get(pe))
	resolveContactHits(ecs, pe)
	resolveEnemyProjectiles(ecs, game, pe)
}

func resolveProjectileHits(ecs *ecs.ECS, game *components.GameData, player *components.PlayerData) {
	projectiles := game.Projectiles
	d := cfg.Collision.ProjectilePrefilter

	for i := projectiles.InFlight() - 1; i >= 0; i-- {
		// A boss defeat earlier in the pass releases every projectile.
		active := projectiles.Active()
		if i >= len(active) {
			continue
		}
		pr := active[i]
		if pr.Owner != pool.OwnerPlayer {
			continue
		}

		for _, e := range projectileCandidates(ecs.World, pr) {
			if !alive(e) || pr.AlreadyHit(e.Entity()) {
				continue
			}
			t := components.Transform.Get(e)
			if !gamemath.WithinBox(pr.X, pr.Y, t.X, t.Y, d) {
				continue
			}
			if !gamemath.CirclesOverlap(pr.X, pr.Y, pr.Radius, t.X, t.Y, t.Radius) {
				continue
			}

			pr.Hits++
			pr.HitList = append(pr.HitList, e.Entity())
			applyProjectileHit(ecs, game, player, pr, e, t)
			if !pr.Active() || pr.Exhausted() {
				break
			}
		}

		if pr.Active() && pr.Exhausted() {
			projectiles.Release(pr)
		}
	}
}

// projectileCandidates returns the enemies sharing a broad-phase cell with
// the projectile.
func projectileCandidates(w donburi.World, pr *pool.Projectile) []*donburi.Entry {
	if pr.Object == nil || pr.Object.Space == nil {
		return nil
	}
	check := pr.Object.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return nil
	}
	var out []*donburi.Entry
	for _, obj := range check.ObjectsByTags(tags.ResolvEnemy) {
		ent, ok := obj.Data.(donburi.Entity)
		if !ok || !w.Valid(ent) {
			continue
		}
		out = append(out, w.Entry(ent))
	}
	return out
}

func applyProjectileHit(ecs *ecs.ECS, game *components.GameData, player *components.PlayerData, pr *pool.Projectile, e *donburi.Entry, t *components.TransformData) {
	dmg, crit := rollDamage(game, player, pr.Damage)
	x, y := t.X, t.Y
	source := pr.Source
	explosion, share := pr.ExplosionRadius, pr.ExplosionShare
	base := pr.Damage

	if pr.BurnDamage > 0 {
		applyBurn(e, pr.BurnDamage, pr.BurnInterval, pr.BurnDuration, source)
	}
	game.Events.EmitBurst(events.Burst{Kind: events.BurstImpact, X: pr.X, Y: pr.Y, Count: 3, Radius: pr.Radius})
	damageEnemy(ecs, e, dmg, source, crit)

	if explosion > 0 && !game.DefeatInProgress {
		explode(ecs, x, y, explosion, base*share, source, e.Entity())
	}
}

func resolveContactHits(ecs *ecs.ECS, pe *donburi.Entry) {
	player := components.Player.Get(pe)
	if player.Dead || player.InvulnFrames > 0 {
		return
	}
	pt := components.Transform.Get(pe)
	d := cfg.Collision.ContactPrefilter

	var hitBy *donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if hitBy != nil || !alive(e) {
			return
		}
		t := components.Transform.Get(e)
		if !gamemath.WithinManhattan(pt.X, pt.Y, t.X, t.Y, d) {
			return
		}
		if gamemath.CirclesOverlap(pt.X, pt.Y, pt.Radius, t.X, t.Y, t.Radius) {
			hitBy = e
		}
	})
	if hitBy == nil {
		return
	}
	raw := components.Enemy.Get(hitBy).Damage
	damagePlayer(ecs, pe, ContactDamage(raw, player.Stacks(cfg.PassiveArmor)), true)
}

// resolveEnemyProjectiles retires enemy projectiles touching the player.
// Armor does not apply. During invulnerability the projectile is absorbed
// without damage.
func resolveEnemyProjectiles(ecs *ecs.ECS, game *components.GameData, pe *donburi.Entry) {
	player := components.Player.Get(pe)
	pt := components.Transform.Get(pe)
	projectiles := game.Projectiles

	for i := projectiles.InFlight() - 1; i >= 0; i-- {
		active := projectiles.Active()
		if i >= len(active) {
			continue
		}
		pr := active[i]
		if pr.Owner != pool.OwnerEnemy {
			continue
		}
		if !gamemath.CirclesOverlap(pr.X, pr.Y, pr.Radius, pt.X, pt.Y, pt.Radius) {
			continue
		}
		damage, x, y, blast := pr.Damage, pr.X, pr.Y, pr.ExplosionRadius
		projectiles.ReleaseAt(i)
		if blast > 0 {
			game.Events.EmitBurst(events.Burst{Kind: events.BurstExplosion, X: x, Y: y, Count: 10, Radius: blast})
		}
		if player.Dead || player.InvulnFrames > 0 {
			continue
		}
		damagePlayer(ecs, pe, damage, false)
	}
}
