package systems

import (
	"github.com/automoto/arena-survivor/components"
	cfg "github.com/automoto/arena-survivor/config"
	"github.com/automoto/arena-survivor/events"
	"github.com/automoto/arena-survivor/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ChainHops is the number of hops past the first target at a weapon level.
func ChainHops(sp cfg.ChainSpecial, level int) int {
	return sp.BaseHops + level/2
}

// fireChain strikes up to MaxTargets nearest enemies and walks a chain from
// each one, hopping to the nearest enemy the chain has not hit yet. Chains
// already start on every target in range, so ProjectileCount is unused.
func fireChain(ecs *ecs.ECS, game *components.GameData, player *components.PlayerData, w *components.WeaponData, sp cfg.ChainSpecial, pt *components.TransformData, blast float64) {
	targets := nearestEnemies(ecs.World, pt.X, pt.Y, w.Range, sp.MaxTargets, nil)
	hops := ChainHops(sp, w.Level)

	for _, first := range targets {
		if !alive(first) {
			continue
		}
		hit := make(map[donburi.Entity]bool, hops+1)
		fromX, fromY := pt.X, pt.Y
		cur := first
		for hop := 0; hop <= hops; hop++ {
			t := components.Transform.Get(cur)
			x, y := t.X, t.Y
			hit[cur.Entity()] = true

			dmg, crit := rollDamage(game, player, w.Damage)
			damageEnemy(ecs, cur, dmg, w.Type, crit)
			game.Events.EmitBurst(events.Burst{Kind: events.BurstChain, X: x, Y: y, Count: 4, Radius: gamemath.Dist(fromX, fromY, x, y)})
			if sp.SplashRange > 0 {
				explode(ecs, x, y, sp.SplashRange*blast, w.Damage, w.Type, cur.Entity())
			}
			if game.DefeatInProgress {
				return
			}

			next := nearestEnemies(ecs.World, x, y, sp.HopRadius, 1, func(e donburi.Entity) bool { return hit[e] })
			if len(next) == 0 {
				break
			}
			fromX, fromY = x, y
			cur = next[0]
		}
	}
}
