package systems

import (
	"github.com/automoto/arena-survivor/components"
	"github.com/automoto/arena-survivor/systems/factory"
	"github.com/automoto/arena-survivor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths removes enemies queued for removal and drops their XP orbs.
func UpdateDeaths(ecs *ecs.ECS) {
	var dead []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if components.Enemy.Get(e).Dead {
			dead = append(dead, e)
		}
	})

	for _, e := range dead {
		enemy := components.Enemy.Get(e)
		t := components.Transform.Get(e)
		x, y, xp := t.X, t.Y, enemy.XP
		factory.Destroy(ecs.World, e)
		if xp > 0 {
			factory.CreateXPOrb(ecs, x, y, xp)
		}
	}
}
