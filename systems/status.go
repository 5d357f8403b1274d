package systems

import (
	"math"

	"github.com/automoto/arena-survivor/components"
	cfg "github.com/automoto/arena-survivor/config"
	"github.com/automoto/arena-survivor/events"
	"github.com/automoto/arena-survivor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// applyBurn sets an enemy burning. Reapplying refreshes the duration and
// keeps the stronger damage.
func applyBurn(e *donburi.Entry, damage float64, interval, duration int, source cfg.WeaponType) {
	burn := &components.Enemy.Get(e).Burning
	if burn.Active {
		burn.DamagePerTick = math.Max(burn.DamagePerTick, damage)
		burn.Remaining = max(burn.Remaining, duration)
		return
	}
	*burn = components.BurnData{
		Active:        true,
		DamagePerTick: damage,
		Remaining:     duration,
		Interval:      max(interval, 1),
		Source:        source,
	}
}

// UpdateStatus ticks burning enemies.
func UpdateStatus(ecs *ecs.ECS) {
	game := GetGame(ecs.World)

	var burning []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if components.Enemy.Get(e).Burning.Active && alive(e) {
			burning = append(burning, e)
		}
	})

	for _, e := range burning {
		if !alive(e) {
			continue
		}
		burn := &components.Enemy.Get(e).Burning
		burn.Remaining--
		burn.Timer++
		if burn.Timer >= burn.Interval {
			burn.Timer = 0
			t := components.Transform.Get(e)
			game.Events.EmitBurst(events.Burst{Kind: events.BurstBurn, X: t.X, Y: t.Y, Count: 2, Radius: t.Radius})
			damageEnemy(ecs, e, burn.DamagePerTick, burn.Source, false)
			if !alive(e) {
				game.Events.EmitBurst(events.Burst{Kind: events.BurstBurn, X: t.X, Y: t.Y, Count: cfg.Effects.BurnDeathParticles, Radius: t.Radius})
				continue
			}
		}
		if burn.Remaining <= 0 {
			*burn = components.BurnData{}
		}
	}
}
