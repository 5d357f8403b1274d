package systems

import (
	"github.com/automoto/arena-survivor/components"
	"github.com/automoto/arena-survivor/events"
	"github.com/automoto/arena-survivor/systems/factory"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateSchedule fires delayed events that are due, in scheduling order.
func UpdateSchedule(ecs *ecs.ECS) {
	game := GetGame(ecs.World)
	if len(game.Pending) == 0 {
		return
	}

	var due []components.DelayedEvent
	kept := game.Pending[:0]
	for _, ev := range game.Pending {
		if ev.Due <= game.Tick {
			due = append(due, ev)
		} else {
			kept = append(kept, ev)
		}
	}
	game.Pending = kept

	for _, ev := range due {
		game.Logger.Debug("delayed event", zap.Stringer("kind", ev.Kind), zap.Int("tick", game.Tick))
		switch ev.Kind {
		case components.DelayedRemoveBoss:
			removeBoss(ecs, ev)
		case components.DelayedVictory:
			game.DefeatInProgress = false
			game.VictoryTick = game.Tick
			game.Events.OnBossDefeated(events.BossDefeated{Kills: game.BossesKilled, Time: game.Time()})
		}
	}
}

func removeBoss(ecs *ecs.ECS, ev components.DelayedEvent) {
	if !ecs.World.Valid(ev.Entity) {
		return
	}
	e := ecs.World.Entry(ev.Entity)
	t := components.Transform.Get(e)
	x, y, xp := t.X, t.Y, components.Enemy.Get(e).XP
	factory.Destroy(ecs.World, e)
	if xp > 0 {
		factory.CreateXPOrb(ecs, x, y, xp)
	}
}
