package systems

import (
	"github.com/automoto/arena-survivor/components"
	"github.com/yohamta/donburi/ecs"
)

// WithGameOverCheck wraps a system to skip execution once the player has
// died.
func WithGameOverCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if game, ok := components.Game.First(e.World); ok && components.Game.Get(game).Over {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system with every gameplay gate.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithGameOverCheck(system)
}
