package systems

import (
	"github.com/automoto/arena-survivor/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances the screen envelopes and hit flash timers.
func UpdateEffects(ecs *ecs.ECS) {
	GetGame(ecs.World).Screen.Step()
	updateFlashEffects(ecs)
}

// updateFlashEffects decrements flash timers
func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

func requestShake(game *components.GameData, intensity float64, ticks int) {
	game.Screen.StartShake(intensity, ticks)
	game.Events.Shake(intensity, ticks)
}

func requestFlash(game *components.GameData, intensity float64, ticks int) {
	game.Screen.StartFlash(intensity, ticks)
	game.Events.Flash(intensity, ticks)
}
