package archetypes

import (
	"github.com/automoto/arena-survivor/components"
	"github.com/automoto/arena-survivor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only layer; the simulation has no draw order.
const Default ecs.LayerID = 0

var (
	Game = newArchetype(
		components.Game,
	)
	Space = newArchetype(
		components.Space,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Input,
		components.Transform,
		components.Object,
		components.Health,
		components.Flash,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Transform,
		components.Object,
		components.Health,
		components.Flash,
	)
	// Boss carries every enemy component so enemy passes see it too.
	Boss = newArchetype(
		tags.Enemy,
		tags.Boss,
		components.Enemy,
		components.Boss,
		components.Transform,
		components.Object,
		components.Health,
		components.Flash,
	)
	XPOrb = newArchetype(
		tags.XPOrb,
		components.XPOrb,
		components.Transform,
		components.Object,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		Default,
		append(a.components, cs...)...,
	))
	return e
}
