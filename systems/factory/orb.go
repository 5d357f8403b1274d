package factory

import (
	"github.com/automoto/arena-survivor/archetypes"
	"github.com/automoto/arena-survivor/components"
	cfg "github.com/automoto/arena-survivor/config"
	"github.com/automoto/arena-survivor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateXPOrb(ecs *ecs.ECS, x, y float64, value int) *donburi.Entry {
	orb := archetypes.XPOrb.Spawn(ecs)
	attachBody(ecs.World, orb, x, y, cfg.XP.OrbRadius, tags.ResolvOrb)
	components.XPOrb.SetValue(orb, components.XPOrbData{Value: value})
	return orb
}
