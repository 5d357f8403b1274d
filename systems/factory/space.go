package factory

import (
	"github.com/automoto/arena-survivor/archetypes"
	"github.com/automoto/arena-survivor/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// spaceOf returns the arena's collision space, or nil before CreateSpace.
func spaceOf(w donburi.World) *resolv.Space {
	e, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(e)
}

// attachBody gives e a circle transform and a square broad-phase body
// registered in the space.
func attachBody(w donburi.World, e *donburi.Entry, x, y, radius float64, tag string) *resolv.Object {
	components.Transform.SetValue(e, components.TransformData{
		X: x, Y: y, Radius: radius,
		PrevX: x, PrevY: y,
	})
	obj := resolv.NewObject(x-radius, y-radius, radius*2, radius*2, tag)
	obj.Data = e.Entity()
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	if space := spaceOf(w); space != nil {
		space.Add(obj)
	}
	return obj
}

// Destroy removes e and its broad-phase body.
func Destroy(w donburi.World, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	w.Remove(e.Entity())
}
