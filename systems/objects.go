package systems

import (
	"github.com/automoto/arena-survivor/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves every broad-phase body to its transform.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		if !e.HasComponent(components.Transform) {
			continue
		}
		syncObject(e)
	}
}
