package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the entity's broad-phase body. It is kept in sync with the
// transform by UpdateObjects.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton collision space covering the arena.
var Space = donburi.NewComponentType[resolv.Space]()
