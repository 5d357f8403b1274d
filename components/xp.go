package components

import "github.com/yohamta/donburi"

type XPOrbData struct {
	Value      int
	Magnetized bool
}

var XPOrb = donburi.NewComponentType[XPOrbData]()
