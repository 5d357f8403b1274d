package components

import "github.com/yohamta/donburi"

// TransformData is a circle body in arena coordinates.
type TransformData struct {
	X, Y   float64
	Radius float64

	// Position at the start of the tick.
	PrevX, PrevY float64
}

var Transform = donburi.NewComponentType[TransformData]()
