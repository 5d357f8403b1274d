package components

import "github.com/yohamta/donburi"

// InputData is the movement intent polled once per tick. Move is a
// normalized vector.
type InputData struct {
	MoveX, MoveY float64
	Dash         bool
}

var Input = donburi.NewComponentType[InputData]()
