package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position      math.Vec2
	Width, Height float64
}

var Camera = donburi.NewComponentType[CameraData]()
