package components

import "github.com/yohamta/donburi"

type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	Gravity  float64 // units/s²
	Grounded bool    // Set only by a downward landing in the latest vertical pass
}

var Physics = donburi.NewComponentType[PhysicsData]()
