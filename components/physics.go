package components

import (
	"github.com/yohamta/donburi"
)

// PhysicsData is a body's velocity, in pixels per fixed step.
type PhysicsData struct {
	VX       float64
	VY       float64
	OnGround bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
