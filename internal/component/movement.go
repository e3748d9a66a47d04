// internal/component/movement.go
package component

import "github.com/yohamta/donburi"

// TransformData places an entity in world space (origin at screen centre,
// Y up). Z orders drawing; lower is further back.
type TransformData struct {
	X, Y     float64
	Z        float64
	Rotation float64 // radians, counter-clockwise
}

var Transform = donburi.NewComponentType[TransformData]()

// VelocityData moves kinematic entities that are not simulated by the
// physics world.
type VelocityData struct {
	X, Y    float64
	Angular float64
}

var Velocity = donburi.NewComponentType[VelocityData]()
