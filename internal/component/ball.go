// internal/component/ball.go
package component

import (
	"first-person-hopper/internal/defs"
	"first-person-hopper/internal/physics"

	"github.com/yohamta/donburi"
)

// BallData marks the target the player keeps in the air.
type BallData struct {
	Difficulty defs.Difficulty
	Body       *physics.Body
	Collider   *physics.Collider
}

var Ball = donburi.NewComponentType[BallData]()

// ReticleData marks the aim point that follows the cursor.
type ReticleData struct {
	Collider *physics.Collider
}

var Reticle = donburi.NewComponentType[ReticleData]()

// Wall marks the static side walls.
var Wall = donburi.NewTag()
