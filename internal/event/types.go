// internal/event/types.go
package event

import "first-person-hopper/internal/defs"

const (
	WeaponFired   EventType = "WeaponFired"   // a shot left the weapon
	BallHit       EventType = "BallHit"       // the shot overlapped the ball
	RoundEnded    EventType = "RoundEnded"    // grace timer expired, score committed
	ScreenEntered EventType = "ScreenEntered" // a screen finished its setup
	ButtonHovered EventType = "ButtonHovered"
	CasingDropped EventType = "CasingDropped" // an ejected bullet case expired
)

// ShotData accompanies WeaponFired and BallHit. Positions are world
// coordinates.
type ShotData struct {
	ReticleX, ReticleY float64
	WeaponX, WeaponY   float64
}

// RoundData accompanies RoundEnded.
type RoundData struct {
	Difficulty defs.Difficulty
	Score      int
	High       int
}

// ScreenData accompanies ScreenEntered. Screen holds the screen's name.
type ScreenData struct {
	Screen string
}
