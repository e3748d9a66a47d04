// internal/component/endgame.go
package component

import "github.com/yohamta/donburi"

// EndGameTimerData is the grace period between the ball falling out and
// the round ending. It only accumulates; it is never rewound.
type EndGameTimerData struct {
	Duration float64
	Elapsed  float64
	Started  bool
	Fired    bool
}

func NewEndGameTimer(duration float64) EndGameTimerData {
	return EndGameTimerData{Duration: duration}
}

// Advance adds dt to the timer and reports true on the single frame it
// expires.
func (t *EndGameTimerData) Advance(dt float64) bool {
	if t.Fired {
		return false
	}
	t.Started = true
	if dt > 0 {
		t.Elapsed += dt
	}
	if t.Elapsed+timerEpsilon >= t.Duration {
		t.Fired = true
		return true
	}
	return false
}

var EndGameTimer = donburi.NewComponentType[EndGameTimerData]()
