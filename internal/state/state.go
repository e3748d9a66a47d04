// internal/state/state.go
package state

import (
	"first-person-hopper/internal/component"
	"first-person-hopper/internal/entity"

	"github.com/rs/zerolog"
)

// State is one screen of the game.
type State interface {
	Screen() component.Screen
	Enter()
	Update(deltaTime float64)
	Exit()
}

// StateMachine runs exactly one State at a time. It owns screen teardown:
// leaving a screen removes every entity that screen spawned, and entering a
// screen first clears anything left over from a previous visit.
type StateMachine struct {
	ecs      *entity.ECS
	states   map[component.Screen]State
	current  State
	pending  State
	updating bool
	log      zerolog.Logger
}

// NewStateMachine returns a machine with no state entered yet.
func NewStateMachine(ecs *entity.ECS, logger zerolog.Logger) *StateMachine {
	return &StateMachine{
		ecs:    ecs,
		states: make(map[component.Screen]State),
		log:    logger,
	}
}

// Register makes states reachable through GoTo.
func (sm *StateMachine) Register(states ...State) {
	for _, s := range states {
		sm.states[s.Screen()] = s
	}
}

// SetState switches immediately.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
		sm.ecs.DespawnScreen(sm.current.Screen())
	}
	sm.current = newState
	if sm.current == nil {
		return
	}
	sm.ecs.DespawnScreen(sm.current.Screen())
	sm.current.Enter()
	sm.log.Info().Str("screen", sm.current.Screen().String()).Msg("screen entered")
}

// RequestState switches after the current Update returns, or immediately
// when called outside Update. The last request in a frame wins.
func (sm *StateMachine) RequestState(newState State) {
	if !sm.updating {
		sm.SetState(newState)
		return
	}
	if sm.pending != nil {
		sm.log.Debug().
			Str("dropped", sm.pending.Screen().String()).
			Str("screen", newState.Screen().String()).
			Msg("screen request replaced")
	}
	sm.pending = newState
}

// GoTo requests the registered state for screen.
func (sm *StateMachine) GoTo(screen component.Screen) {
	s, ok := sm.states[screen]
	if !ok {
		sm.log.Error().Str("screen", screen.String()).Msg("no state registered for screen")
		return
	}
	sm.RequestState(s)
}

// Current returns the running state, nil before the first SetState.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update runs the current state, then applies any requested transition.
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.updating = true
		sm.current.Update(deltaTime)
		sm.updating = false
	}
	if next := sm.pending; next != nil {
		sm.pending = nil
		sm.SetState(next)
	}
}
