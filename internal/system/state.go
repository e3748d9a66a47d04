// internal/system/state.go
package system

import (
	"first-person-hopper/internal/component"
	"first-person-hopper/internal/config"
	"first-person-hopper/internal/defs"
	"first-person-hopper/internal/entity"
	"first-person-hopper/internal/event"
	"first-person-hopper/internal/input"
	"first-person-hopper/internal/score"

	"github.com/rs/zerolog"
)

// EndGameSystem watches for the ball leaving the bottom of the screen and
// ends the round once the grace timer runs out.
type EndGameSystem struct {
	ecs             *entity.ECS
	scores          *score.Tracker
	difficulty      defs.Difficulty
	cursor          input.Cursor
	eventDispatcher *event.Dispatcher
	onEnd           func()
	log             zerolog.Logger
}

func NewEndGameSystem(ecs *entity.ECS, scores *score.Tracker, difficulty defs.Difficulty, cursor input.Cursor, eventDispatcher *event.Dispatcher, onEnd func(), logger zerolog.Logger) *EndGameSystem {
	return &EndGameSystem{
		ecs:             ecs,
		scores:          scores,
		difficulty:      difficulty,
		cursor:          cursor,
		eventDispatcher: eventDispatcher,
		onEnd:           onEnd,
		log:             logger,
	}
}

func (s *EndGameSystem) Update(deltaTime float64) {
	timer := component.EndGameTimer.Get(s.ecs.MustSingle(component.EndGameTimer))
	if timer.Fired {
		return
	}

	ball := s.ecs.MustSingle(component.Ball, component.Transform)
	if component.Transform.Get(ball).Y >= config.FloorThreshold {
		return
	}

	if !timer.Started {
		s.log.Debug().Msg("ball below floor, grace timer started")
	}
	if !timer.Advance(deltaTime) {
		return
	}

	s.scores.CommitRound(s.difficulty)
	s.cursor.Release()
	s.log.Info().
		Str("difficulty", s.difficulty.String()).
		Int("score", s.scores.Current()).
		Int("high", s.scores.High()).
		Msg("round ended")

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.RoundEnded,
		Data: event.RoundData{Difficulty: s.difficulty, Score: s.scores.Current(), High: s.scores.High()},
	})
	if s.onEnd != nil {
		s.onEnd()
	}
}
