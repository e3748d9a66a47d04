// internal/state/game_over_state.go
package state

import (
	game "first-person-hopper/internal/app"
	"first-person-hopper/internal/component"
	"first-person-hopper/internal/system"
)

var _ State = (*GameOverState)(nil)

// GameOverState shows the final and best score with HOME and RESTART.
type GameOverState struct {
	game    *game.Game
	buttons *system.ButtonSystem
}

func NewGameOverState(g *game.Game) *GameOverState {
	return &GameOverState{game: g}
}

func (s *GameOverState) Screen() component.Screen { return component.GameOver }

func (s *GameOverState) Enter() {
	s.game.SpawnGameOver()
	s.buttons = s.game.NewButtons()
	s.game.NotifyScreenEntered(component.GameOver)
}

func (s *GameOverState) Update(deltaTime float64) {
	s.buttons.Update(deltaTime)
}

func (s *GameOverState) Exit() {
	s.buttons = nil
}
