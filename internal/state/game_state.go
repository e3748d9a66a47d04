// internal/state/game_state.go
package state

import (
	game "first-person-hopper/internal/app"
	"first-person-hopper/internal/component"
)

var _ State = (*GameState)(nil)

// GameState runs one round with the ball.
type GameState struct {
	game  *game.Game
	round *game.Round
}

func NewGameState(g *game.Game) *GameState {
	return &GameState{game: g}
}

func (g *GameState) Screen() component.Screen { return component.InGame }

func (g *GameState) Enter() {
	g.round = g.game.StartRound()
	g.game.Cursor.Capture()
	g.game.NotifyScreenEntered(component.InGame)
}

func (g *GameState) Update(deltaTime float64) {
	g.round.Update(deltaTime)
}

func (g *GameState) Exit() {
	g.round.Close()
	g.round = nil
	g.game.Cursor.Release()
}

// Round returns the round in progress, nil outside the screen.
func (g *GameState) Round() *game.Round {
	return g.round
}
