// internal/state/menu_state.go
package state

import (
	game "first-person-hopper/internal/app"
	"first-person-hopper/internal/component"
	"first-person-hopper/internal/system"
)

var _ State = (*MenuState)(nil)

// MenuState is the main menu: pick a difficulty to play.
type MenuState struct {
	game    *game.Game
	buttons *system.ButtonSystem
}

func NewMenuState(g *game.Game) *MenuState {
	return &MenuState{game: g}
}

func (m *MenuState) Screen() component.Screen { return component.MainMenu }

func (m *MenuState) Enter() {
	m.game.Cursor.Release()
	m.game.SpawnMainMenu()
	m.buttons = m.game.NewButtons()
	m.game.NotifyScreenEntered(component.MainMenu)
}

func (m *MenuState) Update(deltaTime float64) {
	m.buttons.Update(deltaTime)
}

func (m *MenuState) Exit() {
	m.buttons = nil
}
