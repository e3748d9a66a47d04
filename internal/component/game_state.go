// internal/component/game_state.go
package component

import (
	"fmt"

	"github.com/yohamta/donburi"
)

// Screen is one of the mutually exclusive game modes. Every entity belongs
// to exactly one screen through its tag and dies with it.
type Screen int

const (
	MainMenu Screen = iota
	InGame
	GameOver
)

// Screens lists every screen.
var Screens = []Screen{MainMenu, InGame, GameOver}

func (s Screen) String() string {
	switch s {
	case MainMenu:
		return "main_menu"
	case InGame:
		return "in_game"
	case GameOver:
		return "game_over"
	}
	return fmt.Sprintf("screen(%d)", int(s))
}

// Ownership tags.
var (
	MainMenuEntity = donburi.NewTag()
	InGameEntity   = donburi.NewTag()
	GameOverEntity = donburi.NewTag()
)

// ScreenTag returns the ownership tag for s.
func ScreenTag(s Screen) *donburi.ComponentType[donburi.Tag] {
	switch s {
	case MainMenu:
		return MainMenuEntity
	case InGame:
		return InGameEntity
	case GameOver:
		return GameOverEntity
	}
	panic(fmt.Sprintf("component: no tag for %v", s))
}

// ParentData links a child entity to the one it was spawned under.
type ParentData struct {
	Entity donburi.Entity
}

var Parent = donburi.NewComponentType[ParentData]()
