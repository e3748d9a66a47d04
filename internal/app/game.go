// internal/app/game.go
package app

import (
	"first-person-hopper/internal/component"
	"first-person-hopper/internal/config"
	"first-person-hopper/internal/defs"
	"first-person-hopper/internal/entity"
	"first-person-hopper/internal/event"
	"first-person-hopper/internal/input"
	"first-person-hopper/internal/interfaces"
	"first-person-hopper/internal/logging"
	"first-person-hopper/internal/score"
	"first-person-hopper/internal/system"
	"first-person-hopper/internal/utils"

	"github.com/rs/zerolog"
)

// Options configures a Game. Zero fields get working defaults.
type Options struct {
	Input    input.Source
	Cursor   input.Cursor
	Rng      utils.RandomSource
	Profiles map[defs.Difficulty]defs.DifficultyProfile
	Logger   zerolog.Logger
}

// Game holds everything that outlives a single screen: the entity world,
// the scores, the event bus and the player's chosen difficulty.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Scores          *score.Tracker
	Rng             utils.RandomSource
	Input           input.Source
	Cursor          input.Cursor
	Profiles        map[defs.Difficulty]defs.DifficultyProfile
	Difficulty      defs.Difficulty
	Navigator       interfaces.Navigator

	base zerolog.Logger
	log  zerolog.Logger
}

// NewGame initializes a new game session and spawns the persistent
// background.
func NewGame(opts Options) *Game {
	if opts.Input == nil {
		panic("app: input source cannot be nil")
	}
	if opts.Cursor == nil {
		opts.Cursor = input.NopCursor{}
	}
	if opts.Rng == nil {
		opts.Rng = utils.NewPRNGService(0)
	}
	if opts.Profiles == nil {
		opts.Profiles = defs.DefaultProfiles()
	}

	g := &Game{
		ECS:             entity.NewECS(logging.For(opts.Logger, "ecs")),
		EventDispatcher: event.NewDispatcher(),
		Scores:          score.NewTracker(logging.For(opts.Logger, "score")),
		Rng:             opts.Rng,
		Input:           opts.Input,
		Cursor:          opts.Cursor,
		Profiles:        opts.Profiles,
		Difficulty:      defs.DefaultDifficulty,
		base:            opts.Logger,
		log:             logging.For(opts.Logger, "game"),
	}
	g.spawnBackground()
	return g
}

// Logger returns a logger for the named part of the session.
func (g *Game) Logger(name string) zerolog.Logger {
	return logging.For(g.base, name)
}

// Profile returns the ball profile for d, falling back to the built-in one.
func (g *Game) Profile(d defs.Difficulty) defs.DifficultyProfile {
	if p, ok := g.Profiles[d]; ok {
		return p
	}
	return defs.Profile(d)
}

// NewButtons returns the button handler for a menu screen.
func (g *Game) NewButtons() *system.ButtonSystem {
	return system.NewButtonSystem(g.ECS, g.Input, g.EventDispatcher, g.HandleButton)
}

// HandleButton carries out a button's action.
func (g *Game) HandleButton(action component.ButtonAction) {
	switch action {
	case component.ActionPlayEasy:
		g.play(defs.Easy)
	case component.ActionPlayMedium:
		g.play(defs.Medium)
	case component.ActionPlayHard:
		g.play(defs.Hard)
	case component.ActionRestart:
		g.play(g.Difficulty)
	case component.ActionHome:
		g.goTo(component.MainMenu)
	default:
		g.log.Warn().Int("action", int(action)).Msg("unknown button action")
	}
}

func (g *Game) play(d defs.Difficulty) {
	g.Difficulty = d
	g.log.Info().Str("difficulty", d.String()).Msg("round requested")
	g.goTo(component.InGame)
}

func (g *Game) goTo(screen component.Screen) {
	if g.Navigator == nil {
		g.log.Error().Str("screen", screen.String()).Msg("no navigator, screen change dropped")
		return
	}
	g.Navigator.GoTo(screen)
}

// NotifyScreenEntered announces that screen finished its setup.
func (g *Game) NotifyScreenEntered(screen component.Screen) {
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.ScreenEntered,
		Data: event.ScreenData{Screen: screen.String()},
	})
}

func (g *Game) spawnBackground() {
	entry := g.ECS.World.Entry(g.ECS.World.Create(component.Background, component.Transform, component.Sprite))
	component.Transform.SetValue(entry, component.TransformData{Z: config.BackgroundDepth})
	component.Sprite.SetValue(entry, component.SpriteData{
		Image:  config.SpriteBackground,
		Width:  config.ScreenWidth,
		Height: config.ScreenHeight,
	})
}
