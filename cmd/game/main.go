// cmd/game/main.go
package main

import (
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"first-person-hopper/internal/app"
	"first-person-hopper/internal/assets"
	"first-person-hopper/internal/audio"
	"first-person-hopper/internal/config"
	"first-person-hopper/internal/defs"
	"first-person-hopper/internal/logging"
	"first-person-hopper/internal/platform"
	"first-person-hopper/internal/render"
	"first-person-hopper/internal/state"
	"first-person-hopper/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	renderer       *render.Renderer
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings, err := config.Load()
	if err != nil {
		logging.Setup("info", true)
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger := logging.Setup(settings.LogLevel, settings.LogPretty)

	if settings.PprofAddr != "" {
		go func() {
			logger.Info().Str("addr", settings.PprofAddr).Msg("pprof listening")
			logger.Error().Err(http.ListenAndServe(settings.PprofAddr, nil)).Msg("pprof stopped")
		}()
	}

	if settings.DifficultiesFile != "" {
		if err := defs.LoadDifficultyDefinitions(settings.DifficultiesFile); err != nil {
			logger.Fatal().Err(err).Str("file", settings.DifficultiesFile).Msg("failed to load difficulty definitions")
		}
	}

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info().Int64("seed", seed).Str("assets", settings.AssetsDir).Msg("starting")

	assetsFS := os.DirFS(settings.AssetsDir)
	game := app.NewGame(app.Options{
		Input:    platform.Mouse{},
		Cursor:   platform.Cursor{},
		Rng:      utils.NewPRNGService(seed),
		Profiles: defs.DifficultyLibrary,
		Logger:   logger,
	})

	sounds := audio.NewSoundManager(ebitenaudio.NewContext(audio.SampleRate), assetsFS, settings.Mute, logging.For(logger, "audio"))
	sounds.Attach(game.EventDispatcher)

	sm := state.NewStateMachine(game.ECS, logging.For(logger, "screens"))
	game.Navigator = sm
	menu := state.NewMenuState(game)
	play := state.NewGameState(game)
	sm.Register(menu, play, state.NewGameOverState(game))
	if settings.StartScreen == "game" {
		sm.SetState(play)
	} else {
		sm.SetState(menu)
	}

	appGame := &AppGame{
		stateMachine:   sm,
		renderer:       render.NewRenderer(game.ECS, assets.NewManager(assetsFS, logging.For(logger, "assets"))),
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(appGame); err != nil {
		logger.Fatal().Err(err).Msg("game loop exited")
	}
}
