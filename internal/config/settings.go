// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvAssetsDir    = "HOPPER_ASSETS_DIR"
	EnvSeed         = "HOPPER_SEED"
	EnvLogLevel     = "HOPPER_LOG_LEVEL"
	EnvLogPretty    = "HOPPER_LOG_PRETTY"
	EnvPprofAddr    = "HOPPER_PPROF_ADDR"
	EnvStartScreen  = "HOPPER_START_SCREEN"
	EnvDifficulties = "HOPPER_DIFFICULTIES"
	EnvMute         = "HOPPER_MUTE"
)

// Settings holds everything that can change between runs without a rebuild.
type Settings struct {
	AssetsDir        string
	Seed             int64 // 0 seeds from the clock
	LogLevel         string
	LogPretty        bool
	PprofAddr        string // empty disables the profiler
	StartScreen      string // "menu" or "game"
	DifficultiesFile string // optional JSON override of the ball profiles
	Mute             bool
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		AssetsDir:   "assets",
		LogLevel:    "info",
		LogPretty:   true,
		StartScreen: "menu",
	}
}

// Load reads an optional .env file from the working directory and then
// applies the HOPPER_* environment variables on top of the defaults.
func Load() (Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("failed to read .env file: %w", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds Settings from an arbitrary variable source.
func FromLookup(lookup func(string) (string, bool)) (Settings, error) {
	s := DefaultSettings()

	if v, ok := lookup(EnvAssetsDir); ok && v != "" {
		s.AssetsDir = v
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s %q: %w", EnvSeed, v, err)
		}
		s.Seed = seed
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		s.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLogPretty); ok && v != "" {
		pretty, err := strconv.ParseBool(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s %q: %w", EnvLogPretty, v, err)
		}
		s.LogPretty = pretty
	}
	if v, ok := lookup(EnvPprofAddr); ok {
		s.PprofAddr = v
	}
	if v, ok := lookup(EnvStartScreen); ok && v != "" {
		switch v = strings.ToLower(v); v {
		case "menu", "game":
			s.StartScreen = v
		default:
			return Settings{}, fmt.Errorf("invalid %s %q: want menu or game", EnvStartScreen, v)
		}
	}
	if v, ok := lookup(EnvDifficulties); ok {
		s.DifficultiesFile = v
	}
	if v, ok := lookup(EnvMute); ok && v != "" {
		mute, err := strconv.ParseBool(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s %q: %w", EnvMute, v, err)
		}
		s.Mute = mute
	}

	return s, nil
}
