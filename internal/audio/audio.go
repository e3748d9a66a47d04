// internal/audio/audio.go
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"first-person-hopper/internal/audio/synth"
	"first-person-hopper/internal/component"
	"first-person-hopper/internal/config"
	"first-person-hopper/internal/event"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/rs/zerolog"
)

// SampleRate is shared by the audio context and the synthesised fallbacks.
const SampleRate = int(synth.SampleRate)

const maxFallbackLength = 2 * time.Second

// Sounds lists every effect the game plays.
var Sounds = []string{
	config.SoundStart,
	config.SoundFire,
	config.SoundHit,
	config.SoundGameOver,
	config.SoundHover,
	config.SoundCasing,
}

// SoundManager plays short effects in response to game events. Clips are
// decoded once into PCM and replayed from memory.
type SoundManager struct {
	ctx   *audio.Context
	clips map[string][]byte
	muted bool
	log   zerolog.Logger
}

// NewSoundManager decodes every sound from fsys. A sound with no .ogg or
// .wav file gets its synthesised stand-in.
func NewSoundManager(ctx *audio.Context, fsys fs.FS, muted bool, logger zerolog.Logger) *SoundManager {
	m := &SoundManager{
		ctx:   ctx,
		clips: make(map[string][]byte, len(Sounds)),
		muted: muted,
		log:   logger,
	}
	for _, name := range Sounds {
		pcm, err := decodeFile(fsys, name)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				logger.Warn().Err(err).Str("sound", name).Msg("sound file unreadable, using synthesised fallback")
			}
			s, ok := synth.Fallback(name)
			if !ok {
				continue
			}
			pcm = synth.Render(s, maxFallbackLength)
		}
		m.clips[name] = pcm
	}
	logger.Info().Int("sounds", len(m.clips)).Bool("muted", muted).Msg("sounds loaded")
	return m
}

func decodeFile(fsys fs.FS, name string) ([]byte, error) {
	decoders := []struct {
		ext    string
		decode func(io.Reader) (io.Reader, error)
	}{
		{".ogg", func(r io.Reader) (io.Reader, error) { return vorbis.DecodeWithSampleRate(SampleRate, r) }},
		{".wav", func(r io.Reader) (io.Reader, error) { return wav.DecodeWithSampleRate(SampleRate, r) }},
	}

	for _, d := range decoders {
		data, err := fs.ReadFile(fsys, name+d.ext)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		stream, err := d.decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode %s%s: %w", name, d.ext, err)
		}
		pcm, err := io.ReadAll(stream)
		if err != nil {
			return nil, fmt.Errorf("read %s%s: %w", name, d.ext, err)
		}
		return pcm, nil
	}
	return nil, fs.ErrNotExist
}

// Play starts the named sound. Each call gets its own player so rapid
// shots overlap.
func (m *SoundManager) Play(name string) {
	if m.muted {
		return
	}
	pcm, ok := m.clips[name]
	if !ok {
		m.log.Debug().Str("sound", name).Msg("no such sound")
		return
	}
	m.ctx.NewPlayerFromBytes(pcm).Play()
}

// SetMuted turns every sound on or off.
func (m *SoundManager) SetMuted(muted bool) {
	m.muted = muted
}

// Attach subscribes the manager to the events that make noise.
func (m *SoundManager) Attach(d *event.Dispatcher) {
	for _, t := range []event.EventType{
		event.WeaponFired,
		event.BallHit,
		event.ScreenEntered,
		event.ButtonHovered,
		event.CasingDropped,
	} {
		d.Subscribe(t, m)
	}
}

func (m *SoundManager) OnEvent(e event.Event) {
	if name, ok := SoundFor(e); ok {
		m.Play(name)
	}
}

// SoundFor maps an event to the sound it makes.
func SoundFor(e event.Event) (string, bool) {
	switch e.Type {
	case event.WeaponFired:
		return config.SoundFire, true
	case event.BallHit:
		return config.SoundHit, true
	case event.ButtonHovered:
		return config.SoundHover, true
	case event.CasingDropped:
		return config.SoundCasing, true
	case event.ScreenEntered:
		data, _ := e.Data.(event.ScreenData)
		switch data.Screen {
		case component.InGame.String():
			return config.SoundStart, true
		case component.GameOver.String():
			return config.SoundGameOver, true
		}
	}
	return "", false
}
