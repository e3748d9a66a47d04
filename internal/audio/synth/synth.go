// Package synth builds the fallback sound effects played when a sound file
// is missing, and renders them to PCM for the game's audio player.
package synth

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"first-person-hopper/internal/config"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate matches the game's audio context.
const SampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator streams duration worth of a single wave at freq.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is rendered silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, d, attack, release time.Duration, wave WaveType, vol float64) beep.Streamer {
	return newVolume(NewEnvelope(NewOscillator(freq, d, wave, SampleRate), d, attack, release, SampleRate), vol)
}

// Start is a rising two-note chime.
func Start() beep.Streamer {
	return beep.Seq(
		tone(523.25, 120*time.Millisecond, 5*time.Millisecond, 40*time.Millisecond, WaveSine, 0.5),
		tone(783.99, 220*time.Millisecond, 5*time.Millisecond, 120*time.Millisecond, WaveSine, 0.5),
	)
}

// Fire is a noise crack over a low thump.
func Fire() beep.Streamer {
	d := 140 * time.Millisecond
	return beep.Mix(
		tone(0, d, time.Millisecond, 120*time.Millisecond, WaveNoise, 0.6),
		tone(90, d, time.Millisecond, 100*time.Millisecond, WaveSquare, 0.3),
	)
}

// Hit is a short high click.
func Hit() beep.Streamer {
	return tone(1800, 30*time.Millisecond, 0, 20*time.Millisecond, WaveSquare, 0.35)
}

// GameOver is a falling three-note phrase.
func GameOver() beep.Streamer {
	return beep.Seq(
		tone(392.00, 180*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond, WaveSaw, 0.35),
		tone(311.13, 180*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond, WaveSaw, 0.35),
		tone(261.63, 400*time.Millisecond, 5*time.Millisecond, 300*time.Millisecond, WaveSaw, 0.35),
	)
}

// Hover is a quiet blip.
func Hover() beep.Streamer {
	return tone(880, 40*time.Millisecond, 2*time.Millisecond, 30*time.Millisecond, WaveSine, 0.25)
}

// Casing is two metallic pings, the second a touch later.
func Casing() beep.Streamer {
	return beep.Seq(
		tone(3200, 60*time.Millisecond, 0, 55*time.Millisecond, WaveSine, 0.3),
		beep.Silence(SampleRate.N(30*time.Millisecond)),
		tone(4100, 80*time.Millisecond, 0, 75*time.Millisecond, WaveSine, 0.2),
	)
}

// Render drains s into signed 16-bit little-endian stereo PCM, stopping
// after maxDuration.
func Render(s beep.Streamer, maxDuration time.Duration) []byte {
	limit := SampleRate.N(maxDuration)
	buf := make([][2]float64, 512)
	out := make([]byte, 0, limit*4)

	for written := 0; written < limit; {
		chunk := buf
		if rest := limit - written; rest < len(chunk) {
			chunk = chunk[:rest]
		}
		n, ok := s.Stream(chunk)
		for _, frame := range chunk[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		written += n
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

// Fallback returns the synthesised stand-in for the named sound, or false
// when there is none.
func Fallback(name string) (beep.Streamer, bool) {
	build, ok := fallbacks[name]
	if !ok {
		return nil, false
	}
	return build(), true
}

var fallbacks = map[string]func() beep.Streamer{
	config.SoundStart:    Start,
	config.SoundFire:     Fire,
	config.SoundHit:      Hit,
	config.SoundGameOver: GameOver,
	config.SoundHover:    Hover,
	config.SoundCasing:   Casing,
}
