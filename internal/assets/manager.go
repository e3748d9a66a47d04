// internal/assets/manager.go
package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"math"
	"strings"

	"first-person-hopper/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Manager loads, caches and, when a file is missing, fabricates the images
// and font faces the renderer draws with.
type Manager struct {
	fsys   fs.FS
	images map[string]*ebiten.Image
	faces  map[float64]font.Face
	font   *opentype.Font
	log    zerolog.Logger
}

// NewManager parses the main font from fsys. Without it, text falls back to
// a fixed bitmap face.
func NewManager(fsys fs.FS, logger zerolog.Logger) *Manager {
	m := &Manager{
		fsys:   fsys,
		images: make(map[string]*ebiten.Image),
		faces:  make(map[float64]font.Face),
		log:    logger,
	}

	data, err := fs.ReadFile(fsys, config.FontMain)
	if err == nil {
		m.font, err = opentype.Parse(data)
	}
	if err != nil {
		logger.Warn().Err(err).Str("font", config.FontMain).Msg("font unavailable, using bitmap fallback")
	}
	return m
}

// Image returns the image at path. A missing or broken file yields a
// generated placeholder of size w×h.
func (m *Manager) Image(path string, w, h float64) *ebiten.Image {
	if img, ok := m.images[path]; ok {
		return img
	}

	img, err := m.load(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			m.log.Warn().Err(err).Str("image", path).Msg("image unreadable")
		} else {
			m.log.Debug().Str("image", path).Msg("image missing, using placeholder")
		}
		img = placeholder(path, w, h)
	}
	m.images[path] = img
	return img
}

// Sheet returns a sprite sheet of cols×rows frames. A missing file yields
// shrinking discs, one per frame.
func (m *Manager) Sheet(path string, frameW, frameH, cols, rows int) *ebiten.Image {
	if img, ok := m.images[path]; ok {
		return img
	}

	img, err := m.load(path)
	if err != nil {
		m.log.Debug().Err(err).Str("sheet", path).Msg("sheet unavailable, using placeholder")
		img = ebiten.NewImage(max(1, frameW*cols), max(1, frameH*rows))
		frames := cols * rows
		r := float32(min(frameW, frameH)) / 2
		for i := 0; i < frames; i++ {
			fx := float32(i%cols*frameW) + float32(frameW)/2
			fy := float32(i/cols*frameH) + float32(frameH)/2
			scale := 1 - float32(i)/float32(frames+1)
			vector.DrawFilledCircle(img, fx, fy, r*scale, color.RGBA{255, 255, 255, 220}, true)
		}
	}
	m.images[path] = img
	return img
}

func (m *Manager) load(path string) (*ebiten.Image, error) {
	data, err := fs.ReadFile(m.fsys, path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// Face returns the main font at size points.
func (m *Manager) Face(size float64) font.Face {
	if m.font == nil {
		return basicfont.Face7x13
	}
	if face, ok := m.faces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		m.log.Warn().Err(err).Float64("size", size).Msg("font face failed, using bitmap fallback")
		return basicfont.Face7x13
	}
	m.faces[size] = face
	return face
}

// placeholder draws something recognisable for a missing sprite: a disc for
// balls and effects, a ring for the reticle, a block for everything else.
func placeholder(path string, w, h float64) *ebiten.Image {
	iw, ih := int(math.Max(1, math.Ceil(w))), int(math.Max(1, math.Ceil(h)))
	img := ebiten.NewImage(iw, ih)
	cx, cy := float32(iw)/2, float32(ih)/2
	r := float32(math.Min(float64(iw), float64(ih))) / 2

	switch {
	case strings.Contains(path, "ball"):
		vector.DrawFilledCircle(img, cx, cy, r, ballColor(path), true)
	case path == config.SpriteReticle:
		vector.StrokeCircle(img, cx, cy, r-2, 3, config.PlaceholderReticle, true)
		vector.DrawFilledCircle(img, cx, cy, 2, config.PlaceholderReticle, true)
	case path == config.SpriteWall:
		img.Fill(config.PlaceholderWall)
	case path == config.SpriteWeapon:
		vector.DrawFilledRect(img, float32(iw)*0.35, float32(ih)*0.2, float32(iw)*0.3, float32(ih)*0.8, config.PlaceholderWeapon, true)
	case path == config.SpriteCasing:
		img.Fill(color.RGBA{200, 160, 60, 255})
	case path == config.SpriteBackground:
		img.Fill(config.BackgroundColor)
	default:
		img.Fill(color.RGBA{255, 0, 255, 255})
	}
	return img
}

func ballColor(path string) color.Color {
	switch {
	case strings.Contains(path, "easy"):
		return color.RGBA{80, 200, 120, 255}
	case strings.Contains(path, "hard"):
		return color.RGBA{220, 70, 70, 255}
	}
	return color.RGBA{240, 190, 60, 255}
}
