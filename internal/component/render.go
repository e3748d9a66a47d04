// internal/component/render.go
package component

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// SpriteData draws an image centred on the entity's transform.
// Image is an asset path; the renderer resolves and caches it.
type SpriteData struct {
	Image  string
	FlipX  bool
	Tint   color.Color // nil draws the image unchanged
	Hidden bool

	// Placeholder size, used when the asset is missing.
	Width, Height float64
}

var Sprite = donburi.NewComponentType[SpriteData]()

// SpriteSheetData cuts a grid of equally sized frames from Image.
// Frames are numbered row by row.
type SpriteSheetData struct {
	Image       string
	FrameWidth  int
	FrameHeight int
	Columns     int
	Rows        int
	Index       int
	Tint        color.Color
	Glow        bool // drawn with additive blending
}

var SpriteSheet = donburi.NewComponentType[SpriteSheetData]()

// Background marks the full-screen backdrop.
var Background = donburi.NewTag()
