// internal/platform/input.go
package platform

import (
	"first-person-hopper/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Mouse reads the player's mouse through ebiten.
type Mouse struct{}

func (Mouse) CursorPosition() (float64, float64, bool) {
	x, y := ebiten.CursorPosition()
	inside := x >= 0 && y >= 0 && x < config.ScreenWidth && y < config.ScreenHeight
	return float64(x), float64(y), inside
}

func (Mouse) FireJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// Cursor hides the OS cursor while a round is played. The reticle sprite
// stands in for it.
type Cursor struct{}

func (Cursor) Capture() {
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
}

func (Cursor) Release() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}
