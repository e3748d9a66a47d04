// internal/input/input.go
package input

// Source is the per-frame view of the player's mouse.
type Source interface {
	// CursorPosition returns the cursor in screen pixels. ok is false when
	// the cursor is outside the window.
	CursorPosition() (x, y float64, ok bool)
	// FireJustPressed reports a left-button press edge this frame.
	FireJustPressed() bool
}

// Cursor controls the OS cursor while a round is played.
type Cursor interface {
	Capture() // hide and keep inside the window
	Release() // show and free
}

// NopCursor ignores capture requests.
type NopCursor struct{}

func (NopCursor) Capture() {}
func (NopCursor) Release() {}
