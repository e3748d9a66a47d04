// internal/interfaces/game_context.go
package interfaces

import "first-person-hopper/internal/component"

// Navigator switches screens. The switch happens between frames, so it is
// safe to call from inside a system.
type Navigator interface {
	GoTo(screen component.Screen)
}
