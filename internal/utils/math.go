// internal/utils/math.go
package utils

import "first-person-hopper/internal/config"

// WorldToScreen converts centred, Y-up world coordinates to the top-left,
// Y-down pixel space ebiten draws in.
func WorldToScreen(x, y float64) (float64, float64) {
	return x + config.ScreenWidth/2, config.ScreenHeight/2 - y
}

// ScreenToWorld is the inverse of WorldToScreen.
func ScreenToWorld(x, y float64) (float64, float64) {
	return x - config.ScreenWidth/2, config.ScreenHeight/2 - y
}
