// Package camera converts world-space body positions into integer screen
// points. Unlike a free-roaming viewport, the simulation world is a fixed,
// bounded rectangle and the renderer never pans or zooms it -- the scale
// transform is exactly the configured display-units-per-world-unit factor
// (spec §6's "scale transform equal to the configured scale"), so this
// package is a single multiply-and-round, not a full camera.
package camera

import "math"

// Camera maps world coordinates to screen coordinates at a fixed Scale.
// The world origin (0,0) maps to the screen origin (0,0); there is no
// pan offset because the world rectangle and the window are the same
// size once Scale is applied (width/scale x height/scale, per §6).
type Camera struct {
	Scale float64
}

// New returns a Camera with the given display-units-per-world-unit scale.
func New(scale float64) Camera {
	return Camera{Scale: scale}
}

// WorldToScreen converts a world position to an integer screen point.
func (c Camera) WorldToScreen(x, y float64) (int32, int32) {
	return int32(math.Round(x * c.Scale)), int32(math.Round(y * c.Scale))
}

// WorldToScreenRadius converts a world-space radius to a screen radius
// (scaled, not rounded), used to size the drawn body circle.
func (c Camera) WorldToScreenRadius(r float64) float32 {
	return float32(r * c.Scale)
}
