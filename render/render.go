// Package render is the display-mode orchestrator's renderer sink: it owns
// the window, draws one frame of bodies per tick, and surfaces the
// quit-event stream the orchestrator polls between steps (spec §6's
// renderer interface).
package render

import "github.com/pthm-cable/barnes-hut-nbody/camera"

// Sink is the renderer interface consumed by the display orchestrator.
// A frame is: Begin, one Point call per body, HUD, End.
// Implementations own their own window/backend lifecycle via Close.
type Sink interface {
	// Begin clears the background and starts a new frame.
	Begin()
	// Point draws one body at world position (x, y) with world radius r.
	Point(x, y, r float64)
	// HUD draws the on-screen status panel for the current frame.
	HUD(status Status)
	// End finishes the frame and presents it.
	End()
	// ShouldClose reports whether the user asked to quit (spec's
	// "quit event stream consumed at the orchestrator").
	ShouldClose() bool
	// Close releases the renderer's resources. Safe to call once, after
	// the display loop exits.
	Close()
}

// Status is the per-frame snapshot the HUD renders.
type Status struct {
	Tick      int64
	BodyCount int
	Threads   int
	Engine    string
	FPS       float64
}

// Camera returns a fixed-scale world-to-screen transform for the given
// configured scale, shared by every Sink implementation.
func Camera(scale float64) camera.Camera {
	return camera.New(scale)
}
