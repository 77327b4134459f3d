package render

import (
	"fmt"

	rg "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/barnes-hut-nbody/camera"
)

// RaylibSink is the raylib-backed Sink. It owns the window for the
// lifetime of the display loop; Close must be called exactly once, after
// ShouldClose starts returning true.
type RaylibSink struct {
	cam     camera.Camera
	showHUD bool
}

// NewRaylibSink opens a window sized for the configured display width and
// height and returns a Sink drawing at the given world scale.
func NewRaylibSink(width, height int32, scale float64) *RaylibSink {
	rl.InitWindow(width, height, "barnes-hut-nbody")
	rl.SetTargetFPS(60)
	return &RaylibSink{cam: camera.New(scale), showHUD: true}
}

// Begin clears the frame to black, matching the teacher's dark-background
// convention (game/rendering.go's rl.ClearBackground(rl.Black)).
func (s *RaylibSink) Begin() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
}

// Point draws a single body as a filled circle at its world position.
func (s *RaylibSink) Point(x, y, r float64) {
	sx, sy := s.cam.WorldToScreen(x, y)
	sr := s.cam.WorldToScreenRadius(r)
	if sr < 1 {
		sr = 1
	}
	rl.DrawCircle(sx, sy, sr, rl.RayWhite)
}

// HUD draws a small status panel and a toggle checkbox, mirroring the
// teacher's descriptor-driven HUD (ui.HUDData) at a much smaller scale:
// this domain has no species/cell/energy fields to report, only the
// engine identity, body/thread counts, tick, and FPS.
func (s *RaylibSink) HUD(status Status) {
	s.showHUD = rg.CheckBox(rl.Rectangle{X: 10, Y: 10, Width: 16, Height: 16}, "HUD", s.showHUD)
	if !s.showHUD {
		return
	}

	panelW, panelH := int32(220), int32(90)
	rl.DrawRectangle(10, 34, panelW, panelH, rl.Color{R: 0, G: 0, B: 0, A: 180})
	rl.DrawRectangleLines(10, 34, panelW, panelH, rl.Color{R: 80, G: 80, B: 80, A: 255})

	lines := []string{
		fmt.Sprintf("engine: %s", status.Engine),
		fmt.Sprintf("bodies: %d", status.BodyCount),
		fmt.Sprintf("threads: %d", status.Threads),
		fmt.Sprintf("tick: %d", status.Tick),
		fmt.Sprintf("fps: %.0f", status.FPS),
	}
	for i, line := range lines {
		rl.DrawText(line, 20, int32(42+i*14), 12, rl.LightGray)
	}
}

// End finishes and presents the frame.
func (s *RaylibSink) End() {
	rl.EndDrawing()
}

// ShouldClose reports whether the window's close event fired.
func (s *RaylibSink) ShouldClose() bool {
	return rl.WindowShouldClose()
}

// FPS satisfies bench.FPSReporter, reading raylib's own frame counter.
func (s *RaylibSink) FPS() float64 {
	return float64(rl.GetFPS())
}

// Close releases the window.
func (s *RaylibSink) Close() {
	rl.CloseWindow()
}
