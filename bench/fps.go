package bench

import (
	"fmt"
	"io"
	"os"
	"time"
)

// FPSReporter is implemented by the (out-of-scope) FPS counter collaborator.
// The orchestrator polls it to decide what to print; it never computes a
// frame rate itself.
type FPSReporter interface {
	FPS() float64
}

// logWriter is the destination for plain (non-structured) benchmark/FPS
// output lines, mirroring the teacher's package-level Logf writer.
var logWriter io.Writer

// SetLogWriter sets the plain-log output destination. A nil writer (the
// zero value) falls back to os.Stdout.
func SetLogWriter(w io.Writer) { logWriter = w }

// Logf writes a formatted plain-text line.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
		return
	}
	fmt.Fprintln(os.Stdout, msg)
}

// FPSTicker prints the current FPS every interval, as long as FPS reporting
// is enabled (spec §6 `fps` option). Call Tick once per rendered frame.
type FPSTicker struct {
	reporter FPSReporter
	enabled  bool
	interval time.Duration
	last     time.Time
}

// NewFPSTicker returns a ticker that prints at most once per interval,
// reading the current rate from reporter. If enabled is false, Tick is a
// no-op.
func NewFPSTicker(reporter FPSReporter, enabled bool, interval time.Duration) *FPSTicker {
	return &FPSTicker{reporter: reporter, enabled: enabled, interval: interval}
}

// Tick prints the FPS line if the interval has elapsed since the last
// print, or if this is the first call.
func (t *FPSTicker) Tick(now time.Time) {
	if !t.enabled {
		return
	}
	if !t.last.IsZero() && now.Sub(t.last) < t.interval {
		return
	}
	t.last = now
	Logf("FPS: %.1f", t.reporter.FPS())
}
