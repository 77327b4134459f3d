// Package bench provides benchmark-mode step timing output and the
// display-mode FPS reporting option (spec §6).
package bench

import (
	"fmt"
	"math"
	"os"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"

	"github.com/pthm-cable/barnes-hut-nbody/config"
)

// StepRecord is one row of benchmark-mode step timing output.
type StepRecord struct {
	Tick      int64   `csv:"tick"`
	StepMs    float64 `csv:"step_ms"`
	BodyCount int     `csv:"body_count"`
	Engine    string  `csv:"engine"`
}

// Summary is the mean/stddev step time over a benchmark run.
type Summary struct {
	Steps  int
	MeanMs float64
	StdMs  float64
}

// Recorder writes one CSV row per step, header on the first write,
// matching the teacher's open-once/write-incrementally CSV idiom. It also
// retains each step's timing so Summary can report a run's mean/stddev.
type Recorder struct {
	f             *os.File
	headerWritten bool
	stepMs        []float64
}

// NewRecorder creates (or truncates) the CSV file at path.
func NewRecorder(path string) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: creating benchmark output %s: %v", config.ErrConfig, path, err)
	}
	return &Recorder{f: f}, nil
}

// Write appends one step's timing record.
func (r *Recorder) Write(rec StepRecord) error {
	r.stepMs = append(r.stepMs, rec.StepMs)

	records := []StepRecord{rec}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.f); err != nil {
			return fmt.Errorf("writing benchmark record: %w", err)
		}
		r.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, r.f); err != nil {
		return fmt.Errorf("writing benchmark record: %w", err)
	}
	return nil
}

// Summary reports the mean and (population) standard deviation of every
// step time written so far, via gonum/floats.
func (r *Recorder) Summary() Summary {
	if len(r.stepMs) == 0 {
		return Summary{}
	}
	mean := floats.Sum(r.stepMs) / float64(len(r.stepMs))

	var sumSq float64
	for _, ms := range r.stepMs {
		d := ms - mean
		sumSq += d * d
	}
	std := math.Sqrt(sumSq / float64(len(r.stepMs)))

	return Summary{Steps: len(r.stepMs), MeanMs: mean, StdMs: std}
}

// Close flushes and closes the underlying file.
func (r *Recorder) Close() error {
	if r == nil || r.f == nil {
		return nil
	}
	return r.f.Close()
}
