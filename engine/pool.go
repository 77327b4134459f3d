package engine

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// chunkSize is the granularity of work handed to each pool worker. Smaller
// than a Threads-sized BalancedChunks split, so idle workers can steal more
// work from the channel instead of sitting on an oversized static slice --
// the "data-parallel iterator" backend spec §4.5 calls equivalent in
// semantics to the fixed-worker barrier backend.
const chunkSize = 64

// WorkerPool is the shared-memory backend used by the `rayon` and
// `rayon_tree` engines: a fixed pool of Threads goroutines pulling index
// chunks off a shared channel until it's drained, coordinated with
// errgroup.Group instead of a hand-rolled WaitGroup + error slice.
type WorkerPool struct {
	Threads int
}

// RunStep populates VMAP, then drains the body array through Threads
// workers in chunkSize-sized pieces.
func (p WorkerPool) RunStep(s Step) error {
	populateVel(s.Bodies, s.Vel)

	n := len(s.Bodies)
	jobs := make(chan Range)
	go func() {
		defer close(jobs)
		for start := 0; start < n; start += chunkSize {
			end := start + chunkSize
			if end > n {
				end = n
			}
			jobs <- Range{Start: start, End: end}
		}
	}()

	g, _ := errgroup.WithContext(context.Background())
	workers := p.Threads
	if workers > n && n > 0 {
		workers = n
	}
	if workers <= 0 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for c := range jobs {
				for idx := c.Start; idx < c.End; idx++ {
					b := s.Bodies[idx]
					b.Step(s.Prev, s.Next, s.Vel, s.Bounds, s.Gravity)
				}
			}
			return nil
		})
	}
	return g.Wait()
}
