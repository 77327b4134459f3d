package engine

import (
	"sync"

	"github.com/pthm-cable/barnes-hut-nbody/body"
)

// BarrierWorkers is the shared-memory backend used by the `pthread` and
// `openmp` engines: exactly Threads goroutines, each given a fixed
// contiguous chunk of the body array, synchronised by a single
// sync.WaitGroup barrier after every body in the step has run (spec §4.5).
// Grounded on the chunk-and-join pattern of the teacher's parallel
// behavior update.
type BarrierWorkers struct {
	Threads int
}

// RunStep populates VMAP, then fans out Threads workers over balanced
// chunks of the body array and waits for all of them to finish before
// returning.
func (w BarrierWorkers) RunStep(s Step) error {
	populateVel(s.Bodies, s.Vel)
	runBarrier(w.Threads, s, s.Bodies)
	return nil
}

// runBarrier fans out threads workers over balanced chunks of bodies and
// waits for all of them. It does not touch VMAP, so a caller that has
// already populated it (the distributed engine's inner parallelism) can
// reuse this directly without re-clearing a snapshot other ranks still
// need.
func runBarrier(threads int, s Step, bodies []*body.Body) {
	chunks := BalancedChunks(len(bodies), threads)

	var wg sync.WaitGroup
	for _, c := range chunks {
		if c.Len() == 0 {
			continue
		}
		wg.Add(1)
		go func(c Range) {
			defer wg.Done()
			for i := c.Start; i < c.End; i++ {
				b := bodies[i]
				b.Step(s.Prev, s.Next, s.Vel, s.Bounds, s.Gravity)
			}
		}(c)
	}
	wg.Wait()
}
