package engine

import (
	"sync"

	"github.com/pthm-cable/barnes-hut-nbody/body"
)

// Distributed is the MPI-style orchestrator used by the `mpi_normal` and
// `mpi_openmp` engines. Ranks are modelled as goroutines rather than OS
// processes, since nothing in the retrieved dependency pack binds to an
// MPI library; there is no wire protocol: every rank goroutine works on its
// own block of the shared in-process body slice and the ranks are joined
// with a sync.WaitGroup, keeping the block-distribution and per-step
// update/join shape spec §4.5 describes for real MPI ranks.
//
// InnerThreads > 1 additionally runs each rank's own slice through the
// BarrierWorkers backend (the `mpi_openmp` variant); otherwise each rank's
// slice runs on a single goroutine (`mpi_normal`).
type Distributed struct {
	Ranks        int
	InnerThreads int
}

// RunStep simulates one MPI round: root broadcasts VMAP population (done
// once, since ranks share the same in-process body slice -- broadcasting a
// copy would be wasted work with no correctness benefit here), each rank
// processes its own block of s.Bodies, and the goroutines are joined (the
// in-process equivalent of gathering every rank's updated slice back into
// the global array).
func (d Distributed) RunStep(s Step) error {
	populateVel(s.Bodies, s.Vel)

	blocks := BlockDistribution(len(s.Bodies), d.Ranks)

	var wg sync.WaitGroup
	for _, blk := range blocks {
		if blk.Len() == 0 {
			continue
		}
		wg.Add(1)
		go func(blk BlockRange) {
			defer wg.Done()
			d.runRank(s, s.Bodies[blk.Start:blk.End])
		}(blk)
	}
	wg.Wait()
	return nil
}

// runRank processes one rank's slice, optionally fanning it out further
// across InnerThreads goroutines (mpi_openmp).
func (d Distributed) runRank(s Step, slice []*body.Body) {
	if d.InnerThreads <= 1 {
		for _, b := range slice {
			b.Step(s.Prev, s.Next, s.Vel, s.Bounds, s.Gravity)
		}
		return
	}
	runBarrier(d.InnerThreads, s, slice)
}
