package engine

import (
	"github.com/pthm-cable/barnes-hut-nbody/body"
	"github.com/pthm-cable/barnes-hut-nbody/quadtree"
	"github.com/pthm-cable/barnes-hut-nbody/vmap"
)

// Step is everything an orchestrator needs to run one tick's pipeline over
// the full body population.
type Step struct {
	Bodies  []*body.Body
	Prev    *quadtree.Tree
	Next    *quadtree.Tree
	Vel     *vmap.Map
	Bounds  body.Bounds
	Gravity body.GravityFunc
}

// Orchestrator drives the per-body pipeline over a population for one
// step. Implementations differ only in how they partition and schedule the
// per-body work; the pipeline itself (body.Body.Step) is identical for all
// of them.
type Orchestrator interface {
	RunStep(s Step) error
}

// populateVel clears vel and republishes every body's pre-step velocity --
// the "populate VMAP" phase of the shared frame loop (spec §4.5), common to
// every orchestrator and run single-threaded before any worker starts,
// since population is VMAP's exclusive-writer phase.
func populateVel(bodies []*body.Body, vel *vmap.Map) {
	vel.Clear()
	for _, b := range bodies {
		vel.Set(b.Position, b.Velocity)
	}
}
