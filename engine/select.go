package engine

import (
	"fmt"

	"github.com/pthm-cable/barnes-hut-nbody/config"
)

// UsesTree reports whether engine evaluates gravity via the Barnes-Hut
// traversal (true) or an exact pairwise sum (false: brute_force and rayon,
// per the engine selection table). Every engine still uses a tree for
// collision_detect/make_ready/reinsert (spec §9 Open Question 3).
func UsesTree(e config.Engine) bool {
	return e != config.EngineBruteForce && e != config.EngineRayon
}

// Select returns the Orchestrator configured for the given engine and
// thread count (spec §4: engine selection table).
func Select(e config.Engine, threads int) (Orchestrator, error) {
	switch e {
	case config.EngineTree, config.EngineBruteForce:
		return Sequential{}, nil
	case config.EnginePthread, config.EngineOpenMP:
		return BarrierWorkers{Threads: threads}, nil
	case config.EngineRayon, config.EngineRayonTree:
		return WorkerPool{Threads: threads}, nil
	case config.EngineMPINormal:
		return Distributed{Ranks: threads}, nil
	case config.EngineMPIOpenMP:
		return Distributed{Ranks: threads, InnerThreads: threads}, nil
	default:
		return nil, fmt.Errorf("%w: unrecognised engine %q", config.ErrConfig, e)
	}
}
