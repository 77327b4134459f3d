package body

import (
	"math/rand"

	"github.com/pthm-cable/barnes-hut-nbody/config"
	"github.com/pthm-cable/barnes-hut-nbody/quadtree"
)

// RandomPopulation returns n bodies at rest, uniformly scattered over
// bounds and inserted into tree, with masses drawn uniformly from
// [1, config.MassRange+1). Every returned body has already been primed
// against tree's own gravity field, so the first Step call integrates a
// real acceleration rather than zero.
//
// This is the default initial-population source: spec.md names no
// population-file format, so random generation via rng is the only path.
func RandomPopulation(n int, bounds Bounds, rng *rand.Rand, tree *quadtree.Tree) []*Body {
	bodies := make([]*Body, n)
	for i := 0; i < n; i++ {
		p := Point{
			X:    rng.Float64() * bounds.Width,
			Y:    rng.Float64() * bounds.Height,
			Mass: rng.Float64()*config.MassRange + 1,
		}
		b := New(p)
		b.SetNode(tree.Insert(p))
		bodies[i] = b
	}

	gravity := TreeGravity(tree)
	for _, b := range bodies {
		b.Prime(gravity)
	}
	return bodies
}
