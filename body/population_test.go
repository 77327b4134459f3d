package body

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/barnes-hut-nbody/config"
	"github.com/pthm-cable/barnes-hut-nbody/quadtree"
)

func TestRandomPopulationStaysInBoundsAndHasPositiveMass(t *testing.T) {
	bounds := Bounds{Width: 200, Height: 200}
	tree := quadtree.NewRoot(bounds.Width, bounds.Height)
	rng := rand.New(rand.NewSource(1))

	bodies := RandomPopulation(50, bounds, rng, tree)
	if len(bodies) != 50 {
		t.Fatalf("expected 50 bodies, got %d", len(bodies))
	}
	for i, b := range bodies {
		if b.Position.X < 0 || b.Position.X > bounds.Width {
			t.Fatalf("body %d x=%v out of world", i, b.Position.X)
		}
		if b.Position.Y < 0 || b.Position.Y > bounds.Height {
			t.Fatalf("body %d y=%v out of world", i, b.Position.Y)
		}
		if b.Position.Mass <= 0 || b.Position.Mass > config.MassRange+1 {
			t.Fatalf("body %d mass=%v out of range", i, b.Position.Mass)
		}
		if b.Node() == nil {
			t.Fatalf("body %d was not inserted into tree", i)
		}
	}
}

func TestRandomPopulationIsPrimedWithNonZeroAcceleration(t *testing.T) {
	bounds := Bounds{Width: 50, Height: 50}
	tree := quadtree.NewRoot(bounds.Width, bounds.Height)
	rng := rand.New(rand.NewSource(2))

	bodies := RandomPopulation(20, bounds, rng, tree)
	anyNonZero := false
	for _, b := range bodies {
		if b.Acceleration.X != 0 || b.Acceleration.Y != 0 {
			anyNonZero = true
			break
		}
	}
	if !anyNonZero {
		t.Fatalf("expected at least one primed body with nonzero acceleration")
	}
}
