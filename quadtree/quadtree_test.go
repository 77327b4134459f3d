package quadtree

import (
	"math"
	"sync"
	"testing"

	"github.com/pthm-cable/barnes-hut-nbody/config"
)

func world(side float64) *Tree {
	return NewRoot(side, side)
}

func TestInsertRoundTrip(t *testing.T) {
	tr := world(200)
	p := Point{X: 50, Y: 60, Mass: 1}
	h := tr.Insert(p)
	if !h.IsLeaf() {
		t.Fatalf("expected handle to reference an occupied leaf")
	}
	if h.Point() != p {
		t.Fatalf("leaf point = %+v, want %+v", h.Point(), p)
	}
}

func TestMakeReadyIdempotent(t *testing.T) {
	tr := world(200)
	p := Point{X: 50, Y: 60, Mass: 1}
	h := tr.Insert(p)

	h1 := tr.MakeReady(p, h)
	h2 := tr.MakeReady(p, h1)
	if h1 != h2 {
		t.Fatalf("MakeReady not idempotent for a stationary body")
	}
}

func TestMakeReadyFallsBackToRootWhenBodyMoved(t *testing.T) {
	tr := world(200)
	p := Point{X: 1, Y: 1, Mass: 1}
	// A neighbour inserted first makes p's cached leaf a small sub-square
	// near the origin instead of the whole-world root.
	tr.Insert(Point{X: 9, Y: 9, Mass: 1})
	h := tr.Insert(p)

	// Move far across the world; the cached leaf's tiny square no longer
	// contains the new position.
	moved := Point{X: 199, Y: 199, Mass: 1}
	h2 := tr.MakeReady(moved, h)
	if h2.Point() != moved {
		t.Fatalf("expected fallback reinsertion to place the moved point")
	}
}

func TestAggregateMassAndCentroid(t *testing.T) {
	tr := world(200)
	pts := []Point{
		{X: 10, Y: 10, Mass: 1},
		{X: 190, Y: 10, Mass: 1},
		{X: 10, Y: 190, Mass: 2},
		{X: 190, Y: 190, Mass: 2},
	}
	for _, p := range pts {
		tr.Insert(p)
	}

	root := tr.Root()
	wantMass := 6.0
	if math.Abs(root.Mass()-wantMass) > 1e-9 {
		t.Fatalf("root mass = %f, want %f", root.Mass(), wantMass)
	}

	var wantX, wantY float64
	for _, p := range pts {
		wantX += p.X * p.Mass
		wantY += p.Y * p.Mass
	}
	wantX /= wantMass
	wantY /= wantMass

	got := root.Point()
	if math.Abs(got.X-wantX) > 1e-9 || math.Abs(got.Y-wantY) > 1e-9 {
		t.Fatalf("root centroid = (%f,%f), want (%f,%f)", got.X, got.Y, wantX, wantY)
	}
}

func TestConcurrentInsertPreservesAggregateInvariant(t *testing.T) {
	tr := world(1000)
	const n = 500
	var wg sync.WaitGroup
	var totalMass float64
	var sumX, sumY float64
	var mu sync.Mutex

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := Point{
				X:    float64(i%50)*10 + 1,
				Y:    float64(i/50)*10 + 1,
				Mass: 1,
			}
			tr.Insert(p)
			mu.Lock()
			totalMass += p.Mass
			sumX += p.X * p.Mass
			sumY += p.Y * p.Mass
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	root := tr.Root()
	if math.Abs(root.Mass()-totalMass) > 1e-6 {
		t.Fatalf("root mass after concurrent insert = %f, want %f", root.Mass(), totalMass)
	}
	got := root.Point()
	wantX, wantY := sumX/totalMass, sumY/totalMass
	if math.Abs(got.X-wantX) > 1e-6 || math.Abs(got.Y-wantY) > 1e-6 {
		t.Fatalf("root centroid after concurrent insert = (%f,%f), want (%f,%f)", got.X, got.Y, wantX, wantY)
	}
}

// fixedVelocity is a trivial VelocitySource used by collision tests.
type fixedVelocity map[Point]Vector2

func (f fixedVelocity) Velocity(p Point) Vector2 { return f[p] }

func TestCollisionImpulseSymmetry(t *testing.T) {
	tr := world(200)
	p := Point{X: 100, Y: 100, Mass: 1}
	q := Point{X: 100.6, Y: 100, Mass: 1}
	tr.Insert(p)
	tr.Insert(q)

	vel := fixedVelocity{p: {X: 1, Y: 0}, q: {X: -1, Y: 0}}

	impulseP := CollisionDetect(tr.Root(), p, vel)
	impulseQ := CollisionDetect(tr.Root(), q, vel)

	if impulseP.X != -impulseQ.X || impulseP.Y != -impulseQ.Y {
		t.Fatalf("impulses not symmetric: p=%+v q=%+v", impulseP, impulseQ)
	}
	wantP := Vector2{X: -1, Y: 0}
	if impulseP != wantP {
		t.Fatalf("impulse on p = %+v, want %+v", impulseP, wantP)
	}
}

func TestBarnesHutOpeningApproximatesExactSum(t *testing.T) {
	tr := world(1000)
	cluster := []Point{
		{X: 10, Y: 10, Mass: 1},
		{X: 11, Y: 10, Mass: 1},
		{X: 10, Y: 11, Mass: 1},
		{X: 11, Y: 11, Mass: 1},
	}
	for _, p := range cluster {
		tr.Insert(p)
	}

	probe := Point{X: 500, Y: 500, Mass: 1}
	got := Impact(tr.Root(), probe, config.DistScaleLimit)

	var want Vector2
	for _, q := range cluster {
		want = want.Add(pairForce(probe, q))
	}

	dx := got.X - want.X
	dy := got.Y - want.Y
	err := math.Sqrt(dx*dx + dy*dy)
	mag := want.Len()
	if err > 0.01*mag {
		t.Fatalf("approximated force %+v deviates from exact sum %+v by more than 1%%", got, want)
	}
}
