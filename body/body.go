// Package body implements the per-body state and the fixed seven-step
// pipeline that advances one body through a single simulation tick
// (make_ready, collision_detect, update_velocity, update_position,
// check_boundary, gravity_impact, reinsert).
package body

import (
	"github.com/pthm-cable/barnes-hut-nbody/config"
	"github.com/pthm-cable/barnes-hut-nbody/geom"
	"github.com/pthm-cable/barnes-hut-nbody/quadtree"
	"github.com/pthm-cable/barnes-hut-nbody/vmap"
)

type (
	Point   = geom.Point
	Vector2 = geom.Vector2
)

// Bounds is the world rectangle bodies are reflected against.
type Bounds struct {
	Width, Height float64
}

// Body is the mutable per-body state: position, velocity, acceleration,
// and a cached handle to the leaf most recently holding it. Mass lives in
// Position.Mass and never changes across a body's lifetime.
type Body struct {
	Position     Point
	Velocity     Vector2
	Acceleration Vector2
	node         quadtree.Handle
}

// New returns a body at rest at p, with no cached tree handle. The
// orchestrator must insert it into the initial tree before the first step.
func New(p Point) *Body {
	return &Body{Position: p}
}

// Node returns the body's cached leaf handle, or nil if it has not yet been
// inserted into any tree.
func (b *Body) Node() quadtree.Handle { return b.node }

// SetNode sets the body's cached leaf handle, used by the orchestrator to
// seed a body's initial position in the first step's previous tree.
func (b *Body) SetNode(h quadtree.Handle) { b.node = h }

// GravityFunc evaluates the net gravitational force on a body at p. Tree
// engines evaluate it via the Barnes-Hut traversal (TreeGravity); the
// brute_force engine evaluates it via an exact pairwise sum
// (BruteForceGravity) -- the only pipeline step that distinguishes the two
// (spec §9 Open Question 3).
type GravityFunc func(p Point) Vector2

// TreeGravity returns a GravityFunc backed by the Barnes-Hut traversal of
// tree.
func TreeGravity(tree *quadtree.Tree) GravityFunc {
	return func(p Point) Vector2 {
		return quadtree.Impact(tree.Root(), p, config.DistScaleLimit)
	}
}

// BruteForceGravity returns a GravityFunc that sums the exact Newtonian
// pairwise force from every point in snapshot, with no spatial index.
// snapshot must be a value copy of every body's pre-step position (e.g.
// via Positions), not a live []*Body -- concurrent orchestrators mutate
// body positions mid-step, and reading through live pointers would race
// and would no longer be evaluating gravity against a single consistent
// pre-step state the way the frozen tree is for tree engines.
func BruteForceGravity(snapshot []Point) GravityFunc {
	return func(p Point) Vector2 {
		var total Vector2
		for _, q := range snapshot {
			total = total.Add(pairForce(p, q))
		}
		return total
	}
}

// Positions returns a value-copy snapshot of every body's current
// position, suitable for BruteForceGravity.
func Positions(bodies []*Body) []Point {
	pts := make([]Point, len(bodies))
	for i, b := range bodies {
		pts[i] = b.Position
	}
	return pts
}

// pairForce mirrors quadtree's own pair force: Newtonian gravity, skipping
// the same point and pairs closer than the collision floor (2R).
func pairForce(p, q Point) Vector2 {
	if q.Eq(p) {
		return Vector2{}
	}
	d := geom.Distance(q, p)
	if d < 2*config.Radius {
		return Vector2{}
	}
	f := config.G * p.Mass * q.Mass / (d * d)
	return q.Sub(p).Scale(1 / d).Scale(f)
}

// Prime computes this body's initial acceleration from gravity, before the
// first step runs. Bodies are otherwise created with zero acceleration;
// without this the first step's update_velocity would integrate against a
// zero acceleration and gravity would only take effect one step late.
// RandomPopulation calls Prime once per body with the initial tree's
// Barnes-Hut gravity (for every engine, brute_force included), immediately
// after every body is inserted into that tree and before the step loop
// begins.
func (b *Body) Prime(gravity GravityFunc) {
	force := gravity(b.Position)
	b.Acceleration = force.Scale(1 / b.Position.Mass)
}

// Step runs the fixed seven-step pipeline for one body: prev is the
// previous-step tree (make_ready re-inserts the body's unchanged position
// into it and collision_detect reads it, even under brute_force), next is
// the tree under concurrent construction by every body this step and the
// target of reinsert,
// vel is the step's pre-step velocity snapshot, bounds is the world
// rectangle, and gravity evaluates step 6.
//
// Order matters: collision resolution (steps 1-2) must run before any
// velocity mutation, since it reads pre-step velocities out of vel; gravity
// (step 6) is evaluated at the body's post-integration position, so next
// step's acceleration already reflects this step's motion; reinsert (step 7)
// is last so next accumulates this step's final positions.
func (b *Body) Step(prev, next *quadtree.Tree, vel *vmap.Map, bounds Bounds, gravity GravityFunc) {
	// 1. make_ready
	b.node = prev.MakeReady(b.Position, b.node)

	// 2. collision_detect
	impulse := quadtree.CollisionDetect(prev.Root(), b.Position, vel)
	b.Velocity = b.Velocity.Add(impulse)

	// 3. update_velocity
	b.Velocity = b.Velocity.Add(b.Acceleration.Scale(config.Alpha))

	// 4. update_position
	b.Position = b.Position.Add(b.Velocity.Scale(config.Alpha))

	// 5. check_boundary
	b.checkBoundary(bounds)

	// 6. gravity_impact
	force := gravity(b.Position)
	b.Acceleration = force.Scale(1 / b.Position.Mass)

	// 7. reinsert
	b.node = next.Insert(b.Position)
}

// checkBoundary reflects position and velocity off a crossed world edge,
// per axis, with a fixed-coefficient inelastic rebound (50% velocity
// retained, direction reversed).
func (b *Body) checkBoundary(bounds Bounds) {
	const r = config.Radius

	if b.Position.X-r < 0 {
		b.Position.X = r + config.BoundaryEpsilon
		b.Velocity.X = -b.Velocity.X * 0.5
	} else if b.Position.X+r > bounds.Width {
		b.Position.X = bounds.Width - r - config.BoundaryEpsilon
		b.Velocity.X = -b.Velocity.X * 0.5
	}

	if b.Position.Y-r < 0 {
		b.Position.Y = r + config.BoundaryEpsilon
		b.Velocity.Y = -b.Velocity.Y * 0.5
	} else if b.Position.Y+r > bounds.Height {
		b.Position.Y = bounds.Height - r - config.BoundaryEpsilon
		b.Velocity.Y = -b.Velocity.Y * 0.5
	}
}
