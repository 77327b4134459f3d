package quadtree

import (
	"github.com/pthm-cable/barnes-hut-nbody/config"
	"github.com/pthm-cable/barnes-hut-nbody/geom"
)

// VelocitySource looks up the pre-step velocity of a body at a given
// position, used by CollisionDetect to compute elastic exchange impulses
// without depending on the vmap package directly.
type VelocitySource interface {
	Velocity(p Point) Vector2
}

// Impact runs the Barnes-Hut force traversal for a probe point p against
// node, with opening criterion s/d > theta (spec §4.2).
func Impact(node *Node, p Point, theta float64) Vector2 {
	st, pt, children := node.snapshot()

	switch st {
	case stateEmpty:
		return Vector2{}

	case stateLeaf:
		return pairForce(p, pt)

	default: // stateInternal
		d := geom.Distance(pt, p)
		if d > 0 {
			s := node.square.Side()
			if s/d <= theta {
				return pairForce(p, pt)
			}
		}
		var total Vector2
		for _, c := range children {
			total = total.Add(Impact(c, p, theta))
		}
		return total
	}
}

// pairForce returns the Newtonian gravitational force exerted on p by a
// mass located at q, skipping same-point pairs and pairs closer than the
// collision floor (2R), where gravity gives way to collision handling.
func pairForce(p, q Point) Vector2 {
	if q.Eq(p) {
		return Vector2{}
	}
	d := geom.Distance(q, p)
	if d < 2*config.Radius {
		return Vector2{}
	}
	f := config.G * p.Mass * q.Mass / (d * d)
	dir := q.Sub(p).Scale(1 / d)
	return dir.Scale(f)
}

// CollisionDetect walks the tree pruned by Square.CanTouch/Touch and sums
// the elastic-exchange impulses of every body within 2R of p (spec §4.2).
func CollisionDetect(node *Node, p Point, vel VelocitySource) Vector2 {
	st, pt, children := node.snapshot()

	switch st {
	case stateEmpty:
		return Vector2{}

	case stateLeaf:
		if pt.Eq(p) {
			return Vector2{}
		}
		if !geom.Check(p, pt, config.Radius) {
			return Vector2{}
		}
		vp := vel.Velocity(p)
		vq := vel.Velocity(pt)
		return vq.Sub(vp).Scale(0.5)

	default: // stateInternal
		if !node.square.CanTouch(p, config.Radius) {
			return Vector2{}
		}
		if !node.square.Touch(p, config.Radius) {
			return Vector2{}
		}
		var total Vector2
		for _, c := range children {
			total = total.Add(CollisionDetect(c, p, vel))
		}
		return total
	}
}
