// Package quadtree implements the Barnes-Hut spatial index: an arena-free
// tree of pointer-linked nodes, insertion, mass aggregation, and the force
// and collision traversal queries.
//
// Node addresses never move once allocated (Go's GC, unlike the Rc<RefCell>
// handles the source used, needs no manual refcounting), so a Handle is
// simply a *Node: an opaque, movable reference safe to hold across threads
// within a single step, exactly as spec'd. Concurrent writers targeting the
// same new-step tree coordinate through a per-node mutex that is held only
// for the duration of a state transition or an aggregate update, never
// across a recursive descent -- this is the "lock a subtree during
// descent-with-update" option from the design notes, applied at the
// granularity of a single node rather than a whole subtree so sibling
// descents stay concurrent.
package quadtree

import (
	"sync"

	"github.com/pthm-cable/barnes-hut-nbody/geom"
)

type (
	Point   = geom.Point
	Vector2 = geom.Vector2
	Square  = geom.Square
)

type state uint8

const (
	stateEmpty state = iota
	stateLeaf
	stateInternal
)

// Node is a node of the quadtree. See the package doc for the concurrency
// model of the mutex.
type Node struct {
	mu       sync.Mutex
	square   Square
	state    state
	point    Point // leaf: the body's point; internal: the mass-weighted aggregate
	children [4]*Node
}

// Handle is an opaque, movable reference to a specific tree node, safe to
// hold across threads within a single step.
type Handle = *Node

// NewNode returns an empty leaf bounded by the given square.
func NewNode(bounds Square) *Node {
	return &Node{square: bounds}
}

// Square returns the node's bounding square.
func (n *Node) Square() Square {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.square
}

// snapshot returns a consistent (state, point, children) triple under lock.
func (n *Node) snapshot() (state, Point, [4]*Node) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state, n.point, n.children
}

// IsLeaf reports whether the node currently holds exactly one body
// (occupied leaf).
func (n *Node) IsLeaf() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state == stateLeaf
}

// IsEmpty reports whether the node holds no body and has no children.
func (n *Node) IsEmpty() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state == stateEmpty
}

// Point returns the node's leaf point, or its aggregated centre-of-mass if
// internal. The zero Point is returned for an empty node.
func (n *Node) Point() Point {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.point
}

// Mass returns the node's total mass (zero if empty).
func (n *Node) Mass() float64 {
	return n.Point().Mass
}
