package quadtree

import "github.com/pthm-cable/barnes-hut-nbody/config"

// Insert inserts p into the subtree rooted at node and returns the handle
// of the occupied leaf ultimately holding it (spec §4.2).
func Insert(node *Node, p Point) Handle {
	node.mu.Lock()
	switch node.state {
	case stateEmpty:
		node.state = stateLeaf
		node.point = p
		node.mu.Unlock()
		return node

	case stateLeaf:
		if node.point.Eq(p) {
			// Re-inserting the exact point already resident is a no-op:
			// this is the common case make_ready hits every step for a
			// body nothing else has displaced, and it's what keeps
			// make_ready's typical cost O(1) rather than cascading a
			// pointless subdivide-to-floor chase of itself.
			node.mu.Unlock()
			return node
		}
		if node.square.Side() < config.MinSize {
			node.point = p
			node.mu.Unlock()
			return node
		}
		old := node.point
		node.point = Point{}
		for i := range node.children {
			node.children[i] = NewNode(node.square.Sub(i))
		}
		oldChild := node.children[node.square.Quadrant(old)]
		node.state = stateInternal
		node.mu.Unlock()

		Insert(oldChild, old)
		addAggregate(node, old)
		h := Insert(node.children[node.square.Quadrant(p)], p)
		addAggregate(node, p)
		return h

	default: // stateInternal
		child := node.children[node.square.Quadrant(p)]
		node.mu.Unlock()
		h := Insert(child, p)
		addAggregate(node, p)
		return h
	}
}

// addAggregate folds p's mass-weighted contribution into node's aggregated
// centre-of-mass. Protected by node's own mutex so concurrent insertions
// converging on the same ancestor accumulate correctly regardless of
// arrival order (the running weighted mean is associative/commutative
// under lock).
func addAggregate(node *Node, p Point) {
	node.mu.Lock()
	defer node.mu.Unlock()
	total := node.point.Mass + p.Mass
	if total == 0 {
		return
	}
	node.point.X = (node.point.X*node.point.Mass + p.X*p.Mass) / total
	node.point.Y = (node.point.Y*node.point.Mass + p.Y*p.Mass) / total
	node.point.Mass = total
}
