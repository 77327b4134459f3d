package quadtree

// Tree wraps a quadtree root and the world bounds it was built from.
type Tree struct {
	root *Node
}

// New returns a tree whose root is an empty leaf bounded by the given
// square.
func New(bounds Square) *Tree {
	return &Tree{root: NewNode(bounds)}
}

// NewRoot returns a tree whose root is an empty leaf bounded by the world
// rectangle [0,width]x[0,height]; width and height are already in world
// units (display size divided by scale).
func NewRoot(width, height float64) *Tree {
	bounds := Square{
		Hi: Point{X: width, Y: height},
		Lo: Point{X: 0, Y: 0},
	}
	return New(bounds)
}

// Root returns the tree's root handle.
func (t *Tree) Root() Handle { return t.root }

// Insert inserts p starting from the tree's root and returns the handle of
// the leaf ultimately holding it.
func (t *Tree) Insert(p Point) Handle {
	return Insert(t.root, p)
}

// MakeReady reinserts p at the body's cached handle, refreshing it to point
// at the leaf now holding it. If p already sits in a leaf below the cached
// handle (the handle became internal when a later insert subdivided it),
// that leaf is returned without a second insert, so no aggregate on the
// way down is credited with p twice. If the cached node's square no longer
// contains p -- the body moved since it was last cached -- MakeReady falls
// back to a root reinsertion rather than risk placing p under the wrong
// quadrant ancestry (see the make_ready containment fallback note in
// DESIGN.md).
func (t *Tree) MakeReady(p Point, h Handle) Handle {
	if h == nil || !h.square.PlainContains(p) {
		return Insert(t.root, p)
	}
	for n := h; ; {
		st, pt, children := n.snapshot()
		if st != stateInternal {
			if st == stateLeaf && pt.Eq(p) {
				return n
			}
			break
		}
		n = children[n.square.Quadrant(p)]
	}
	return Insert(h, p)
}
