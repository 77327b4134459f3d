package geom

// Square is an axis-aligned bounding square given by its high corner (Hi)
// and low corner (Lo), with Hi.X >= Lo.X and Hi.Y >= Lo.Y.
//
// The source this spec was distilled from wrote Contains with
// simultaneously unsatisfiable strict inequalities (hi.x > p.x+R and
// lo.x < p.x-R using a Square(hi, lo) constructor where hi was actually the
// smaller corner). This implementation picks the corner convention that
// makes the stated invariant true -- Hi is the numerically larger corner --
// and applies it consistently to Contains, Touch, and quadrant selection.
type Square struct {
	Hi, Lo Point
}

// Side returns the square's side length.
func (s Square) Side() float64 {
	return s.Hi.X - s.Lo.X
}

// Mid returns the square's midpoint, used for quadrant selection.
func (s Square) Mid() Point {
	return Point{X: (s.Hi.X + s.Lo.X) / 2, Y: (s.Hi.Y + s.Lo.Y) / 2}
}

// Contains reports whether p, expanded by a halo of radius r, lies
// strictly inside the square.
func (s Square) Contains(p Point, r float64) bool {
	return s.Hi.X-r > p.X && p.X-r > s.Lo.X &&
		s.Hi.Y-r > p.Y && p.Y-r > s.Lo.Y
}

// Touch reports whether p lies within Euclidean distance r of the square
// (including its interior), via clamped per-axis distance.
func (s Square) Touch(p Point, r float64) bool {
	dx := axisClamp(s.Lo.X-p.X, p.X-s.Hi.X)
	dy := axisClamp(s.Lo.Y-p.Y, p.Y-s.Hi.Y)
	return dx*dx+dy*dy <= r*r
}

// CanTouch is a cheap conservative superset of Touch: true iff p lies
// within 3r of the square's edges along both axes (a box test with no
// corner rounding).
func (s Square) CanTouch(p Point, r float64) bool {
	mid := s.Mid()
	limitX := (s.Hi.X-s.Lo.X)/2 + 3*r
	limitY := (s.Hi.Y-s.Lo.Y)/2 + 3*r
	dx := mid.X - p.X
	dy := mid.Y - p.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= limitX && dy <= limitY
}

// PlainContains reports whether p lies within the square's bounds with no
// halo, inclusive of the edges. Used to decide whether a cached tree
// position is still valid for a body that may have moved (see
// quadtree.Tree.MakeReady).
func (s Square) PlainContains(p Point) bool {
	return p.X >= s.Lo.X && p.X <= s.Hi.X && p.Y >= s.Lo.Y && p.Y <= s.Hi.Y
}

// Quadrant selects the child index (0=SW,1=SE,2=NW,3=NE) of s that
// contains p, via the quadrant-bit rule p.X >= mid.X, p.Y >= mid.Y. Sub
// must be kept in agreement with this bit assignment: bit0 (1) means the
// east half, bit1 (2) means the north half.
func (s Square) Quadrant(p Point) int {
	mid := s.Mid()
	idx := 0
	if p.X >= mid.X {
		idx |= 1
	}
	if p.Y >= mid.Y {
		idx |= 2
	}
	return idx
}

// Sub returns the i-th quadrant sub-square (0=SW,1=SE,2=NW,3=NE) of s,
// split at the midpoint, agreeing with Quadrant's bit assignment: bit0 set
// selects the east (higher-X) half, bit1 set selects the north
// (higher-Y) half.
func (s Square) Sub(i int) Square {
	mid := s.Mid()
	switch i {
	case 0: // SW: x in [lo,mid], y in [lo,mid]
		return Square{Hi: mid, Lo: s.Lo}
	case 1: // SE: x in [mid,hi], y in [lo,mid]
		return Square{Hi: Point{X: s.Hi.X, Y: mid.Y}, Lo: Point{X: mid.X, Y: s.Lo.Y}}
	case 2: // NW: x in [lo,mid], y in [mid,hi]
		return Square{Hi: Point{X: mid.X, Y: s.Hi.Y}, Lo: Point{X: s.Lo.X, Y: mid.Y}}
	default: // NE: x in [mid,hi], y in [mid,hi]
		return Square{Hi: s.Hi, Lo: mid}
	}
}

// axisClamp returns max(a, b, 0), the clamped per-axis distance used by
// Touch.
func axisClamp(a, b float64) float64 {
	m := 0.0
	if a > m {
		m = a
	}
	if b > m {
		m = b
	}
	return m
}
