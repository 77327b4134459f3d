package geom

import "math"

// Vector2 is a 2D real vector used for velocity, acceleration, and impulse
// accumulation. Arithmetic follows gonum's spatial/barneshut Vector2
// convention (value receiver, Add/Sub/Scale).
type Vector2 struct {
	X, Y float64
}

// Add returns the vector sum of v and w.
func (v Vector2) Add(w Vector2) Vector2 {
	v.X += w.X
	v.Y += w.Y
	return v
}

// Sub returns v minus w.
func (v Vector2) Sub(w Vector2) Vector2 {
	v.X -= w.X
	v.Y -= w.Y
	return v
}

// Scale returns v scaled by f.
func (v Vector2) Scale(f float64) Vector2 {
	v.X *= f
	v.Y *= f
	return v
}

// Len returns the Euclidean length of v.
func (v Vector2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}
