// Package physics provides a small 2D physics and collision core.
//
// The core accumulates gravity into rigid body velocities and reports every
// pair of overlapping colliders to registered callbacks. It never moves
// entities and never resolves contacts: landing, blocking, pickups and damage
// are policy owned by the callbacks. It has no knowledge of what an entity is
// beyond the EntityID handle stored on colliders and bodies.
package physics

import "math"

// Vector2 is a 2D vector value type.
type Vector2 struct {
	X, Y float64
}

// Vec creates a new vector.
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Neg returns -v.
func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of v and o.
func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the euclidean length of v.
func (v Vector2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// WithX returns a copy of v with X replaced.
func (v Vector2) WithX(x float64) Vector2 {
	v.X = x
	return v
}

// WithY returns a copy of v with Y replaced.
func (v Vector2) WithY(y float64) Vector2 {
	v.Y = y
	return v
}

// IsZero reports whether both components are zero.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
