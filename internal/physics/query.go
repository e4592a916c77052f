package physics

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min, Max Vector2
}

// Width returns the horizontal extent.
func (a AABB) Width() float64 {
	return a.Max.X - a.Min.X
}

// Height returns the vertical extent.
func (a AABB) Height() float64 {
	return a.Max.Y - a.Min.Y
}

// Center returns the center point of the box.
func (a AABB) Center() Vector2 {
	return a.Min.Add(a.Max).Scale(0.5)
}

// Empty reports whether the box has no area.
func (a AABB) Empty() bool {
	return a.Max.X <= a.Min.X || a.Max.Y <= a.Min.Y
}

// Overlaps reports whether the interiors of a and b intersect.
// Boxes that only share an edge or corner do not overlap, and empty boxes
// never overlap anything.
func (a AABB) Overlaps(b AABB) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	if a.Min.X >= b.Max.X || b.Min.X >= a.Max.X {
		return false
	}
	if a.Min.Y >= b.Max.Y || b.Min.Y >= a.Max.Y {
		return false
	}
	return true
}

// Overlaps tests collider a at posA against collider b at posB.
func Overlaps(a *Collider, posA Vector2, b *Collider, posB Vector2) bool {
	return a.Bounds(posA).Overlaps(b.Bounds(posB))
}

// Penetration returns how deep a and b overlap on each axis.
// Both components are zero when the boxes do not overlap.
func Penetration(a, b AABB) Vector2 {
	if !a.Overlaps(b) {
		return Vector2{}
	}
	return Vector2{
		X: min(a.Max.X, b.Max.X) - max(a.Min.X, b.Min.X),
		Y: min(a.Max.Y, b.Max.Y) - max(a.Min.Y, b.Min.Y),
	}
}

// MinimumTranslation returns the smallest displacement that moves collider a
// (at posA) out of collider b (at posB). The push is along the axis of least
// penetration, pointing away from b's center; X wins ties.
// The second result is false when the colliders do not overlap.
func MinimumTranslation(a *Collider, posA Vector2, b *Collider, posB Vector2) (Vector2, bool) {
	boxA, boxB := a.Bounds(posA), b.Bounds(posB)
	pen := Penetration(boxA, boxB)
	if pen.IsZero() {
		return Vector2{}, false
	}

	ca, cb := boxA.Center(), boxB.Center()
	if pen.X <= pen.Y {
		if ca.X < cb.X {
			return Vector2{X: -pen.X}, true
		}
		return Vector2{X: pen.X}, true
	}
	if ca.Y < cb.Y {
		return Vector2{Y: -pen.Y}, true
	}
	return Vector2{Y: pen.Y}, true
}
