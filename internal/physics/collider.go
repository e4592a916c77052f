package physics

// EntityID is a non-owning handle to the entity that owns a collider or body.
// The entity arena lives outside this package; the zero value means "no owner".
type EntityID uint32

// NoEntity is the zero EntityID.
const NoEntity EntityID = 0

// Collider is an axis-aligned rectangle attached to an owning entity.
//
// A collider stores no position. Its world-space box is anchored at the
// owner's position as the top-left corner: [pos, pos+size].
// Extents are not validated; zero or negative sizes never overlap anything.
type Collider struct {
	Width     float64
	Height    float64
	IsTrigger bool     // Reported like solids; only callbacks interpret it
	Owner     EntityID // Must be set before registration with a World
}

// NewCollider creates a solid collider with the given extents.
func NewCollider(width, height float64) *Collider {
	return &Collider{Width: width, Height: height}
}

// NewTrigger creates a trigger collider with the given extents.
func NewTrigger(width, height float64) *Collider {
	return &Collider{Width: width, Height: height, IsTrigger: true}
}

// Size returns the collider extents as a vector.
func (c *Collider) Size() Vector2 {
	return Vector2{X: c.Width, Y: c.Height}
}

// HalfExtents returns half of the collider extents.
func (c *Collider) HalfExtents() Vector2 {
	return c.Size().Scale(0.5)
}

// Bounds returns the world-space box of the collider for an owner at pos.
func (c *Collider) Bounds(pos Vector2) AABB {
	return AABB{Min: pos, Max: pos.Add(c.Size())}
}
