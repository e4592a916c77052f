// Package scene owns the entities of a running game together with the
// physics world they are registered in. A Scene is the explicit context
// object handed to every entity update; there is no global state.
package scene

import "github.com/vovakirdan/tui-platformer/internal/physics"

// Kind is a capability tag that contact callbacks switch on.
type Kind uint8

const (
	KindNone        Kind = iota
	KindActor            // player-controlled
	KindSolid            // blocks actors
	KindCollectible      // picked up on contact
	KindHazard           // damages actors
	KindProjectile       // bullets
)

func (k Kind) String() string {
	switch k {
	case KindActor:
		return "actor"
	case KindSolid:
		return "solid"
	case KindCollectible:
		return "collectible"
	case KindHazard:
		return "hazard"
	case KindProjectile:
		return "projectile"
	default:
		return "none"
	}
}

// Entity is anything that lives in a Scene. Concrete entities embed Base
// and override Update.
type Entity interface {
	ID() physics.EntityID
	Kind() Kind
	Position() physics.Vector2
	SetPosition(p physics.Vector2)
	Collider() *physics.Collider
	Body() *physics.RigidBody
	Update(s *Scene, dt float64)

	base() *Base
}

// Base carries the state every entity shares. The zero ID is assigned by
// Scene.Spawn.
type Base struct {
	Pos physics.Vector2

	id   physics.EntityID
	kind Kind
	col  *physics.Collider
	body *physics.RigidBody
}

// NewBase creates the embeddable part of an entity. col and body may be nil.
func NewBase(kind Kind, pos physics.Vector2, col *physics.Collider, body *physics.RigidBody) Base {
	return Base{Pos: pos, kind: kind, col: col, body: body}
}

func (b *Base) ID() physics.EntityID          { return b.id }
func (b *Base) Kind() Kind                    { return b.kind }
func (b *Base) Position() physics.Vector2     { return b.Pos }
func (b *Base) SetPosition(p physics.Vector2) { b.Pos = p }
func (b *Base) Collider() *physics.Collider   { return b.col }
func (b *Base) Body() *physics.RigidBody      { return b.body }

// Update does nothing; static entities need not override it.
func (b *Base) Update(*Scene, float64) {}

// Velocity returns the body velocity, or zero for bodiless entities.
func (b *Base) Velocity() physics.Vector2 {
	if b.body == nil {
		return physics.Vector2{}
	}
	return b.body.Velocity
}

// Integrate moves the entity by its body velocity over dt.
func (b *Base) Integrate(dt float64) {
	if b.body != nil {
		b.Pos = b.Pos.Add(b.body.Velocity.Scale(dt))
	}
}

// Bounds returns the world-space box of the collider at the current
// position. Entities without a collider get an empty box at their position.
func (b *Base) Bounds() physics.AABB {
	if b.col == nil {
		return physics.AABB{Min: b.Pos, Max: b.Pos}
	}
	return b.col.Bounds(b.Pos)
}

func (b *Base) base() *Base { return b }

// unbind clears the ID and owner handles after a failed spawn.
func (b *Base) unbind() {
	b.id = physics.NoEntity
	if b.col != nil {
		b.col.Owner = physics.NoEntity
	}
	if b.body != nil {
		b.body.Owner = physics.NoEntity
	}
}
