package physics

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Registration errors.
var (
	ErrNilBody            = errors.New("physics: nil rigid body")
	ErrNilCollider        = errors.New("physics: nil collider")
	ErrNoOwner            = errors.New("physics: collider has no owner")
	ErrBodyRegistered     = errors.New("physics: rigid body already registered")
	ErrColliderRegistered = errors.New("physics: collider already registered")
)

// ContactFunc is invoked once per overlapping collider pair per step.
// a was registered before b. posA and posB are the owners' positions captured
// before detection; callbacks may freely mutate positions and velocities.
type ContactFunc func(a, b *Collider, posA, posB Vector2)

// Contact is one overlapping pair as seen by a single step.
type Contact struct {
	A, B       *Collider
	PosA, PosB Vector2
}

// Positions resolves an entity handle to its current position.
// The bool result is false when the entity no longer exists.
type Positions interface {
	Position(id EntityID) (Vector2, bool)
}

// PositionMap is a map-backed Positions.
type PositionMap map[EntityID]Vector2

// Position implements Positions.
func (m PositionMap) Position(id EntityID) (Vector2, bool) {
	p, ok := m[id]
	return p, ok
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for registration and step diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(w *World) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// World owns registered bodies, colliders and contact callbacks.
// It is not safe for concurrent use; all calls happen on the game loop.
type World struct {
	gravity   Vector2
	bodies    []*RigidBody
	colliders []*Collider
	callbacks []ContactFunc
	logger    *log.Logger

	// Scratch buffers reused across steps
	snap     []snapshot
	contacts []Contact
}

type snapshot struct {
	collider *Collider
	pos      Vector2
	box      AABB
}

// NewWorld creates a world with a fixed gravity vector.
func NewWorld(gravity Vector2, opts ...Option) *World {
	w := &World{
		gravity: gravity,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Gravity returns the world gravity.
func (w *World) Gravity() Vector2 {
	return w.gravity
}

// AddRigidBody registers a body for gravity accumulation.
func (w *World) AddRigidBody(b *RigidBody) error {
	if b == nil {
		return ErrNilBody
	}
	if w.bodyIndex(b) >= 0 {
		return fmt.Errorf("%w (owner %d)", ErrBodyRegistered, b.Owner)
	}
	w.bodies = append(w.bodies, b)
	w.logger.Debug("body registered", "owner", b.Owner, "bodies", len(w.bodies))
	return nil
}

// AddCollider registers a collider for overlap detection.
// The collider's Owner must be set first.
func (w *World) AddCollider(c *Collider) error {
	if c == nil {
		return ErrNilCollider
	}
	if c.Owner == NoEntity {
		return ErrNoOwner
	}
	if w.colliderIndex(c) >= 0 {
		return fmt.Errorf("%w (owner %d)", ErrColliderRegistered, c.Owner)
	}
	w.colliders = append(w.colliders, c)
	w.logger.Debug("collider registered",
		"owner", c.Owner,
		"size", fmt.Sprintf("%gx%g", c.Width, c.Height),
		"trigger", c.IsTrigger,
	)
	return nil
}

// AddCollisionCallback appends fn to the callback list.
// Callbacks run in registration order; nil is ignored.
func (w *World) AddCollisionCallback(fn ContactFunc) {
	if fn == nil {
		return
	}
	w.callbacks = append(w.callbacks, fn)
}

// RemoveRigidBody deregisters b. It reports whether b was registered.
func (w *World) RemoveRigidBody(b *RigidBody) bool {
	i := w.bodyIndex(b)
	if i < 0 {
		return false
	}
	w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
	w.logger.Debug("body removed", "owner", b.Owner)
	return true
}

// RemoveCollider deregisters c, preserving the order of the rest.
// It reports whether c was registered.
func (w *World) RemoveCollider(c *Collider) bool {
	i := w.colliderIndex(c)
	if i < 0 {
		return false
	}
	w.colliders = append(w.colliders[:i], w.colliders[i+1:]...)
	w.logger.Debug("collider removed", "owner", c.Owner)
	return true
}

// Bodies returns a copy of the registered bodies in registration order.
func (w *World) Bodies() []*RigidBody {
	out := make([]*RigidBody, len(w.bodies))
	copy(out, w.bodies)
	return out
}

// Colliders returns a copy of the registered colliders in registration order.
func (w *World) Colliders() []*Collider {
	out := make([]*Collider, len(w.colliders))
	copy(out, w.colliders)
	return out
}

// BodyCount returns the number of registered bodies.
func (w *World) BodyCount() int {
	return len(w.bodies)
}

// ColliderCount returns the number of registered colliders.
func (w *World) ColliderCount() int {
	return len(w.colliders)
}

// Step advances the world by dt seconds and returns the number of
// overlapping pairs reported.
//
// Gravity is accumulated into every body's velocity first. Then each
// collider's box is captured once from entities; colliders whose owner is
// missing are skipped. Every pair (i, j), i < j in registration order, is
// tested, and for each overlapping pair every callback runs in registration
// order. Nothing is moved or corrected.
func (w *World) Step(dt float64, entities Positions) int {
	for _, b := range w.bodies {
		b.Velocity = b.Velocity.Add(w.gravity.Scale(b.GravityScale * dt))
	}

	w.snap = w.snap[:0]
	for _, c := range w.colliders {
		pos, ok := entities.Position(c.Owner)
		if !ok {
			w.logger.Debug("collider owner missing, skipped", "owner", c.Owner)
			continue
		}
		w.snap = append(w.snap, snapshot{collider: c, pos: pos, box: c.Bounds(pos)})
	}

	w.contacts = w.contacts[:0]
	for i := 0; i < len(w.snap); i++ {
		a := &w.snap[i]
		for j := i + 1; j < len(w.snap); j++ {
			b := &w.snap[j]
			if a.box.Overlaps(b.box) {
				w.contacts = append(w.contacts, Contact{
					A: a.collider, B: b.collider,
					PosA: a.pos, PosB: b.pos,
				})
			}
		}
	}

	if len(w.contacts) == 0 || len(w.callbacks) == 0 {
		return len(w.contacts)
	}

	// Callbacks added while notifying take effect next step
	callbacks := w.callbacks[:len(w.callbacks):len(w.callbacks)]
	contacts := w.contacts
	for _, ct := range contacts {
		for _, fn := range callbacks {
			fn(ct.A, ct.B, ct.PosA, ct.PosB)
		}
	}
	return len(contacts)
}

func (w *World) bodyIndex(b *RigidBody) int {
	for i, x := range w.bodies {
		if x == b {
			return i
		}
	}
	return -1
}

func (w *World) colliderIndex(c *Collider) int {
	for i, x := range w.colliders {
		if x == c {
			return i
		}
	}
	return -1
}
