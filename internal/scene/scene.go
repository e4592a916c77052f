package scene

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/physics"
)

// Scene owns a physics world, the entity arena and the simulation clock.
// It is not safe for concurrent use.
type Scene struct {
	name   string
	world  *physics.World
	logger *log.Logger

	entities []Entity
	index    map[physics.EntityID]Entity
	nextID   physics.EntityID

	doomed    map[physics.EntityID]bool
	doomOrder []physics.EntityID

	afterStep []func(*Scene)
	onDespawn []func(Entity)

	elapsed float64
	ticks   uint64
}

// New creates an empty scene around world. A nil logger discards output.
func New(name string, world *physics.World, logger *log.Logger) *Scene {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scene{
		name:   name,
		world:  world,
		logger: logger.With("scene", name),
		index:  make(map[physics.EntityID]Entity),
		doomed: make(map[physics.EntityID]bool),
	}
}

// Name returns the scene name.
func (s *Scene) Name() string { return s.name }

// World returns the physics world.
func (s *Scene) World() *physics.World { return s.world }

// Logger returns the scene logger.
func (s *Scene) Logger() *log.Logger { return s.logger }

// Elapsed returns the simulated seconds since the scene was created.
func (s *Scene) Elapsed() float64 { return s.elapsed }

// Ticks returns the number of completed updates.
func (s *Scene) Ticks() uint64 { return s.ticks }

// Spawn assigns e an ID, points its collider and body at it and registers
// them with the world. Entities spawned during an update are first updated
// on the next tick but take part in this tick's physics step.
func (s *Scene) Spawn(e Entity) (physics.EntityID, error) {
	b := e.base()
	if b.id != physics.NoEntity {
		return b.id, fmt.Errorf("scene: entity %d already spawned", b.id)
	}
	s.nextID++
	id := s.nextID
	b.id = id

	if b.col != nil {
		b.col.Owner = id
		if err := s.world.AddCollider(b.col); err != nil {
			b.unbind()
			return physics.NoEntity, fmt.Errorf("scene: spawn %s: %w", b.kind, err)
		}
	}
	if b.body != nil {
		b.body.Owner = id
		if err := s.world.AddRigidBody(b.body); err != nil {
			if b.col != nil {
				s.world.RemoveCollider(b.col)
			}
			b.unbind()
			return physics.NoEntity, fmt.Errorf("scene: spawn %s: %w", b.kind, err)
		}
	}

	s.entities = append(s.entities, e)
	s.index[id] = e
	return id, nil
}

// MustSpawn is Spawn for entities built by the caller that cannot fail.
func (s *Scene) MustSpawn(e Entity) physics.EntityID {
	id, err := s.Spawn(e)
	if err != nil {
		panic(err)
	}
	return id
}

// Despawn queues the entity for removal at the end of the current update.
// Unknown or already queued IDs are ignored.
func (s *Scene) Despawn(id physics.EntityID) {
	if _, ok := s.index[id]; !ok || s.doomed[id] {
		return
	}
	s.doomed[id] = true
	s.doomOrder = append(s.doomOrder, id)
}

// Alive reports whether id exists and is not queued for removal.
func (s *Scene) Alive(id physics.EntityID) bool {
	_, ok := s.index[id]
	return ok && !s.doomed[id]
}

// Entity looks up an entity by ID.
func (s *Scene) Entity(id physics.EntityID) (Entity, bool) {
	e, ok := s.index[id]
	return e, ok
}

// Entities returns the live entities in spawn order.
func (s *Scene) Entities() []Entity {
	out := make([]Entity, 0, len(s.entities))
	for _, e := range s.entities {
		if !s.doomed[e.ID()] {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of entities, including ones queued for removal.
func (s *Scene) Len() int { return len(s.entities) }

// Position implements physics.Positions.
func (s *Scene) Position(id physics.EntityID) (physics.Vector2, bool) {
	e, ok := s.index[id]
	if !ok {
		return physics.Vector2{}, false
	}
	return e.Position(), true
}

// AfterStep registers fn to run after every physics step, before queued
// entities are removed.
func (s *Scene) AfterStep(fn func(*Scene)) {
	s.afterStep = append(s.afterStep, fn)
}

// OnDespawn registers fn to run for every entity as it is removed.
func (s *Scene) OnDespawn(fn func(Entity)) {
	s.onDespawn = append(s.onDespawn, fn)
}

// Update runs one tick: every live entity updates in spawn order, then the
// world steps once, then after-step hooks run and queued entities are
// removed. It returns the number of contacts the world reported.
func (s *Scene) Update(dt float64) int {
	n := len(s.entities)
	for i := 0; i < n; i++ {
		e := s.entities[i]
		if s.doomed[e.ID()] {
			continue
		}
		e.Update(s, dt)
	}

	contacts := s.world.Step(dt, s)

	for _, fn := range s.afterStep {
		fn(s)
	}
	s.flush()

	s.elapsed += dt
	s.ticks++
	return contacts
}

func (s *Scene) flush() {
	if len(s.doomOrder) == 0 {
		return
	}
	for _, id := range s.doomOrder {
		e := s.index[id]
		b := e.base()
		if b.col != nil {
			s.world.RemoveCollider(b.col)
		}
		if b.body != nil {
			s.world.RemoveRigidBody(b.body)
		}
		delete(s.index, id)
		for _, fn := range s.onDespawn {
			fn(e)
		}
	}

	kept := s.entities[:0]
	for _, e := range s.entities {
		if !s.doomed[e.ID()] {
			kept = append(kept, e)
		}
	}
	clear(s.entities[len(kept):])
	s.entities = kept

	s.logger.Debug("despawned", "count", len(s.doomOrder), "live", len(s.entities))
	clear(s.doomed)
	s.doomOrder = s.doomOrder[:0]
}

// Checksum hashes the tick count and every entity's ID, kind, position and
// velocity in spawn order. Two scenes driven by the same inputs produce the
// same checksum.
func (s *Scene) Checksum() uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 64)

	buf = binary.LittleEndian.AppendUint64(buf, s.ticks)
	_, _ = d.Write(buf)

	for _, e := range s.entities {
		buf = buf[:0]
		buf = binary.LittleEndian.AppendUint32(buf, uint32(e.ID()))
		buf = append(buf, byte(e.Kind()))
		p := e.Position()
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(p.X))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(p.Y))
		if body := e.Body(); body != nil {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(body.Velocity.X))
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(body.Velocity.Y))
		}
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}
