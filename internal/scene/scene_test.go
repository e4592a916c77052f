package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/physics"
)

// mover integrates its body and counts updates.
type mover struct {
	Base
	updates int
}

func (m *mover) Update(_ *Scene, dt float64) {
	m.updates++
	m.Integrate(dt)
}

func newMover(pos physics.Vector2, gravityScale float64) *mover {
	return &mover{Base: NewBase(KindActor, pos,
		physics.NewCollider(1, 1), physics.NewRigidBody(1, gravityScale))}
}

func newBlock(kind Kind, x, y, w, h float64) *mover {
	return &mover{Base: NewBase(kind, physics.Vec(x, y), physics.NewCollider(w, h), nil)}
}

func TestSpawnAssignsOwners(t *testing.T) {
	w := physics.NewWorld(physics.Vector2{})
	s := New("test", w, nil)

	m := newMover(physics.Vec(1, 2), 1)
	id, err := s.Spawn(m)
	require.NoError(t, err)

	assert.NotEqual(t, physics.NoEntity, id)
	assert.Equal(t, id, m.ID())
	assert.Equal(t, id, m.Collider().Owner)
	assert.Equal(t, id, m.Body().Owner)
	assert.Equal(t, 1, w.ColliderCount())
	assert.Equal(t, 1, w.BodyCount())

	pos, ok := s.Position(id)
	require.True(t, ok)
	assert.Equal(t, physics.Vec(1, 2), pos)

	_, err = s.Spawn(m)
	assert.Error(t, err, "spawning twice should fail")
	assert.Equal(t, 1, s.Len())
}

func TestSpawnRollsBackOnBodyFailure(t *testing.T) {
	w := physics.NewWorld(physics.Vector2{})
	s := New("test", w, nil)

	m := newMover(physics.Vec(1, 2), 1)
	require.NoError(t, w.AddRigidBody(m.Body()))

	id, err := s.Spawn(m)
	require.ErrorIs(t, err, physics.ErrBodyRegistered)
	assert.Equal(t, physics.NoEntity, id)
	assert.Equal(t, physics.NoEntity, m.ID())
	assert.Equal(t, physics.NoEntity, m.Collider().Owner)
	assert.Equal(t, physics.NoEntity, m.Body().Owner)
	assert.Equal(t, 0, w.ColliderCount(), "collider should be removed again")
	assert.Equal(t, 0, s.Len())

	require.True(t, w.RemoveRigidBody(m.Body()))
	id, err = s.Spawn(m)
	require.NoError(t, err)
	assert.Equal(t, id, m.Body().Owner)
}

func TestSpawnWithoutCollider(t *testing.T) {
	s := New("test", physics.NewWorld(physics.Vector2{}), nil)
	e := &mover{Base: NewBase(KindNone, physics.Vector2{}, nil, nil)}

	id, err := s.Spawn(e)
	require.NoError(t, err)
	assert.True(t, s.Alive(id))
	assert.Equal(t, 0, s.World().ColliderCount())
}

func TestUpdateOrderGravityThenIntegrate(t *testing.T) {
	w := physics.NewWorld(physics.Vec(0, 10))
	s := New("test", w, nil)
	m := newMover(physics.Vector2{}, 1)
	s.MustSpawn(m)

	// Entities update before the step, so the first tick moves nothing.
	s.Update(0.5)
	assert.Equal(t, physics.Vector2{}, m.Position())
	assert.Equal(t, physics.Vec(0, 5), m.Velocity())

	s.Update(0.5)
	assert.Equal(t, physics.Vec(0, 2.5), m.Position())
	assert.Equal(t, physics.Vec(0, 10), m.Velocity())

	assert.Equal(t, uint64(2), s.Ticks())
	assert.InDelta(t, 1.0, s.Elapsed(), 1e-9)
	assert.Equal(t, 2, m.updates)
}

func TestDespawnIsDeferred(t *testing.T) {
	w := physics.NewWorld(physics.Vector2{})
	s := New("test", w, nil)

	a := newBlock(KindActor, 0, 0, 2, 2)
	b := newBlock(KindCollectible, 1, 1, 2, 2)
	idA := s.MustSpawn(a)
	idB := s.MustSpawn(b)

	var seen int
	var removed []physics.EntityID
	w.AddCollisionCallback(func(x, y *physics.Collider, _, _ physics.Vector2) {
		seen++
		// Despawning inside a callback keeps the pair valid for this step.
		s.Despawn(y.Owner)
		s.Despawn(y.Owner)
		assert.False(t, s.Alive(y.Owner))
		_, ok := s.Entity(y.Owner)
		assert.True(t, ok)
	})
	s.OnDespawn(func(e Entity) { removed = append(removed, e.ID()) })

	assert.Equal(t, 1, s.Update(1.0/60))
	assert.Equal(t, 1, seen)
	assert.Equal(t, []physics.EntityID{idB}, removed)

	assert.True(t, s.Alive(idA))
	assert.False(t, s.Alive(idB))
	assert.Equal(t, 1, w.ColliderCount())
	assert.Len(t, s.Entities(), 1)

	assert.Equal(t, 0, s.Update(1.0/60))
	assert.Equal(t, 1, seen)
}

func TestDespawnUnknownIgnored(t *testing.T) {
	s := New("test", physics.NewWorld(physics.Vector2{}), nil)
	s.Despawn(42)
	s.Update(1)
	assert.Equal(t, 0, s.Len())
}

func TestEntitiesHidesQueued(t *testing.T) {
	s := New("test", physics.NewWorld(physics.Vector2{}), nil)
	a := s.MustSpawn(newBlock(KindSolid, 0, 0, 1, 1))
	b := s.MustSpawn(newBlock(KindSolid, 5, 0, 1, 1))
	c := s.MustSpawn(newBlock(KindSolid, 9, 0, 1, 1))

	s.Despawn(b)
	var ids []physics.EntityID
	for _, e := range s.Entities() {
		ids = append(ids, e.ID())
	}
	assert.Equal(t, []physics.EntityID{a, c}, ids)
	assert.Equal(t, 3, s.Len())

	s.Update(0)
	assert.Equal(t, 2, s.Len())
}

func TestQueuedEntitiesSkipUpdate(t *testing.T) {
	s := New("test", physics.NewWorld(physics.Vector2{}), nil)
	m := newMover(physics.Vector2{}, 0)
	id := s.MustSpawn(m)

	s.Despawn(id)
	s.Update(1)
	assert.Equal(t, 0, m.updates)
}

func TestAfterStepRunsBeforeFlush(t *testing.T) {
	s := New("test", physics.NewWorld(physics.Vector2{}), nil)
	id := s.MustSpawn(newBlock(KindSolid, 0, 0, 1, 1))
	s.Despawn(id)

	var present bool
	s.AfterStep(func(sc *Scene) {
		_, present = sc.Entity(id)
	})
	s.Update(1)

	assert.True(t, present)
	_, ok := s.Entity(id)
	assert.False(t, ok)
}

func TestChecksumDeterministic(t *testing.T) {
	build := func() *Scene {
		s := New("test", physics.NewWorld(physics.Vec(0, 9.8)), nil)
		s.MustSpawn(newMover(physics.Vec(3, 0), 1))
		s.MustSpawn(newMover(physics.Vec(7, 0), 0.5))
		s.MustSpawn(newBlock(KindSolid, 0, 20, 40, 1))
		return s
	}

	a, b := build(), build()
	for i := 0; i < 90; i++ {
		a.Update(1.0 / 60)
		b.Update(1.0 / 60)
	}
	assert.Equal(t, a.Checksum(), b.Checksum())

	b.Update(1.0 / 60)
	assert.NotEqual(t, a.Checksum(), b.Checksum())
}
