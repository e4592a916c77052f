package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trackedWorld(t *testing.T) (*World, *ContactTracker, *Collider, *Collider) {
	t.Helper()
	w := NewWorld(Vec(0, 0))
	a := owned(1, 10, 10)
	b := owned(2, 10, 10)
	require.NoError(t, w.AddCollider(a))
	require.NoError(t, w.AddCollider(b))

	tr := NewContactTracker()
	w.AddCollisionCallback(tr.Observe)
	return w, tr, a, b
}

func TestContactTrackerEnterStayExit(t *testing.T) {
	w, tr, a, b := trackedWorld(t)
	apart := PositionMap{1: Vec(0, 0), 2: Vec(50, 0)}
	touching := PositionMap{1: Vec(0, 0), 2: Vec(5, 0)}

	w.Step(0, apart)
	entered, exited := tr.Commit()
	assert.Empty(t, entered)
	assert.Empty(t, exited)

	w.Step(0, touching)
	entered, exited = tr.Commit()
	require.Len(t, entered, 1)
	assert.Same(t, a, entered[0].A)
	assert.Same(t, b, entered[0].B)
	assert.Equal(t, Vec(5, 0), entered[0].PosB)
	assert.Empty(t, exited)
	assert.True(t, tr.Touching(a, b))
	assert.True(t, tr.Touching(b, a), "either orientation")

	w.Step(0, touching)
	entered, exited = tr.Commit()
	assert.Empty(t, entered, "stay is not an enter")
	assert.Empty(t, exited)

	w.Step(0, apart)
	entered, exited = tr.Commit()
	assert.Empty(t, entered)
	require.Len(t, exited, 1)
	assert.Same(t, a, exited[0].A)
	assert.False(t, tr.Touching(a, b))
}

func TestContactTrackerDedupsFanOut(t *testing.T) {
	w, tr, _, _ := trackedWorld(t)
	// A second registration of the same observer must not double count
	w.AddCollisionCallback(tr.Observe)

	w.Step(0, PositionMap{1: Vector2{}, 2: Vector2{}})
	entered, _ := tr.Commit()
	assert.Len(t, entered, 1)
}

func TestContactTrackerExitOrder(t *testing.T) {
	w := NewWorld(Vec(0, 0))
	for id := EntityID(1); id <= 4; id++ {
		require.NoError(t, w.AddCollider(owned(id, 10, 10)))
	}
	tr := NewContactTracker()
	w.AddCollisionCallback(tr.Observe)

	// 1-2 and 3-4 touch
	w.Step(0, PositionMap{1: Vec(0, 0), 2: Vec(5, 0), 3: Vec(100, 0), 4: Vec(105, 0)})
	entered, _ := tr.Commit()
	require.Len(t, entered, 2)

	w.Step(0, PositionMap{1: Vec(0, 0), 2: Vec(50, 0), 3: Vec(100, 0), 4: Vec(150, 0)})
	_, exited := tr.Commit()
	require.Len(t, exited, 2)
	assert.Equal(t, EntityID(1), exited[0].A.Owner)
	assert.Equal(t, EntityID(3), exited[1].A.Owner)
}

func TestContactTrackerForget(t *testing.T) {
	w, tr, a, b := trackedWorld(t)

	w.Step(0, PositionMap{1: Vector2{}, 2: Vector2{}})
	tr.Commit()
	require.True(t, tr.Touching(a, b))

	w.RemoveCollider(b)
	tr.Forget(b)
	assert.False(t, tr.Touching(a, b))

	w.Step(0, PositionMap{1: Vector2{}, 2: Vector2{}})
	entered, exited := tr.Commit()
	assert.Empty(t, entered)
	assert.Empty(t, exited, "forgotten pair does not report an exit")
}

func TestContactTrackerReset(t *testing.T) {
	w, tr, a, b := trackedWorld(t)
	positions := PositionMap{1: Vector2{}, 2: Vector2{}}

	w.Step(0, positions)
	tr.Commit()
	tr.Reset()
	assert.False(t, tr.Touching(a, b))

	w.Step(0, positions)
	entered, _ := tr.Commit()
	assert.Len(t, entered, 1, "re-entered after reset")
}
