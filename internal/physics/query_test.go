package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector2Arithmetic(t *testing.T) {
	v := Vec(3, 4)

	assert.Equal(t, Vec(4, 6), v.Add(Vec(1, 2)))
	assert.Equal(t, Vec(2, 2), v.Sub(Vec(1, 2)))
	assert.Equal(t, Vec(6, 8), v.Scale(2))
	assert.Equal(t, Vec(-3, -4), v.Neg())
	assert.Equal(t, 11.0, v.Dot(Vec(1, 2)))
	assert.Equal(t, 5.0, v.Len())
	assert.Equal(t, Vec(7, 4), v.WithX(7))
	assert.Equal(t, Vec(3, 9), v.WithY(9))
	assert.Equal(t, Vec(3, 4), v, "value receivers must not mutate")
	assert.True(t, Vector2{}.IsZero())
	assert.False(t, v.IsZero())
}

func TestColliderBoundsTopLeft(t *testing.T) {
	c := NewCollider(24, 32)
	box := c.Bounds(Vec(100, 50))

	assert.Equal(t, Vec(100, 50), box.Min)
	assert.Equal(t, Vec(124, 82), box.Max)
	assert.Equal(t, Vec(12, 16), c.HalfExtents())
	assert.False(t, c.IsTrigger)
	assert.True(t, NewTrigger(16, 16).IsTrigger)
}

func TestOverlaps(t *testing.T) {
	a := NewCollider(16, 16)
	b := NewCollider(16, 16)

	tests := []struct {
		name     string
		posA     Vector2
		posB     Vector2
		expected bool
	}{
		{"identical", Vec(0, 0), Vec(0, 0), true},
		{"touching right edge", Vec(0, 0), Vec(16, 0), false},
		{"one unit overlap on x", Vec(0, 0), Vec(15, 0), true},
		{"touching bottom edge", Vec(0, 0), Vec(0, 16), false},
		{"one unit overlap on y", Vec(0, 0), Vec(0, 15), true},
		{"touching corner", Vec(0, 0), Vec(16, 16), false},
		{"corner overlap", Vec(0, 0), Vec(15, 15), true},
		{"overlap x only", Vec(0, 0), Vec(8, 30), false},
		{"overlap y only", Vec(0, 0), Vec(30, 8), false},
		{"negative coordinates", Vec(-10, -10), Vec(-20, -20), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Overlaps(a, tc.posA, b, tc.posB))
			assert.Equal(t, tc.expected, Overlaps(b, tc.posB, a, tc.posA), "symmetry")
		})
	}
}

func TestOverlapsSymmetryMixedExtents(t *testing.T) {
	shapes := []*Collider{
		NewCollider(1, 1),
		NewCollider(24, 32),
		NewCollider(200, 20),
		NewTrigger(0.5, 3),
		NewCollider(0, 10),
	}
	positions := []Vector2{Vec(0, 0), Vec(0.5, 0.5), Vec(-12, 3), Vec(23.9, 31.9), Vec(100, 0)}

	for _, a := range shapes {
		for _, b := range shapes {
			for _, pa := range positions {
				for _, pb := range positions {
					require.Equal(t, Overlaps(a, pa, b, pb), Overlaps(b, pb, a, pa))
				}
			}
		}
	}
}

func TestDegenerateExtentsNeverOverlap(t *testing.T) {
	big := NewCollider(100, 100)

	tests := []struct {
		name string
		c    *Collider
	}{
		{"zero width", NewCollider(0, 10)},
		{"zero height", NewCollider(10, 0)},
		{"zero both", NewCollider(0, 0)},
		{"negative width", NewCollider(-5, 10)},
		{"negative height", NewCollider(10, -5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, Overlaps(tc.c, Vec(50, 50), big, Vec(0, 0)))
			assert.False(t, Overlaps(big, Vec(0, 0), tc.c, Vec(50, 50)))
			assert.False(t, Overlaps(tc.c, Vec(50, 50), tc.c, Vec(50, 50)))
		})
	}
}

func TestPenetration(t *testing.T) {
	a := AABB{Min: Vec(0, 0), Max: Vec(10, 10)}

	assert.Equal(t, Vec(2, 10), Penetration(a, AABB{Min: Vec(8, 0), Max: Vec(18, 10)}))
	assert.Equal(t, Vec(4, 3), Penetration(a, AABB{Min: Vec(6, 7), Max: Vec(16, 17)}))
	assert.Equal(t, Vector2{}, Penetration(a, AABB{Min: Vec(10, 0), Max: Vec(20, 10)}))
}

func TestMinimumTranslation(t *testing.T) {
	player := NewCollider(2, 2)
	ground := NewCollider(20, 2)

	tests := []struct {
		name      string
		posPlayer Vector2
		posGround Vector2
		expected  Vector2
		ok        bool
	}{
		{"sunk into top", Vec(5, 9.5), Vec(0, 10), Vec(0, -1.5), true},
		{"bumped from below", Vec(5, 11.75), Vec(0, 10), Vec(0, 0.25), true},
		{"pressed into left side", Vec(-1.5, 10), Vec(0, 10), Vec(-0.5, 0), true},
		{"pressed into right side", Vec(19.25, 10), Vec(0, 10), Vec(0.75, 0), true},
		{"apart", Vec(5, 5), Vec(0, 10), Vector2{}, false},
		{"touching", Vec(5, 8), Vec(0, 10), Vector2{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mtv, ok := MinimumTranslation(player, tc.posPlayer, ground, tc.posGround)
			require.Equal(t, tc.ok, ok)
			assert.InDelta(t, tc.expected.X, mtv.X, 1e-9)
			assert.InDelta(t, tc.expected.Y, mtv.Y, 1e-9)

			if ok {
				moved := tc.posPlayer.Add(mtv)
				assert.False(t, Overlaps(player, moved, ground, tc.posGround), "push must separate")
			}
		})
	}
}

func TestMinimumTranslationTieUsesX(t *testing.T) {
	a := NewCollider(4, 4)
	b := NewCollider(4, 4)

	mtv, ok := MinimumTranslation(a, Vec(0, 0), b, Vec(2, 2))
	require.True(t, ok)
	assert.Equal(t, Vec(-2, 0), mtv)
}
