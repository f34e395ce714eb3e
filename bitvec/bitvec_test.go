package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorSetTest(t *testing.T) {
	v := New(130)
	assert.False(t, v.Test(0))
	v.Set(0)
	v.Set(63)
	v.Set(64)
	v.Set(129)
	assert.True(t, v.Test(0))
	assert.True(t, v.Test(63))
	assert.True(t, v.Test(64))
	assert.True(t, v.Test(129))
	assert.False(t, v.Test(1))
	assert.Equal(t, 4, v.Count())
	assert.Equal(t, []int{0, 63, 64, 129}, v.AppendTo(nil))
}

func TestVectorUnion(t *testing.T) {
	v := New(70)
	w := New(70)
	w.Set(2)
	w.Set(69)
	changed := v.UnionWith(w)
	assert.True(t, changed)
	assert.True(t, v.Test(2))
	assert.True(t, v.Test(69))
	changed = v.UnionWith(w)
	assert.False(t, changed, "second union should be a no-op")
}

func TestVectorIntersection(t *testing.T) {
	v := New(10)
	w := New(10)
	v.Set(1).Set(2).Set(3)
	w.Set(2).Set(3).Set(4)
	r := Intersection(v, w)
	assert.Equal(t, []int{2, 3}, r.AppendTo(nil))
}

func TestVectorWidthMismatchPanics(t *testing.T) {
	v := New(10)
	w := New(11)
	assert.Panics(t, func() { v.UnionWith(w) })
}

func TestMatrixClosureChain(t *testing.T) {
	// 0 → 1 → 2 → 3
	m := NewMatrix(4)
	m.Set(0, 1)
	m.Set(1, 2)
	m.Set(2, 3)
	m.TransitiveClosure()
	assert.True(t, m.Test(0, 2))
	assert.True(t, m.Test(0, 3))
	assert.True(t, m.Test(1, 3))
	assert.False(t, m.Test(3, 0))
	assert.False(t, m.Test(0, 0), "closure must not invent reflexivity")
}

func TestMatrixClosureCycle(t *testing.T) {
	// 0 → 1 → 0, 1 → 2
	m := NewMatrix(3)
	m.Set(0, 1)
	m.Set(1, 0)
	m.Set(1, 2)
	m.TransitiveClosure()
	assert.True(t, m.Test(0, 0), "cycle members reach themselves")
	assert.True(t, m.Test(1, 1))
	assert.True(t, m.Test(0, 2))
	assert.False(t, m.Test(2, 0))
}

func TestMatrixClosurePreservesBits(t *testing.T) {
	m := NewMatrix(8)
	m.Set(5, 6)
	m.Set(7, 7)
	before := make([][2]int, 0, 4)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			if m.Test(i, j) {
				before = append(before, [2]int{i, j})
			}
		}
	}
	m.TransitiveClosure()
	for _, ij := range before {
		require.True(t, m.Test(ij[0], ij[1]), "closure dropped bit (%d,%d)", ij[0], ij[1])
	}
}

func TestMatrixClosureIsClosed(t *testing.T) {
	m := NewMatrix(6)
	m.Set(0, 1)
	m.Set(1, 2)
	m.Set(2, 4)
	m.Set(4, 1)
	m.Set(3, 5)
	m.TransitiveClosure()
	for a := 0; a < 6; a++ {
		for b := 0; b < 6; b++ {
			for c := 0; c < 6; c++ {
				if m.Test(a, b) && m.Test(b, c) {
					require.True(t, m.Test(a, c), "not closed: (%d,%d) ∧ (%d,%d)", a, b, b, c)
				}
			}
		}
	}
}
