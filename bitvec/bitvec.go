/*
Package bitvec implements fixed-width bit vectors and square bit matrices.
It is mainly used for grammar analysis (prediction and right-recursion
closures). Matrix rows are bit vectors; the transitive closure is computed
with a word-parallel Warshall algorithm.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package bitvec

import (
	"fmt"
	"math/bits"
	"strings"
)

const wordSize = 64

// Vector is a bit vector of fixed width. Construct with
//
//	v := bitvec.New(100)   // 100 bits, all zero
//
// Now
//
//	v.Set(3)               // set a bit
//	ok := v.Test(3)        // returns true
//	v.UnionWith(w)         // v ← v ∪ w
//
// The width is fixed at construction; Set and Test outside of it panic.
type Vector struct {
	width int
	words []uint64
}

// New creates a bit vector of the given width, initially empty.
func New(width int) *Vector {
	if width < 0 {
		panic(fmt.Sprintf("bitvec.New() with negative width: %d", width))
	}
	return &Vector{
		width: width,
		words: make([]uint64, (width+wordSize-1)/wordSize),
	}
}

// Width returns the fixed width of v.
func (v *Vector) Width() int {
	return v.width
}

// Set sets bit i.
func (v *Vector) Set(i int) *Vector {
	v.check(i)
	v.words[i/wordSize] |= 1 << (uint(i) % wordSize)
	return v
}

// Test returns true iff bit i is set.
func (v *Vector) Test(i int) bool {
	v.check(i)
	return v.words[i/wordSize]&(1<<(uint(i)%wordSize)) != 0
}

// UnionWith ors all bits of other into v. Both vectors must have the same
// width. It reports whether v changed.
func (v *Vector) UnionWith(other *Vector) bool {
	if other.width != v.width {
		panic(fmt.Sprintf("bitvec union of widths %d and %d", v.width, other.width))
	}
	changed := false
	for i, w := range other.words {
		if v.words[i]|w != v.words[i] {
			changed = true
		}
		v.words[i] |= w
	}
	return changed
}

// Count returns the number of set bits.
func (v *Vector) Count() int {
	n := 0
	for _, w := range v.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Copy returns an independent copy of v.
func (v *Vector) Copy() *Vector {
	c := New(v.width)
	copy(c.words, v.words)
	return c
}

// Each calls f for every set bit, in increasing order.
func (v *Vector) Each(f func(i int)) {
	for wi, w := range v.words {
		for w != 0 {
			i := wi*wordSize + bits.TrailingZeros64(w)
			f(i)
			w &= w - 1
		}
	}
}

// AppendTo appends the indices of all set bits to dst, in increasing order.
func (v *Vector) AppendTo(dst []int) []int {
	v.Each(func(i int) {
		dst = append(dst, i)
	})
	return dst
}

// Intersection returns a fresh vector v ∩ other.
func Intersection(v, other *Vector) *Vector {
	if other.width != v.width {
		panic(fmt.Sprintf("bitvec intersection of widths %d and %d", v.width, other.width))
	}
	r := New(v.width)
	for i := range v.words {
		r.words[i] = v.words[i] & other.words[i]
	}
	return r
}

func (v *Vector) check(i int) {
	if i < 0 || i >= v.width {
		panic(fmt.Sprintf("bitvec index %d out of width %d", i, v.width))
	}
}

func (v *Vector) String() string {
	var b strings.Builder
	b.WriteString("{")
	first := true
	v.Each(func(i int) {
		if !first {
			b.WriteString(" ")
		}
		first = false
		fmt.Fprintf(&b, "%d", i)
	})
	b.WriteString("}")
	return b.String()
}

// --- Square bit matrices ----------------------------------------------

// Matrix is an n×n bit matrix, stored row-major with each row a Vector.
type Matrix struct {
	n    int
	rows []*Vector
}

// NewMatrix creates an n×n matrix, initially empty.
func NewMatrix(n int) *Matrix {
	m := &Matrix{n: n, rows: make([]*Vector, n)}
	for i := range m.rows {
		m.rows[i] = New(n)
	}
	return m
}

// N returns the dimension of the matrix.
func (m *Matrix) N() int {
	return m.n
}

// Set sets entry (i,j).
func (m *Matrix) Set(i, j int) *Matrix {
	m.rows[i].Set(j)
	return m
}

// Test returns true iff entry (i,j) is set.
func (m *Matrix) Test(i, j int) bool {
	return m.rows[i].Test(j)
}

// Row returns row i. The returned vector is shared with the matrix.
func (m *Matrix) Row(i int) *Vector {
	return m.rows[i]
}

// TransitiveClosure closes m under reachability: afterwards m[i][j] is set
// iff j is reachable from i in one or more steps of the input relation.
// Bits set before the call remain set. The closure is not made reflexive;
// callers wanting the diagonal set it themselves.
//
// This is Warshall's algorithm with bit-parallel row unions, cubic over
// machine words. Grammars are small; nothing faster is needed here.
func (m *Matrix) TransitiveClosure() *Matrix {
	for k := 0; k < m.n; k++ {
		row := m.rows[k]
		for i := 0; i < m.n; i++ {
			if m.rows[i].Test(k) {
				m.rows[i].UnionWith(row)
			}
		}
	}
	return m
}
