package earley

import (
	"github.com/aredridel/lotsawa/bitvec"
)

// Set is one Earley set: the ordered items at a single input position, the
// cached prediction bitset for that position, and the Leo memos computed
// after the position was completed.
//
// Iteration happens by index so that items appended during a traversal are
// visited by the same traversal; this is what lets the predict/complete
// fixed point converge in a single pass. Items are unique under their
// (rule, pos, origin) identity; a secondary map makes Add O(1) against the
// set size.
type Set struct {
	items       []Item
	index       map[ident]int
	predicted   *bitvec.Vector // rule serials predicted at this position
	leoMemo     map[int]uint64 // expected symbol ➞ Leo chain base
	acceptTries int            // completion attempts of the accept item at origin 0
}

func newSet(ruleCount int) *Set {
	return &Set{
		index:     make(map[ident]int),
		predicted: bitvec.New(ruleCount),
		leoMemo:   make(map[int]uint64),
	}
}

// Add inserts an item unless an item with the same identity is already
// present; the first inserted item wins. Reports whether the item was added.
func (s *Set) Add(it Item) bool {
	key := it.identity()
	if _, ok := s.index[key]; ok {
		return false
	}
	s.index[key] = len(s.items)
	s.items = append(s.items, it)
	return true
}

// Size returns the current number of items. It may grow while the set is
// being iterated during its own construction.
func (s *Set) Size() int {
	return len(s.items)
}

// At returns the item at index i in insertion order.
func (s *Set) At(i int) Item {
	return s.items[i]
}

// Get looks an item up by its identity.
func (s *Set) Get(rule, pos int, origin uint64) (Item, bool) {
	if i, ok := s.index[ident{rule: rule, pos: pos, origin: origin}]; ok {
		return s.items[i], true
	}
	return Item{}, false
}

// Predicted returns the cached prediction bitset of this set. The vector is
// owned by the set and grows only through the parser's prediction step.
func (s *Set) Predicted() *bitvec.Vector {
	return s.predicted
}

// LeoMemo returns the memoized Leo chain base for an expected symbol.
func (s *Set) LeoMemo(sym int) (uint64, bool) {
	base, ok := s.leoMemo[sym]
	return base, ok
}
