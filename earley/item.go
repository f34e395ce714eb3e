package earley

import (
	"fmt"
	"strings"

	"github.com/aredridel/lotsawa/grammar"
)

// Kind is a trace tag recording which phase produced an item. It is
// irrelevant to recognition and retained for diagnostics only.
type Kind byte

// The item kinds, in rough order of appearance during a token's pipeline.
const (
	KindInitial   Kind = 'I' // seeded into set 0
	KindPredicted Kind = 'P' // materialized prediction at the dot's start
	KindScanned   Kind = 'S' // advanced over the input token
	KindAdvanced  Kind = 'A' // advanced over a completed non-terminal
	KindCompleted Kind = 'C' // realized from a cached prediction
	KindLeo       Kind = 'L' // produced by following a Leo item
)

// NoLeo marks the absence of a Leo annotation on an item.
const NoLeo = -1

// Item is a dotted rule within an Earley set: a rule serial, the dot
// position within the rule's RHS, and the origin: the set index at which
// this rule instance was predicted. Leo, if not NoLeo, is the set index of
// the collapsed right-recursive prefix (the base of the Leo chain).
//
// Item identity is the triple (Rule, Pos, Origin); Leo and Kind do not
// participate, the first inserted value wins.
type Item struct {
	Rule   int
	Pos    int
	Origin uint64
	Leo    int64
	Kind   Kind
}

// ident is the deduplication key of an item.
type ident struct {
	rule   int
	pos    int
	origin uint64
}

func (it Item) identity() ident {
	return ident{rule: it.Rule, pos: it.Pos, origin: it.Origin}
}

// PeekSymbol returns the symbol id after the dot, or -1 for a completed item.
func (it Item) PeekSymbol(g *grammar.Grammar) int {
	rhs := g.Rule(it.Rule).RHS
	if it.Pos >= len(rhs) {
		return -1
	}
	return rhs[it.Pos]
}

// Completed reports whether the dot sits behind the whole RHS.
func (it Item) Completed(g *grammar.Grammar) bool {
	return it.Pos == len(g.Rule(it.Rule).RHS)
}

// StringIn formats the item with the grammar's symbol names, e.g.
//
//	{S} [A ➞ a ∙ A, 2]
func (it Item) StringIn(g *grammar.Grammar) string {
	r := g.Rule(it.Rule)
	var b strings.Builder
	fmt.Fprintf(&b, "{%c} [%s ➞", it.Kind, g.Symbol(r.LHS).Name)
	for i, s := range r.RHS {
		if i == it.Pos {
			b.WriteString(" ∙")
		}
		b.WriteString(" ")
		b.WriteString(g.Symbol(s).Name)
	}
	if it.Pos == len(r.RHS) {
		b.WriteString(" ∙")
	}
	fmt.Fprintf(&b, ", %d]", it.Origin)
	if it.Leo != NoLeo {
		fmt.Fprintf(&b, " leo(%d)", it.Leo)
	}
	return b.String()
}
