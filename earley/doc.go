/*
Package earley implements an Earley chart recognizer with Joop Leo's
right-recursion optimization.

Clients build a grammar, create a parser for it and feed it tokens:

	g, _ := grammar.New("G", rules)
	p := earley.NewParser(g)
	for _, tok := range tokens {
	    p.Push(tok)
	}
	ok := p.Success()

Push runs the predict/scan/advance/complete phases for one token, to a
fixed point, before returning. Scanning is folded into advancing: tokens
are resolved to symbol ids and matched uniformly against the symbol
after the dot. Completion realizes cached predictions through the
grammar's precomputed closure bitsets, and follows Leo items for
right-recursive rules, which keeps such grammars linear in the input
length instead of quadratic.

A Parser owns one chart for the duration of one input stream and is not
safe for concurrent use; the grammar it was built from is immutable and
may be shared.

Parse trees are out of scope: the recognizer answers acceptance and
exposes the match count for ambiguity policies, nothing more.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package earley

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lotsawa.earley'.
func tracer() tracing.Trace {
	return tracing.Select("lotsawa.earley")
}
