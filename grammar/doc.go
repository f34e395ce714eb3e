/*
Package grammar implements prerequisites for Earley parsing.

# Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Terminals
carry the literal lexeme they match in the input. Grammars may contain
epsilon-productions.

Example:

	b := grammar.NewGrammarBuilder("G")
	b.LHS("start").N("A").End()     // start ➞ A
	b.LHS("A").T("a").N("A").End()  // A     ➞ a A
	b.LHS("A").T("a").End()         // A     ➞ a
	g, err := b.Grammar()

This results in the following trivial grammar:

	g.Dump()

	0: [start] ::= [A]
	1: [A] ::= [a A]
	2: [A] ::= [a]
	3: [_accept] ::= [start]

A synthetic rule  _accept ➞ start  is always appended; its completion at
origin 0 is what the recognizer reports as success. The name _accept is
reserved. The start symbol defaults to "start" and may be changed with
Start()/WithStart.

Rules may equivalently be given as plain records, without the builder:

	g, err := grammar.New("G", []grammar.RuleSpec{
	    grammar.NewRule("start", grammar.Ref("A")),
	    grammar.NewRule("A", grammar.Terminal("a")),
	})

# Static Grammar Analysis

Construction interns every symbol name to a small integer id, rewrites
all rules in numeric form and precomputes three closure tables which the
recognizer consumes on its hot path: the symbol-predicts-symbol matrix,
the per-symbol prediction rule lists derived from it, and the
right-recursion matrix used to decide Leo eligibility. A constructed
Grammar is immutable and may be shared by any number of parsers.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lotsawa.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("lotsawa.grammar")
}
