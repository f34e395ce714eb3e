package grammar

import (
	"github.com/emirpasic/gods/lists/arraylist"
)

// GrammarBuilder is a fluent builder for grammars. Clients construct one,
// add rules with LHS()…End() chains and finish with Grammar():
//
//	b := grammar.NewGrammarBuilder("Expressions")
//	b.LHS("Sum").N("Sum").T("+").N("Product").End()
//	b.LHS("Sum").N("Product").End()
//	g, err := b.Grammar()
type GrammarBuilder struct {
	name  string
	start string
	rules *arraylist.List
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar
// to build.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{
		name:  name,
		start: DefaultStart,
		rules: arraylist.New(),
	}
}

// Start sets the start symbol name; it defaults to "start".
func (gb *GrammarBuilder) Start(name string) *GrammarBuilder {
	gb.start = name
	return gb
}

// LHS starts a rule given the left-hand-side symbol name.
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	tracer().Debugf("grammar rule starting with LHS = %s", name)
	return &RuleBuilder{gb: gb, lhs: name}
}

// Grammar processes the accumulated rules into an immutable Grammar.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	specs := make([]RuleSpec, 0, gb.rules.Size())
	for _, v := range gb.rules.Values() {
		specs = append(specs, v.(RuleSpec))
	}
	return New(gb.name, specs, WithStart(gb.start))
}

// RuleBuilder is a builder type for a single grammar rule.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs string
	rhs []SymRef
}

// N appends a non-terminal reference to the rule's RHS.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, Ref(name))
	return rb
}

// T appends a terminal literal to the rule's RHS.
func (rb *RuleBuilder) T(lit string) *RuleBuilder {
	rb.rhs = append(rb.rhs, Terminal(lit))
	return rb
}

// End closes the rule and hands it to the grammar builder.
func (rb *RuleBuilder) End() *GrammarBuilder {
	rb.gb.rules.Add(NewRule(rb.lhs, rb.rhs...))
	return rb.gb
}

// Epsilon closes the rule with an empty RHS.
func (rb *RuleBuilder) Epsilon() *GrammarBuilder {
	rb.rhs = nil
	return rb.End()
}
