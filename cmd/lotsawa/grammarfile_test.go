package main

import (
	"strings"
	"testing"

	"github.com/aredridel/lotsawa/earley"
)

const rightRecursive = `
# a right-recursive toy grammar
start -> A
A -> 'a' A
A -> 'a'
`

func TestLoadGrammar(t *testing.T) {
	g, err := loadGrammar("toy", strings.NewReader(rightRecursive))
	if err != nil {
		t.Fatal(err)
	}
	if g.RuleCount() != 4 {
		t.Errorf("expected 4 rules incl. accept, have %d", g.RuleCount())
	}
	if !earley.ParseString(g, "aaa") {
		t.Errorf("expected 'aaa' to be accepted")
	}
	if earley.ParseString(g, "b") {
		t.Errorf("expected 'b' to be rejected")
	}
}

func TestLoadGrammarStartDirective(t *testing.T) {
	src := `
%start S
S -> 'x'
`
	g, err := loadGrammar("directive", strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if g.StartSymbol().Name != "S" {
		t.Errorf("expected start symbol S, have %s", g.StartSymbol().Name)
	}
	if !earley.ParseString(g, "x") {
		t.Errorf("expected 'x' to be accepted")
	}
}

func TestLoadGrammarEpsilonAndErrors(t *testing.T) {
	src := `
start -> 'a'
start ->
`
	g, err := loadGrammar("eps", strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if !earley.ParseString(g, "") {
		t.Errorf("expected empty input to be accepted")
	}
	if _, err := loadGrammar("bad", strings.NewReader("start 'a'")); err == nil {
		t.Errorf("expected an error for a line without ->")
	}
}
