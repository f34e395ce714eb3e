package lexmach

import (
	"testing"

	"github.com/aredridel/lotsawa/earley"
	"github.com/aredridel/lotsawa/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func makeLexer(t *testing.T) *Lexer {
	lx, err := NewLexer([]string{"+"}, map[string]string{
		"number": `[0-9]+`,
	})
	if err != nil {
		t.Fatal(err)
	}
	return lx
}

func TestLexerTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lotsawa.scanner")
	defer teardown()
	//
	lx := makeLexer(t)
	sc, err := lx.Scanner("1 + 12")
	if err != nil {
		t.Fatal(err)
	}
	expected := []struct {
		lexeme string
		value  string
	}{
		{"number", "1"},
		{"+", "+"},
		{"number", "12"},
	}
	for i, exp := range expected {
		tok := sc.NextToken()
		if tok == nil {
			t.Fatalf("expected token %d, scanner is exhausted", i)
		}
		t.Logf(" %10s | %6s | @%d", tok.Lexeme(), tok.Value(), tok.Span().From())
		if tok.Lexeme() != exp.lexeme {
			t.Errorf("expected token %d to be a %q, is %q", i, exp.lexeme, tok.Lexeme())
		}
		if tok.Value() != exp.value {
			t.Errorf("expected token %d to carry text %q, carries %q", i, exp.value, tok.Value())
		}
	}
	if tok := sc.NextToken(); tok != nil {
		t.Errorf("expected the scanner to be exhausted, have %v", tok)
	}
}

// The point of the adapter: a grammar over token classes, fed by a real
// lexer instead of single characters.
func TestLexedParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lotsawa.scanner")
	defer teardown()
	//
	b := grammar.NewGrammarBuilder("sums")
	b.LHS("start").N("sum").End()
	b.LHS("sum").N("sum").T("+").N("number").End()
	b.LHS("sum").N("number").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	lx := makeLexer(t)
	for input, expected := range map[string]bool{
		"1 + 12 + 345": true,
		"1":            true,
		"1 + + 2":      false,
		"":             false,
	} {
		sc, err := lx.Scanner(input)
		if err != nil {
			t.Fatal(err)
		}
		p := earley.NewParser(g)
		accept, err := p.Parse(sc)
		if err != nil {
			t.Error(err)
		}
		if accept != expected {
			t.Errorf("expected parse of %q to be %v, is %v", input, expected, accept)
		}
	}
}

func TestLexerBadPattern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lotsawa.scanner")
	defer teardown()
	//
	if _, err := NewLexer(nil, map[string]string{"broken": `[`}); err == nil {
		t.Errorf("expected a compile error for a malformed pattern")
	}
}
