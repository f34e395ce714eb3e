package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/aredridel/lotsawa/grammar"
)

// loadGrammar reads the line-based grammar format described in the package
// documentation and builds a grammar from it.
func loadGrammar(name string, r io.Reader) (*grammar.Grammar, error) {
	b := grammar.NewGrammarBuilder(name)
	lines := bufio.NewScanner(r)
	lineno := 0
	for lines.Scan() {
		lineno++
		line := strings.TrimSpace(lines.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if start, ok := strings.CutPrefix(line, "%start"); ok {
			b.Start(strings.TrimSpace(start))
			continue
		}
		lhs, rhs, ok := strings.Cut(line, "->")
		if !ok {
			return nil, fmt.Errorf("line %d: expected 'lhs -> rhs', have %q", lineno, line)
		}
		lhs = strings.TrimSpace(lhs)
		if strings.ContainsAny(lhs, " \t'") || lhs == "" {
			return nil, fmt.Errorf("line %d: malformed LHS %q", lineno, lhs)
		}
		rb := b.LHS(lhs)
		fields := strings.Fields(rhs)
		for _, f := range fields {
			if lit, ok := unquote(f); ok {
				rb.T(lit)
			} else {
				rb.N(f)
			}
		}
		if len(fields) == 0 {
			rb.Epsilon()
		} else {
			rb.End()
		}
	}
	if err := lines.Err(); err != nil {
		return nil, err
	}
	return b.Grammar()
}

func unquote(f string) (string, bool) {
	if len(f) >= 3 && strings.HasPrefix(f, "'") && strings.HasSuffix(f, "'") {
		return f[1 : len(f)-1], true
	}
	return f, false
}
