/*
Package lexmach compiles lexmachine lexers for the recognizer's
lexeme-driven token model.

Character-level grammars are fed directly by scanner.Runes. Grammars whose
terminals name token classes (number, ident, …) need a real lexer: this
package builds one DFA from the grammar's terminal vocabulary, literal
terminals matched verbatim plus named regular-expression patterns. A match
of a pattern surfaces with the terminal's NAME as its lexeme, so the
recognizer finds the right grammar symbol, and with the matched text as
its value:

	lx, err := lexmach.NewLexer([]string{"+"}, map[string]string{
	    "number": `[0-9]+`,
	})
	sc, err := lx.Scanner("1 + 12")
	accept, err := parser.Parse(sc)   // sees: number "+" number

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package lexmach

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aredridel/lotsawa"
	"github.com/aredridel/lotsawa/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'lotsawa.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lotsawa.scanner")
}

// Lexer holds the compiled DFA for one terminal vocabulary. Create it with
// NewLexer, then derive one Scanner per input.
type Lexer struct {
	lm    *lexmachine.Lexer
	names []string // token type ➞ terminal name
}

// NewLexer builds a lexer for a terminal vocabulary. Every literal is
// matched verbatim and emitted under its own spelling; every pattern is
// matched as a regular expression and emitted under the terminal name it
// is keyed by. Whitespace between tokens is skipped. Literals are
// registered first, so they win against an equally long pattern match.
//
// NewLexer returns an error if compiling the DFA failed.
func NewLexer(literals []string, patterns map[string]string) (*Lexer, error) {
	lx := &Lexer{lm: lexmachine.NewLexer()}
	lx.lm.Add([]byte(`( |\t|\n|\r)+`), skip)
	for _, lit := range literals {
		escaped := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		lx.lm.Add([]byte(escaped), lx.emit(lit))
	}
	for _, name := range sortedKeys(patterns) {
		lx.lm.Add([]byte(patterns[name]), lx.emit(name))
	}
	var err error
	func() {
		// lexmachine panics on some malformed patterns instead of
		// returning an error; report those as errors, too.
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("compiling DFA: %v", r)
			}
		}()
		err = lx.lm.Compile()
	}()
	if err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return lx, nil
}

// emit registers a terminal name and returns the action producing its
// tokens.
func (lx *Lexer) emit(name string) lexmachine.Action {
	id := len(lx.names)
	lx.names = append(lx.names, name)
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// skip is the action for inter-token whitespace.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// --- Scanning ---------------------------------------------------------

// Scanner tokenizes one input for the recognizer.
type Scanner struct {
	lx    *Lexer
	sc    *lexmachine.Scanner
	Error func(error)
}

var _ scanner.Tokenizer = (*Scanner)(nil)

// Scanner derives a tokenizer for one input.
func (lx *Lexer) Scanner(input string) (*Scanner, error) {
	s, err := lx.lm.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &Scanner{lx: lx, sc: s, Error: logError}, nil
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// SetErrorHandler sets an error handler for the scanner.
func (s *Scanner) SetErrorHandler(h func(error)) {
	if h == nil {
		s.Error = logError
		return
	}
	s.Error = h
}

// NextToken is part of the Tokenizer interface. Scan errors go to the
// error handler; after an unconsumed-input error, scanning resumes behind
// the offending text.
func (s *Scanner) NextToken() lotsawa.Token {
	tok, err, eof := s.sc.Next()
	for err != nil {
		s.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			s.sc.TC = ui.FailTC
		}
		tok, err, eof = s.sc.Next()
	}
	if eof {
		return nil
	}
	t := tok.(*lexmachine.Token)
	return classToken{
		name: s.lx.names[t.Type],
		text: string(t.Lexeme),
		span: lotsawa.Span{uint64(t.StartColumn), uint64(t.EndColumn)},
	}
}

// classToken surfaces a match under its terminal name, with the matched
// text as the token's value.
type classToken struct {
	name string
	text string
	span lotsawa.Span
}

func (t classToken) Lexeme() string     { return t.name }
func (t classToken) Value() interface{} { return t.text }
func (t classToken) Span() lotsawa.Span { return t.span }
