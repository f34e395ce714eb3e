/*
Package scanner feeds input tokens to the Earley recognizer.

The recognizer identifies tokens by lexeme, so a scanner's single job here
is to slice its input into the literals the grammar's terminals carry. Two
implementations are provided: a rune tokenizer which emits every rune as
one token, for character-level grammars, and a word tokenizer over the Go
std lib 'text/scanner' for word-level input. Sub-package lexmach compiles
a real lexer for grammars whose terminals name token classes.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package scanner

import (
	"io"
	gosc "text/scanner"

	"github.com/aredridel/lotsawa"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lotsawa.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lotsawa.scanner")
}

// Tokenizer is the scanner interface the recognizer's Parse driver
// consumes. NextToken returns nil when the input is exhausted.
type Tokenizer interface {
	NextToken() lotsawa.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Rune tokenizer ---------------------------------------------------

// RuneTokenizer emits every rune of its input as one token, the rune's
// string form being the lexeme. This is the tokenizer of choice for
// character-level grammars, where every terminal is a single character.
// Create one with Runes.
type RuneTokenizer struct {
	input []rune
	pos   uint64
	Error func(error)
}

var _ Tokenizer = (*RuneTokenizer)(nil)

// Runes creates a tokenizer emitting one token per rune of the input.
func Runes(input string) *RuneTokenizer {
	return &RuneTokenizer{
		input: []rune(input),
		Error: logError,
	}
}

// SetErrorHandler sets an error handler for the scanner.
func (t *RuneTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *RuneTokenizer) NextToken() lotsawa.Token {
	if t.pos >= uint64(len(t.input)) {
		return nil
	}
	r := t.input[t.pos]
	t.pos++
	return lotsawa.MakeToken(string(r), lotsawa.Span{t.pos - 1, t.pos})
}

// --- Word tokenizer ----------------------------------------------------

// WordTokenizer slices its input with the Go std lib text/scanner:
// identifiers, numbers and strings become one token each, any other
// non-space rune stands for itself. The raw token text is the lexeme, so
// a grammar for word-level input names its terminals by spelling
// ("if", "+", "42"-style literals).
type WordTokenizer struct {
	gosc  gosc.Scanner
	Error func(error)
}

var _ Tokenizer = (*WordTokenizer)(nil)

// Words creates a word tokenizer reading from input; sourceID names the
// input in error positions.
func Words(sourceID string, input io.Reader) *WordTokenizer {
	t := &WordTokenizer{Error: logError}
	t.gosc.Init(input)
	t.gosc.Filename = sourceID
	t.gosc.Error = func(_ *gosc.Scanner, msg string) {
		t.Error(scanError(msg))
	}
	return t
}

type scanError string

func (e scanError) Error() string {
	return string(e)
}

// SetErrorHandler sets an error handler for the scanner.
func (t *WordTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *WordTokenizer) NextToken() lotsawa.Token {
	r := t.gosc.Scan()
	if r == gosc.EOF {
		tracer().Debugf("word tokenizer reached end of input")
		return nil
	}
	from := uint64(t.gosc.Position.Offset)
	to := uint64(t.gosc.Pos().Offset)
	return lotsawa.MakeToken(t.gosc.TokenText(), lotsawa.Span{from, to})
}
