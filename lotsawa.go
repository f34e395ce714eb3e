package lotsawa

import "fmt"

// Token is one unit of recognizer input. The Earley engine identifies a
// token by its lexeme alone: the lexeme is looked up in the grammar's
// symbol table and the token matches exactly the terminal carrying that
// literal. A lexeme the grammar has never seen blocks the parse.
//
// Whatever else a scanner knows about a token (a semantic value, the
// matched source text for class tokens) rides along in Value, untouched
// by the recognizer.
type Token interface {
	Lexeme() string
	Value() interface{}
	Span() Span
}

// MakeToken wraps a bare lexeme into a Token covering the given run of
// input positions. This is the token form used by the convenience
// recognizers and by tests; scanners usually bring richer token types.
func MakeToken(lexeme string, span Span) Token {
	return plainToken{lexeme: lexeme, span: span}
}

type plainToken struct {
	lexeme string
	span   Span
}

func (t plainToken) Lexeme() string     { return t.lexeme }
func (t plainToken) Value() interface{} { return nil }
func (t plainToken) Span() Span         { return t.span }

func (t plainToken) String() string {
	return fmt.Sprintf("%q%s", t.lexeme, t.span)
}

// Span is the run (from…to) of input positions a token covers. The
// convenience recognizers and scanner.Runes count token positions,
// half-open, so that a chart set index is at the same time the input
// position behind the tokens consumed so far. Other scanners fill spans
// from their source text: scanner.Words with byte offsets, lexmach with
// the match's start and end columns. The recognizer itself never reads
// spans.
type Span [2]uint64 // (x…y)

// From returns the position of the first token covered.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the position just behind the last token covered.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns To() minus From(); for token-position spans this is the
// number of tokens covered.
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
