package scanner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func drain(sc Tokenizer) []string {
	lexemes := []string{}
	for tok := sc.NextToken(); tok != nil; tok = sc.NextToken() {
		lexemes = append(lexemes, tok.Lexeme())
	}
	return lexemes
}

func TestRuneTokenizer(t *testing.T) {
	sc := Runes("ab∂")
	assert.Equal(t, []string{"a", "b", "∂"}, drain(sc))
	assert.Nil(t, sc.NextToken(), "exhaustion must be sticky")
}

func TestRuneTokenizerSpans(t *testing.T) {
	sc := Runes("xy")
	tok := sc.NextToken()
	assert.EqualValues(t, 0, tok.Span().From())
	assert.EqualValues(t, 1, tok.Span().To())
	tok = sc.NextToken()
	assert.EqualValues(t, 1, tok.Span().From())
	assert.EqualValues(t, 2, tok.Span().To())
}

func TestRuneTokenizerEmpty(t *testing.T) {
	assert.Nil(t, Runes("").NextToken())
}

func TestWordTokenizer(t *testing.T) {
	sc := Words("test", strings.NewReader("1 + 2"))
	assert.Equal(t, []string{"1", "+", "2"}, drain(sc))
}

func TestWordTokenizerWords(t *testing.T) {
	sc := Words("test", strings.NewReader("if foo 42"))
	assert.Equal(t, []string{"if", "foo", "42"}, drain(sc))
	assert.Nil(t, sc.NextToken())
}

func TestWordTokenizerErrorHandler(t *testing.T) {
	sc := Words("test", strings.NewReader(`"unterminated`))
	var seen error
	sc.SetErrorHandler(func(e error) {
		seen = e
	})
	drain(sc)
	assert.Error(t, seen, "an unterminated string must reach the handler")
}
