package earley

import (
	"github.com/npillmayer/schuko/gconf"

	"github.com/aredridel/lotsawa"
	"github.com/aredridel/lotsawa/bitvec"
	"github.com/aredridel/lotsawa/grammar"
	"github.com/aredridel/lotsawa/scanner"
)

// Parser is an Earley chart recognizer for a previously constructed grammar.
// Create one with NewParser, feed it tokens with Push and ask Success when
// the input is exhausted. A Parser holds the chart for exactly one input
// stream; create a fresh one per parse.
type Parser struct {
	g      *grammar.Grammar
	chart  []*Set          // Earley sets, indexed by input position
	sc     uint64          // state count: index of the current set
	tokens []lotsawa.Token // input stream, tokens start at index 1
}

// NewParser creates a parser for a grammar and seeds Earley set 0 with the
// predictions of the accept symbol, completing immediately so that a
// nullable start rule already accepts the empty input.
func NewParser(g *grammar.Grammar) *Parser {
	p := &Parser{
		g:      g,
		chart:  []*Set{newSet(g.RuleCount())},
		tokens: []lotsawa.Token{nil},
	}
	S0 := p.chart[0]
	S0.predicted.UnionWith(g.PredictionSet(g.AcceptSym()))
	for _, serial := range g.PredictionsFor(g.AcceptSym()) {
		p.insert(S0, Item{Rule: serial, Pos: 0, Origin: 0, Leo: NoLeo, Kind: KindInitial})
	}
	p.complete(0)
	p.memoizeLeo(0)
	return p
}

// Push advances the parser by one input token. It allocates the next Earley
// set, advances all items of the previous set which expect the token's
// symbol (scanning and advancing are one and the same here), seeds the
// predictions of the advanced items, and completes the new set to a fixed
// point. It reports whether the chart is still live, i.e. whether any
// continuation of the input can succeed through this set.
//
// A token whose lexeme is unknown to the grammar matches nothing; the new
// set stays empty and the parse cannot recover.
func (p *Parser) Push(tok lotsawa.Token) bool {
	p.tokens = append(p.tokens, tok)
	p.sc++
	S := newSet(p.g.RuleCount())
	p.chart = append(p.chart, S)
	sym := p.g.SymbolOf(tok.Lexeme())
	if sym == nil {
		tracer().Debugf("token %q is unknown to the grammar", tok.Lexeme())
		return false
	}
	tracer().Debugf("=== push %q ➞ set %d ===", tok.Lexeme(), p.sc)
	prev := p.chart[p.sc-1]
	for i := 0; i < prev.Size(); i++ {
		it := prev.At(i)
		if it.PeekSymbol(p.g) == sym.ID {
			p.insert(S, p.advanced(it, KindScanned))
		}
	}
	p.complete(p.sc)
	p.memoizeLeo(p.sc)
	p.dumpState(p.sc)
	if S.Size() == 0 {
		tracer().Debugf("no item matched %q, chart is dead at %d", tok.Lexeme(), p.sc)
	}
	return S.Size() > 0
}

// Success reports whether the input consumed so far is a sentence of the
// grammar: the final set must hold the completed accept item at origin 0,
// and it must have been completed exactly once. An input matched more than
// once is ambiguous and, for now, reported as failure; see MatchCount.
func (p *Parser) Success() bool {
	if p.g.StartSymbol().IsTerminal() {
		return false // no rule derives the start symbol
	}
	S := p.chart[p.sc]
	accept := p.g.Rule(p.g.AcceptRule())
	if _, ok := S.Get(accept.Serial, len(accept.RHS), 0); !ok {
		return false
	}
	return S.acceptTries == 1
}

// MatchCount returns how often the accept item was completed in the final
// set. 0 means failure, 1 an unambiguous match, anything above 1 an
// ambiguous one. Callers preferring accept-on-ambiguity can test
// MatchCount() > 0 instead of Success().
func (p *Parser) MatchCount() int {
	return p.chart[p.sc].acceptTries
}

// --- The per-token pipeline -------------------------------------------

// insert adds an item to the current set and, when the item expects a
// non-terminal, immediately seeds that symbol's predictions so they are
// visible to scanning of the next token and to completion within this pass.
func (p *Parser) insert(S *Set, it Item) bool {
	if p.isAcceptCompletion(it) {
		S.acceptTries++
	}
	if !S.Add(it) {
		return false
	}
	if next := it.PeekSymbol(p.g); next >= 0 && !p.g.Symbol(next).IsTerminal() {
		p.predict(S, next)
	}
	return true
}

// predict unions a symbol's precomputed prediction closure into the set's
// bitset and materializes the predicted items at position 0. The prediction
// lists are transitively closed already, so newly materialized items need no
// recursive prediction of their own.
func (p *Parser) predict(S *Set, sym int) {
	if !S.predicted.UnionWith(p.g.PredictionSet(sym)) {
		return // nothing new at this position
	}
	for _, serial := range p.g.PredictionsFor(sym) {
		S.Add(Item{Rule: serial, Pos: 0, Origin: p.sc, Leo: NoLeo, Kind: KindPredicted})
	}
}

// advanced moves an item's dot one position to the right. A non-empty Leo
// annotation is carried forward; otherwise it is recomputed for the new dot
// position, so that an item entering the tail of a right-recursive rule
// picks up the chain base memoized at its origin.
func (p *Parser) advanced(it Item, kind Kind) Item {
	adv := Item{Rule: it.Rule, Pos: it.Pos + 1, Origin: it.Origin, Leo: it.Leo, Kind: kind}
	if adv.Leo == NoLeo {
		adv.Leo = p.leoBase(adv)
	}
	return adv
}

// leoBase returns the Leo chain base for an item, or NoLeo. An item carries
// a Leo annotation iff its rule is right-recursive and only the tail symbol
// remains to be parsed. The base is the memo of the origin set when a chain
// is already running there, else the item's own origin (a chain starts).
func (p *Parser) leoBase(it Item) int64 {
	r := p.g.Rule(it.Rule)
	if it.Pos != len(r.RHS)-1 || !p.g.IsRightRecursive(r) {
		return NoLeo
	}
	if base, ok := p.chart[it.Origin].LeoMemo(r.RHS[it.Pos]); ok {
		return int64(base)
	}
	return int64(it.Origin)
}

// complete drives set k to its fixed point: every completed item either
// follows its Leo annotation or performs a plain Earley completion at its
// origin. Items appended during the loop are completed by the same loop.
func (p *Parser) complete(k uint64) {
	S := p.chart[k]
	for i := 0; i < S.Size(); i++ {
		d := S.At(i)
		if !d.Completed(p.g) {
			continue
		}
		lhs := p.g.Rule(d.Rule).LHS
		if d.Leo != NoLeo {
			p.completeLeo(S, d, lhs)
		} else {
			p.completeEarley(S, d, lhs, k)
		}
	}
}

// completeEarley is the classic completion: back at the completed item's
// origin, realize the cached predictions whose rule begins with the
// completed LHS, and advance the in-progress items expecting it.
func (p *Parser) completeEarley(S *Set, d Item, lhs int, k uint64) {
	O := p.chart[d.Origin]
	if d.Origin == k {
		// A completion within its own set (an epsilon rule): the set's
		// prediction bitset may still be growing, scan the items instead.
		for j := 0; j < O.Size(); j++ {
			c := O.At(j)
			if c.PeekSymbol(p.g) == lhs {
				p.insert(S, p.advanced(c, KindAdvanced))
			}
		}
		return
	}
	realized := bitvec.Intersection(O.Predicted(), p.g.RulesStartingWith(lhs))
	realized.Each(func(serial int) {
		base := Item{Rule: serial, Pos: 0, Origin: d.Origin, Leo: NoLeo}
		p.insert(S, p.advanced(base, KindCompleted))
	})
	for j := 0; j < O.Size(); j++ {
		c := O.At(j)
		if c.Pos > 0 && c.PeekSymbol(p.g) == lhs {
			p.insert(S, p.advanced(c, KindAdvanced))
		}
	}
}

// completeLeo follows a completed item's Leo annotation: instead of walking
// the reduction ladder set by set, it jumps to the chain base and advances
// the item(s) expecting the completed LHS there, collapsing the whole
// right-recursive reduction into constant work per set.
func (p *Parser) completeLeo(S *Set, d Item, lhs int) {
	T := p.chart[d.Leo]
	found := 0
	for j := 0; j < T.Size(); j++ {
		c := T.At(j)
		if c.PeekSymbol(p.g) != lhs {
			continue
		}
		found++
		origin := c.Origin
		if c.Leo != NoLeo {
			origin = uint64(c.Leo)
		}
		p.insert(S, Item{Rule: c.Rule, Pos: c.Pos + 1, Origin: origin, Leo: NoLeo, Kind: KindLeo})
	}
	if found == 0 {
		tracer().Errorf("Leo item %s has no target in set %d: %s", d.StringIn(p.g), d.Leo,
			itemSetString(p.g, T))
	} else if found > 1 {
		leoConflict(d.StringIn(p.g), found)
	}
}

// memoizeLeo records, per expected symbol of set k, the Leo chain base,
// but only when exactly one item expects the symbol, at the tail of a
// right-recursive rule. Items advanced into the next sets read the memo to
// collapse the chain back to its common origin.
func (p *Parser) memoizeLeo(k uint64) {
	S := p.chart[k]
	expecting := make(map[int]int) // symbol ➞ index of single expecting item, or -1
	for i := 0; i < S.Size(); i++ {
		sym := S.At(i).PeekSymbol(p.g)
		if sym < 0 {
			continue
		}
		if _, ok := expecting[sym]; ok {
			expecting[sym] = -1 // not unique
		} else {
			expecting[sym] = i
		}
	}
	for sym, i := range expecting {
		if i < 0 {
			continue
		}
		it := S.At(i)
		r := p.g.Rule(it.Rule)
		if it.Pos != len(r.RHS)-1 || !p.g.IsRightRecursive(r) {
			continue
		}
		base := it.Origin
		if it.Leo != NoLeo {
			base = uint64(it.Leo)
		}
		S.leoMemo[sym] = base
	}
}

func (p *Parser) isAcceptCompletion(it Item) bool {
	return it.Rule == p.g.AcceptRule() && it.Origin == 0 &&
		it.Pos == len(p.g.Rule(it.Rule).RHS)
}

// leoConflict reports a violated Leo uniqueness assumption. The recognizer
// stays correct by processing every target, but a grammar triggering this is
// worth a look; set the config flag to fail fast while debugging.
func leoConflict(item string, n int) {
	tracer().Errorf("%d Leo targets for %s, expected exactly 1", n, item)
	if gconf.GetBool("panic-on-leo-conflict") {
		panic(`Leo completion found more than one target item.

Configuration flag panic-on-leo-conflict is set to true. It is aimed at
helping to debug a grammar's right-recursion behavior. If this is a
production environment and you did not expect this to panic, please unset
panic-on-leo-conflict to its default (false).`)
	}
}

// --- Queries and drivers ----------------------------------------------

// TokenAt returns the input token which produced set pos, for 1 ≤ pos ≤
// the number of tokens pushed.
func (p *Parser) TokenAt(pos uint64) lotsawa.Token {
	if pos >= 1 && pos < uint64(len(p.tokens)) {
		return p.tokens[pos]
	}
	return nil
}

// SetCount returns the number of Earley sets, one more than the number of
// tokens pushed.
func (p *Parser) SetCount() int {
	return len(p.chart)
}

// SetSize returns the number of items in set k.
func (p *Parser) SetSize(k uint64) int {
	return p.chart[k].Size()
}

// SetItems returns a copy of the items of set k, in insertion order.
func (p *Parser) SetItems(k uint64) []Item {
	return append([]Item(nil), p.chart[k].items...)
}

// Parse drives the parser from a tokenizer until the input is exhausted
// and reports acceptance. Scanner errors arrive through the tokenizer's
// error handler, which Parse replaces; the last one reported is returned
// after the run. They do not abort the parse.
func (p *Parser) Parse(tok scanner.Tokenizer) (bool, error) {
	var serr error
	tok.SetErrorHandler(func(e error) {
		serr = e
	})
	for t := tok.NextToken(); t != nil; t = tok.NextToken() {
		p.Push(t)
	}
	return p.Success(), serr
}

// ParseTokens is a convenience recognizer: it feeds every lexeme to a fresh
// parser and reports acceptance.
func ParseTokens(g *grammar.Grammar, lexemes []string) bool {
	p := NewParser(g)
	var pos uint64
	for _, lex := range lexemes {
		p.Push(lotsawa.MakeToken(lex, lotsawa.Span{pos, pos + 1}))
		pos++
	}
	return p.Success()
}

// ParseString recognizes a string, each rune being one input token.
func ParseString(g *grammar.Grammar, input string) bool {
	lexemes := make([]string, 0, len(input))
	for _, r := range input {
		lexemes = append(lexemes, string(r))
	}
	return ParseTokens(g, lexemes)
}
