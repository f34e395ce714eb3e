package grammar

import (
	"bytes"
	"fmt"

	"github.com/aredridel/lotsawa/bitvec"
	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// AcceptSymbol is the reserved LHS name of the synthetic accept rule.
// Client grammars must not define rules for it.
const AcceptSymbol = "_accept"

// DefaultStart is the start symbol name used unless overridden.
const DefaultStart = "start"

// --- Symbols and rules ------------------------------------------------

// Symbol is a distinct name occurring anywhere in the grammar, interned to a
// small integer id during grammar construction. A symbol is a terminal iff it
// never appears as any rule's LHS; terminals are matched literally against
// input token lexemes.
type Symbol struct {
	ID       int
	Name     string
	terminal bool
}

// IsTerminal returns true for symbols which appear on no rule's LHS.
func (s *Symbol) IsTerminal() bool {
	return s.terminal
}

func (s *Symbol) String() string {
	if s == nil {
		return "<none>"
	}
	return s.Name
}

// Rule is a production in interned, numeric form: an LHS symbol id and an
// ordered sequence of RHS symbol ids. An empty RHS makes the rule an
// epsilon-production. Rules are identified by their serial, assigned in
// input order.
type Rule struct {
	Serial int
	LHS    int
	RHS    []int
}

// IsEpsilon returns true for rules with an empty RHS.
func (r *Rule) IsEpsilon() bool {
	return len(r.RHS) == 0
}

// --- Rule records -----------------------------------------------------

// SymRef references a symbol by name within a RuleSpec's RHS. Terminal-ness
// is not declared up front: a name is a terminal exactly if no rule defines
// it. Ref and Terminal exist to let grammar sources state their intent.
type SymRef struct {
	Name    string
	Literal bool
}

// Ref names a symbol expected to be some rule's LHS.
func Ref(name string) SymRef {
	return SymRef{Name: name}
}

// Terminal names a literal to be matched against input token lexemes.
func Terminal(lit string) SymRef {
	return SymRef{Name: lit, Literal: true}
}

// RuleSpec is a production in symbolic form, as supplied by callers.
type RuleSpec struct {
	LHS string
	RHS []SymRef
}

// NewRule assembles a RuleSpec.
func NewRule(lhs string, rhs ...SymRef) RuleSpec {
	return RuleSpec{LHS: lhs, RHS: rhs}
}

// Option configures grammar construction.
type Option func(*config)

type config struct {
	start string
}

// WithStart overrides the start symbol name (default "start").
func WithStart(name string) Option {
	return func(c *config) {
		c.start = name
	}
}

// --- Grammar ----------------------------------------------------------

// Grammar is the processed, immutable form of a rule list. It owns the
// symbol table, the rules in numeric form, the by-symbol rule index and the
// precomputed closure tables. Construction appends the synthetic rule
// _accept ➞ start and remembers its serial; the recognizer defines success
// in terms of that rule.
//
// A Grammar is immutable after construction and may be shared read-only
// between parsers on independent goroutines.
type Grammar struct {
	Name        string
	symbols     []*Symbol
	symIndex    map[string]int
	rules       []*Rule
	bySymbol    [][]int // rule serials per LHS symbol
	acceptRule  int
	acceptSym   int
	startSym    int
	sympred     *bitvec.Matrix   // sympred[a][b]: a can begin a derivation whose outermost LHS is b
	rightrec    *bitvec.Matrix   // rightrec[lhs][sym]: rules of lhs chain rightmost into a rule ending in sym
	predictions [][]int          // rule serials to add when a symbol is predicted; sorted
	predictBits []*bitvec.Vector // same, as bitsets over rule serials
	startsWith  []*bitvec.Vector // rules whose RHS begins with the symbol
}

// New processes a symbolic rule list into a Grammar. The rule list is taken
// as-is: a name referenced but never defined simply becomes a terminal, and a
// grammar without a start rule is legal (it just recognizes nothing). The
// only hard errors are an empty LHS name and a rule for the reserved
// AcceptSymbol.
func New(name string, specs []RuleSpec, opts ...Option) (*Grammar, error) {
	cfg := config{start: DefaultStart}
	for _, opt := range opts {
		opt(&cfg)
	}
	for _, spec := range specs {
		if spec.LHS == "" {
			return nil, fmt.Errorf("grammar %q: rule with empty LHS", name)
		}
		if spec.LHS == AcceptSymbol {
			return nil, fmt.Errorf("grammar %q: %s is a reserved symbol", name, AcceptSymbol)
		}
	}
	g := &Grammar{
		Name:     name,
		symIndex: make(map[string]int),
	}
	all := make([]RuleSpec, 0, len(specs)+1)
	all = append(all, specs...)
	all = append(all, NewRule(AcceptSymbol, Ref(cfg.start)))
	g.acceptRule = len(all) - 1
	g.census(all)
	g.acceptSym = g.symIndex[AcceptSymbol]
	g.startSym = g.symIndex[cfg.start]
	g.index()
	g.analyze()
	tracer().Debugf("grammar %q: %d symbols, %d rules", g.Name, len(g.symbols), len(g.rules))
	return g, nil
}

// census walks every rule once, assigning each newly seen name a fresh id
// and rewriting the rules in numeric form.
func (g *Grammar) census(specs []RuleSpec) {
	for serial, spec := range specs {
		rule := &Rule{
			Serial: serial,
			LHS:    g.intern(spec.LHS),
			RHS:    make([]int, 0, len(spec.RHS)),
		}
		for _, ref := range spec.RHS {
			rule.RHS = append(rule.RHS, g.intern(ref.Name))
		}
		g.rules = append(g.rules, rule)
	}
	for _, sym := range g.symbols {
		sym.terminal = true
	}
	for _, rule := range g.rules {
		g.symbols[rule.LHS].terminal = false
	}
}

func (g *Grammar) intern(name string) int {
	if id, ok := g.symIndex[name]; ok {
		return id
	}
	id := len(g.symbols)
	g.symbols = append(g.symbols, &Symbol{ID: id, Name: name})
	g.symIndex[name] = id
	return id
}

// index fills the by-symbol rule lists.
func (g *Grammar) index() {
	g.bySymbol = make([][]int, len(g.symbols))
	for _, rule := range g.rules {
		g.bySymbol[rule.LHS] = append(g.bySymbol[rule.LHS], rule.Serial)
	}
}

// analyze computes the closure tables: sympred, the per-symbol prediction
// lists derived from it, the starts-with index and the right-recursion
// matrix.
func (g *Grammar) analyze() {
	n := len(g.symbols)
	g.sympred = bitvec.NewMatrix(n)
	for _, rule := range g.rules {
		if !rule.IsEpsilon() {
			g.sympred.Set(rule.RHS[0], rule.LHS)
		}
	}
	for s := 0; s < n; s++ {
		g.sympred.Set(s, s)
	}
	g.sympred.TransitiveClosure()
	//
	g.startsWith = make([]*bitvec.Vector, n)
	for s := 0; s < n; s++ {
		g.startsWith[s] = bitvec.New(len(g.rules))
	}
	for _, rule := range g.rules {
		if !rule.IsEpsilon() {
			g.startsWith[rule.RHS[0]].Set(rule.Serial)
		}
	}
	// sympred[a][s] set means: predicting s requires predicting a's rules.
	collect := make([]*treeset.Set, n)
	for s := 0; s < n; s++ {
		collect[s] = treeset.NewWith(utils.IntComparator)
	}
	for a := 0; a < n; a++ {
		rules := g.bySymbol[a]
		if len(rules) == 0 {
			continue
		}
		g.sympred.Row(a).Each(func(s int) {
			for _, serial := range rules {
				collect[s].Add(serial)
			}
		})
	}
	g.predictions = make([][]int, n)
	g.predictBits = make([]*bitvec.Vector, n)
	for s := 0; s < n; s++ {
		g.predictBits[s] = bitvec.New(len(g.rules))
		g.predictions[s] = make([]int, 0, collect[s].Size())
		for _, v := range collect[s].Values() {
			serial := v.(int)
			g.predictions[s] = append(g.predictions[s], serial)
			g.predictBits[s].Set(serial)
		}
	}
	//
	g.rightrec = bitvec.NewMatrix(n)
	for _, rule := range g.rules {
		if !rule.IsEpsilon() {
			g.rightrec.Set(rule.LHS, rule.RHS[len(rule.RHS)-1])
		}
	}
	g.rightrec.TransitiveClosure()
}

// --- Accessors --------------------------------------------------------

// SymbolCount returns the number of distinct symbols.
func (g *Grammar) SymbolCount() int {
	return len(g.symbols)
}

// RuleCount returns the number of rules, including the accept rule.
func (g *Grammar) RuleCount() int {
	return len(g.rules)
}

// Symbol returns the symbol with the given id.
func (g *Grammar) Symbol(id int) *Symbol {
	return g.symbols[id]
}

// SymbolOf returns the symbol for a name (typically a token lexeme), or nil
// if the grammar has never seen the name. Unknown tokens match nothing.
func (g *Grammar) SymbolOf(name string) *Symbol {
	if id, ok := g.symIndex[name]; ok {
		return g.symbols[id]
	}
	return nil
}

// Rule returns the rule with the given serial.
func (g *Grammar) Rule(serial int) *Rule {
	return g.rules[serial]
}

// AcceptRule returns the serial of the synthetic accept rule.
func (g *Grammar) AcceptRule() int {
	return g.acceptRule
}

// AcceptSym returns the id of the synthetic accept symbol.
func (g *Grammar) AcceptSym() int {
	return g.acceptSym
}

// StartSymbol returns the start symbol. The symbol always exists, even if no
// rule defines it (the grammar then recognizes the empty language).
func (g *Grammar) StartSymbol() *Symbol {
	return g.symbols[g.startSym]
}

// RulesFor returns the serials of all rules with the given LHS symbol.
func (g *Grammar) RulesFor(sym int) []int {
	return g.bySymbol[sym]
}

// PredictionsFor returns the serials of all rules to add to a chart set when
// the given symbol is predicted. The list is sorted and deduplicated.
func (g *Grammar) PredictionsFor(sym int) []int {
	return g.predictions[sym]
}

// PredictionSet returns PredictionsFor as a bitset over rule serials. The
// returned vector is shared; callers must not mutate it.
func (g *Grammar) PredictionSet(sym int) *bitvec.Vector {
	return g.predictBits[sym]
}

// RulesStartingWith returns the rules whose RHS begins with sym, as a bitset
// over rule serials. The returned vector is shared; callers must not mutate it.
func (g *Grammar) RulesStartingWith(sym int) *bitvec.Vector {
	return g.startsWith[sym]
}

// CanBeginWith reports whether a derivation of b can begin with symbol a,
// i.e. whether a is b itself or, transitively, the first RHS symbol of a
// rule whose LHS is b. Reflexive.
func (g *Grammar) CanBeginWith(a, b int) bool {
	return g.sympred.Test(a, b)
}

// ReachesRightmost reports whether rules with the given LHS can, through a
// chain of rules each taken at its rightmost symbol, reach a rule ending in
// sym.
func (g *Grammar) ReachesRightmost(lhs, sym int) bool {
	return g.rightrec.Test(lhs, sym)
}

// IsRightRecursive reports whether completing the tail of this rule can
// restart the rule: its rightmost symbol either is the LHS or chains
// rightmost back into a rule ending in the LHS. Such rules are eligible for
// Leo items.
func (g *Grammar) IsRightRecursive(r *Rule) bool {
	if r.IsEpsilon() {
		return false
	}
	last := r.RHS[len(r.RHS)-1]
	return last == r.LHS || g.rightrec.Test(last, r.LHS)
}

// --- Mappers ----------------------------------------------------------

// EachSymbol applies a mapper function to all symbols of the grammar.
func (g *Grammar) EachSymbol(f func(sym *Symbol) interface{}) {
	for _, sym := range g.symbols {
		f(sym)
	}
}

// EachRule applies a mapper function to all rules of the grammar.
func (g *Grammar) EachRule(f func(r *Rule) interface{}) {
	for _, rule := range g.rules {
		f(rule)
	}
}

// --- Fingerprinting and debugging -------------------------------------

type fingerprint struct {
	Name    string   `json:"name"`
	Symbols []string `json:"symbols"`
	Rules   [][]int  `json:"rules"`
}

// Hash returns a stable fingerprint of the interned grammar. Two grammars
// built from equal rule lists hash identically.
func (g *Grammar) Hash() string {
	fp := fingerprint{Name: g.Name}
	for _, sym := range g.symbols {
		fp.Symbols = append(fp.Symbols, sym.Name)
	}
	for _, rule := range g.rules {
		row := append([]int{rule.LHS}, rule.RHS...)
		fp.Rules = append(fp.Rules, row)
	}
	h, err := structhash.Hash(fp, 1)
	if err != nil {
		panic(fmt.Sprintf("grammar fingerprint: %v", err))
	}
	return h
}

// RuleString formats a rule in the grammar's symbol names.
func (g *Grammar) RuleString(r *Rule) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "[%s] ::= [", g.symbols[r.LHS].Name)
	for i, s := range r.RHS {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(g.symbols[s].Name)
	}
	b.WriteString("]")
	return b.String()
}

// Dump is a debugging helper, tracing all rules of the grammar.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s ----------", g.Name)
	for _, rule := range g.rules {
		tracer().Debugf("%d: %s", rule.Serial, g.RuleString(rule))
	}
	tracer().Debugf("-------------------------")
}
