package earley

import (
	"bytes"

	"github.com/aredridel/lotsawa/grammar"
)

func (p *Parser) dumpState(stateno uint64) {
	tracer().Debugf("--- State %04d ------------------------------------", stateno)
	S := p.chart[stateno]
	for i := 0; i < S.Size(); i++ {
		tracer().Debugf("[%2d] %s", i+1, S.At(i).StringIn(p.g))
	}
}

func itemSetString(g *grammar.Grammar, S *Set) string {
	var b bytes.Buffer
	b.WriteString("{")
	for i := 0; i < S.Size(); i++ {
		if i == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(S.At(i).StringIn(g))
	}
	b.WriteString(" }")
	return b.String()
}
