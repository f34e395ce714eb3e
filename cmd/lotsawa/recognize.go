package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aredridel/lotsawa"
	"github.com/aredridel/lotsawa/earley"
	"github.com/aredridel/lotsawa/grammar"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var recognizeFlags = struct {
	fields *bool
	chart  *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "recognize <grammar file> <input>",
		Short:   "Recognize an input string against a grammar",
		Example: `  lotsawa recognize json.g '{"a":1}'`,
		Args:    cobra.ExactArgs(2),
		RunE:    runRecognize,
	}
	recognizeFlags.fields = cmd.Flags().BoolP("fields", "f", false, "split the input on whitespace instead of into single characters")
	recognizeFlags.chart = cmd.Flags().BoolP("chart", "c", false, "dump the Earley chart after parsing")
	rootCmd.AddCommand(cmd)
}

func runRecognize(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	g, err := loadGrammar(args[0], f)
	if err != nil {
		return fmt.Errorf("cannot load grammar: %w", err)
	}
	p := earley.NewParser(g)
	for pos, lex := range lexemes(args[1], *recognizeFlags.fields) {
		tok := lotsawa.MakeToken(lex, lotsawa.Span{uint64(pos), uint64(pos) + 1})
		if !p.Push(tok) {
			pterm.Warning.Printf("no continuation possible after token %d (%q)\n", pos+1, lex)
			break
		}
	}
	if *recognizeFlags.chart {
		dumpChart(p, g)
	}
	switch {
	case p.Success():
		pterm.Success.Println("input accepted")
		return nil
	case p.MatchCount() > 1:
		pterm.Error.Printf("input ambiguous (%d matches)\n", p.MatchCount())
	default:
		pterm.Error.Println("input rejected")
	}
	os.Exit(1)
	return nil
}

func lexemes(input string, fields bool) []string {
	if fields {
		return strings.Fields(input)
	}
	lexs := make([]string, 0, len(input))
	for _, r := range input {
		lexs = append(lexs, string(r))
	}
	return lexs
}

func dumpChart(p *earley.Parser, g *grammar.Grammar) {
	for k := 0; k < p.SetCount(); k++ {
		header := fmt.Sprintf("--- set %04d ", k)
		pterm.DefaultSection.Println(header)
		for _, it := range p.SetItems(uint64(k)) {
			pterm.Println(it.StringIn(g))
		}
	}
}
