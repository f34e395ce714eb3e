package main

import (
	"io"
	"os"
	"strings"

	"github.com/aredridel/lotsawa/earley"
	"github.com/aredridel/lotsawa/grammar"
	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "repl <grammar file>",
		Short: "Interactively try inputs against a grammar",
		Args:  cobra.ExactArgs(1),
		RunE:  runRepl,
	}
	rootCmd.AddCommand(cmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	g, err := loadGrammar(args[0], f)
	f.Close()
	if err != nil {
		return err
	}
	repl, err := readline.New("lotsawa> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	pterm.Info.Printf("grammar %s: %d rules, %d symbols\n", g.Name, g.RuleCount(), g.SymbolCount())
	pterm.Info.Println("enter an input line to recognize it; :q quits")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			if err == io.EOF {
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		if line == ":q" || line == ":quit" {
			return nil
		}
		recognizeLine(g, line)
	}
}

func recognizeLine(g *grammar.Grammar, line string) {
	if earley.ParseString(g, line) {
		pterm.Success.Println("accepted")
		return
	}
	pterm.Error.Println("rejected")
}
