/*
Command lotsawa recognizes token streams against context-free grammars,
using the Earley/Leo engine of this module.

Grammars are given in a small line-based format, one rule per line:

	start -> A
	A     -> 'a' A
	A     -> 'a'

Quoted symbols are terminals, matched literally against input tokens; bare
names reference rules. An empty right-hand side is an epsilon rule. Lines
starting with # are comments. An optional "%start name" line overrides the
start symbol.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// tracer traces with key 'lotsawa.cli'.
func tracer() tracing.Trace {
	return tracing.Select("lotsawa.cli")
}

var rootCmd = &cobra.Command{
	Use:           "lotsawa",
	Short:         "An Earley/Leo recognizer for context-free grammars",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var traceFlag *string

func init() {
	traceFlag = rootCmd.PersistentFlags().String("trace", "Error", "trace level [Debug|Info|Error]")
	cobra.OnInitialize(func() {
		gtrace.SyntaxTracer = gologadapter.New()
		tracer().SetTraceLevel(traceLevel(*traceFlag))
	})
}

func traceLevel(name string) tracing.TraceLevel {
	switch name {
	case "Debug":
		return tracing.LevelDebug
	case "Info":
		return tracing.LevelInfo
	default:
		return tracing.LevelError
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
