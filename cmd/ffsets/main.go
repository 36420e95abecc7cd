package main

import (
	"os"

	"github.com/npillmayer/ffsets/ruleio"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// flags shared by all sub-commands
type globalFlags struct {
	trace  string
	format string
	start  string
}

var global globalFlags

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ffsets",
		Short: "Compute First and Follow sets of context-free grammars",
		Long: `Compute First and Follow sets of context-free grammars.

Grammars are read from .txt, .json or .ebnf files. Every entry of a set
is annotated with the number of the rule which justified it.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			gtrace.CoreTracer = gologadapter.New()
			gtrace.CoreTracer.SetTraceLevel(traceLevel(global.trace))
		},
	}
	rootCmd.PersistentFlags().StringVarP(&global.trace, "trace", "t", "E", "trace level (D, I or E)")
	rootCmd.PersistentFlags().StringVarP(&global.format, "format", "f", "text", "output format (text or json)")
	rootCmd.PersistentFlags().StringVar(&global.start, "start", "", "start production for .ebnf grammars")

	rootCmd.AddCommand(newSetsCmd())
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newLRCmd())
	return rootCmd
}

func traceLevel(l string) tracing.TraceLevel {
	switch l {
	case "D":
		return tracing.LevelDebug
	case "I":
		return tracing.LevelInfo
	case "E":
		return tracing.LevelError
	}
	return tracing.LevelError
}

func loadOptions() []ruleio.Option {
	if global.start == "" {
		return nil
	}
	return []ruleio.Option{ruleio.WithStart(global.start)}
}
