package main

import (
	"fmt"

	"github.com/npillmayer/ffsets"
	"github.com/npillmayer/ffsets/report"
	"github.com/npillmayer/ffsets/ruleio"
	"github.com/npillmayer/ffsets/sets"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/spf13/cobra"
)

func newSetsCmd() *cobra.Command {
	var maxIter int
	var verbose bool

	cmd := &cobra.Command{
		Use:   "sets <grammar>",
		Short: "Print the First and Follow sets of a grammar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(global.format)
			if err != nil {
				return err
			}
			rules, err := ruleio.Load(args[0], loadOptions()...)
			if err != nil {
				return err
			}
			opts := []ffsets.Option{ffsets.WithMaxIterations(maxIter)}
			if verbose {
				opts = append(opts, ffsets.WithIterationHook(func(i int, t *sets.Table) {
					gtrace.CoreTracer.Infof("after iteration %d: %d facts", i, t.Facts())
				}))
			}
			result, err := ffsets.NewSolver(rules, opts...).Solve()
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return report.Sets(cmd.OutOrStdout(), result.Table, format)
		},
	}

	cmd.Flags().IntVar(&maxIter, "max-iter", 0, "fail after this many iterations (0 = no limit)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace fact counts after each iteration")

	return cmd
}
