package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/npillmayer/ffsets/lrbridge"
	"github.com/npillmayer/ffsets/ruleio"
	"github.com/spf13/cobra"
)

func newLRCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lr <grammar>",
		Short: "Hand a grammar over to the gorgo LR toolbox and dump it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := ruleio.Load(args[0], loadOptions()...)
			if err != nil {
				return err
			}
			name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			ga, tokens, err := lrbridge.Export(name, rules)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			ga.Grammar().Dump()
			out := cmd.OutOrStdout()
			for _, t := range tokens.Names() {
				v, _ := tokens.Value(t)
				fmt.Fprintf(out, "%4d  %s\n", v, t)
			}
			return nil
		},
	}
}
