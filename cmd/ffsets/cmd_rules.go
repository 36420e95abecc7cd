package main

import (
	"github.com/npillmayer/ffsets/report"
	"github.com/npillmayer/ffsets/ruleio"
	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules <grammar>",
		Short: "Print the numbered rules of a grammar",
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
			return report.Rules(cmd.OutOrStdout(), rules, format)
		},
	}
}
