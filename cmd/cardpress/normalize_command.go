package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cardpress/internal/identifier"
)

func newNormalizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "normalize <id>...",
		Short:       "Show the canonical and display form of card identifiers",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(args))
			for _, raw := range args {
				rows = append(rows, []string{
					raw,
					identifier.Classify(raw).String(),
					identifier.Normalize(raw),
					identifier.DisplayText(raw),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Input", "Class", "Canonical", "Display"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}
