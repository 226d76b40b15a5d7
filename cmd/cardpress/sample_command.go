package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cardpress/internal/roster"
)

func newSampleCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "sample <path>",
		Short:       "Write a sample workbook with the expected columns",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := roster.CreateSample(args[0]); err != nil {
				return fmt.Errorf("create sample workbook: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample workbook to %s\n", args[0])
			return nil
		},
	}
}
