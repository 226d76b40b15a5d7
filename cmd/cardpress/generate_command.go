package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"cardpress/internal/bundle"
	"cardpress/internal/mailer"
	"cardpress/internal/pipeline"
	"cardpress/internal/render"
	"cardpress/internal/roster"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var outputDir string
	var zipPath string
	var sendMail bool

	cmd := &cobra.Command{
		Use:   "generate <workbook>",
		Short: "Render cards for every row of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.logger()

			rows, err := roster.ReadWorkbook(args[0])
			if err != nil {
				return fmt.Errorf("read workbook: %w", err)
			}

			dest := outputDir
			if dest == "" {
				dest, err = os.MkdirTemp(cfg.Paths.OutputDir, "batch-")
				if err != nil {
					return fmt.Errorf("create batch directory: %w", err)
				}
			}

			sink := mailer.Discard()
			if sendMail {
				if !cfg.MailEnabled() {
					return fmt.Errorf("--email requires an SMTP host in the configuration")
				}
				sink = mailer.NewSink(cfg, logger)
			}

			renderer := render.New(cfg.Paths.AssetsDir, cfg.Render.FontPath, render.DefaultLayout(), logger)
			runner := pipeline.New(renderer, sink, logger)

			summary, err := runner.Run(cmd.Context(), rows, dest)
			if err != nil {
				return err
			}

			if zipPath != "" {
				if err := bundle.Pack(dest, zipPath); err != nil {
					return fmt.Errorf("bundle cards: %w", err)
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Batch", "Rendered", "Failed", "Notified", "Notify failed"},
				[][]string{{
					summary.BatchID,
					strconv.Itoa(summary.Rendered),
					strconv.Itoa(summary.Failed),
					strconv.Itoa(summary.Notified),
					strconv.Itoa(summary.NotifyFailed),
				}},
				[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight},
			))
			fmt.Fprintf(out, "Cards written to %s\n", dest)
			if zipPath != "" {
				fmt.Fprintf(out, "Bundle written to %s\n", zipPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Destination directory for rendered cards")
	cmd.Flags().StringVar(&zipPath, "zip", "", "Also bundle the rendered cards into this zip archive")
	cmd.Flags().BoolVar(&sendMail, "email", false, "Email each card to the row's address")
	return cmd
}
