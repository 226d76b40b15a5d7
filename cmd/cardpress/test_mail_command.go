package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cardpress/internal/mailer"
)

func newTestMailCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "test-mail <address>",
		Short: "Send a test card email to an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.MailEnabled() {
				return fmt.Errorf("mail is not configured; set smtp.host or export SMTP_SERVER")
			}

			sink := mailer.NewSink(cfg, ctx.logger())
			if err := sink.Send(cmd.Context(), args[0], mailer.CardSubject, "", ""); err != nil {
				return fmt.Errorf("send test mail: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Test mail sent to %s\n", args[0])
			return nil
		},
	}
}
