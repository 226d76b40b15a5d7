package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"cardpress/internal/janitor"
	"cardpress/internal/logging"
	"cardpress/internal/mailer"
	"cardpress/internal/pipeline"
	"cardpress/internal/render"
	"cardpress/internal/server"
)

func newServeCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the card generator web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			sink := mailer.NewSink(cfg, logging.WithComponent(logger, "mailer"))
			if cfg.Outbox.Enabled {
				store, err := mailer.OpenOutbox(cfg)
				if err != nil {
					return fmt.Errorf("open mail outbox: %w", err)
				}
				defer store.Close()

				worker := mailer.NewWorker(store, sink, cfg, logging.WithComponent(logger, "outbox"))
				go worker.Run(ctx)
				sink = mailer.NewOutboxSink(store)
			}

			renderer := render.New(cfg.Paths.AssetsDir, cfg.Render.FontPath, render.DefaultLayout(),
				logging.WithComponent(logger, "render"))
			runner := pipeline.New(renderer, sink, logging.WithComponent(logger, "pipeline"))

			if cfg.Janitor.Enabled {
				j := janitor.New(
					[]string{cfg.Paths.UploadDir, cfg.Paths.OutputDir},
					time.Duration(cfg.Janitor.IntervalHours)*time.Hour,
					logging.WithComponent(logger, "janitor"))
				go j.Run(ctx)
			}

			srv := server.New(cfg, runner, renderer, logging.WithComponent(logger, "server"))
			if err := srv.Start(); err != nil {
				return err
			}
			return srv.Serve(ctx)
		},
	}
}
