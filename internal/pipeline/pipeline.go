package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"cardpress/internal/mailer"
	"cardpress/internal/roster"
)

// Renderer is the card rendering capability the pipeline drives.
type Renderer interface {
	Render(rec roster.Record, destDir string) (string, error)
}

// Summary reports the outcome of one batch.
type Summary struct {
	BatchID      string
	Rendered     int
	Failed       int
	Notified     int
	NotifyFailed int
}

// Runner executes batches. Construct once and reuse; each Run is an
// independent batch scoped to its destination directory.
type Runner struct {
	renderer Renderer
	sink     mailer.Sink
	logger   *slog.Logger
}

// New builds a batch runner.
func New(renderer Renderer, sink mailer.Sink, logger *slog.Logger) *Runner {
	return &Runner{renderer: renderer, sink: sink, logger: logger}
}

// Run renders one card per row into destDir and notifies rows that carry an
// email address. The destination directory is treated as ephemeral: it is
// created here, and nothing assumes a file written earlier still exists.
func (r *Runner) Run(ctx context.Context, rows []roster.Record, destDir string) (Summary, error) {
	summary := Summary{BatchID: uuid.NewString()}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return summary, fmt.Errorf("destination directory %q: %w", destDir, err)
	}

	logger := r.logger.With("batch", summary.BatchID)
	logger.Info("batch started", "rows", len(rows), "dest", destDir)

	for i, row := range rows {
		rec := row.Resolved()
		rowLogger := logger.With("row", i+1, "card", rec.CardID)

		artifact, err := r.renderer.Render(rec, destDir)
		if err != nil {
			summary.Failed++
			rowLogger.Error("card render failed", "error", err)
			continue
		}
		summary.Rendered++
		rowLogger.Debug("card rendered", "artifact", artifact)

		if rec.Email == "" {
			continue
		}
		if err := r.sink.Send(ctx, rec.Email, mailer.CardSubject, "", artifact); err != nil {
			summary.NotifyFailed++
			rowLogger.Warn("card notification failed", "to", rec.Email, "error", err)
			continue
		}
		summary.Notified++
	}

	logger.Info("batch complete",
		"rendered", summary.Rendered,
		"failed", summary.Failed,
		"notified", summary.Notified,
		"notify_failed", summary.NotifyFailed)
	return summary, nil
}
