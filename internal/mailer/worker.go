package mailer

import (
	"context"
	"log/slog"
	"time"

	"cardpress/internal/config"
)

// Worker drains the outbox on an interval, retrying failed deliveries with
// exponential backoff until the attempt limit is reached.
type Worker struct {
	store       *OutboxStore
	sender      Sink
	interval    time.Duration
	backoff     time.Duration
	maxAttempts int
	batchLimit  int
	logger      *slog.Logger
}

// NewWorker builds an outbox worker. sender is the transport actually
// delivering mail, normally the SMTP sink.
func NewWorker(store *OutboxStore, sender Sink, cfg *config.Config, logger *slog.Logger) *Worker {
	return &Worker{
		store:       store,
		sender:      sender,
		interval:    time.Duration(cfg.Outbox.DrainInterval) * time.Second,
		backoff:     time.Duration(cfg.Outbox.BackoffSeconds) * time.Second,
		maxAttempts: cfg.Outbox.MaxAttempts,
		batchLimit:  cfg.Outbox.BatchLimit,
		logger:      logger,
	}
}

// Run drains the outbox until the context is canceled.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Drain(ctx)
		}
	}
}

// Drain processes one batch of due messages. Delivery failures reschedule the
// message; the batch itself never fails.
func (w *Worker) Drain(ctx context.Context) {
	due, err := w.store.Due(ctx, time.Now(), w.batchLimit)
	if err != nil {
		w.logger.Error("outbox query failed", "error", err)
		return
	}

	for _, msg := range due {
		sendErr := w.sender.Send(ctx, msg.Recipient, msg.Subject, msg.Body, msg.Attachment)
		if sendErr == nil {
			if err := w.store.MarkSent(ctx, msg.ID); err != nil {
				w.logger.Error("outbox mark sent failed", "id", msg.ID, "error", err)
			}
			w.logger.Info("outbox message delivered", "id", msg.ID, "to", msg.Recipient)
			continue
		}

		attempts := msg.Attempts + 1
		final := attempts >= w.maxAttempts
		next := time.Now().Add(w.backoff << uint(msg.Attempts))
		if err := w.store.MarkFailed(ctx, msg.ID, sendErr, next, final); err != nil {
			w.logger.Error("outbox mark failed errored", "id", msg.ID, "error", err)
			continue
		}
		if final {
			w.logger.Error("outbox message abandoned", "id", msg.ID, "to", msg.Recipient,
				"attempts", attempts, "error", sendErr)
		} else {
			w.logger.Warn("outbox delivery failed, will retry", "id", msg.ID,
				"to", msg.Recipient, "attempts", attempts, "error", sendErr)
		}
	}
}
