package mailer

import (
	"context"
	"log/slog"

	"cardpress/internal/config"
)

// CardSubject is the fixed subject line for card delivery mail.
const CardSubject = "Your A-Member Card Awaits You"

// Sink is the notification contract consumed by the batch pipeline. Send is
// invoked once per row that carries an email address; attachmentPath may be
// empty.
type Sink interface {
	Send(ctx context.Context, to, subject, bodyText, attachmentPath string) error
}

// NewSink builds the delivery sink for the given configuration. When no SMTP
// host is configured a noop sink is returned, so callers never branch on mail
// being enabled.
func NewSink(cfg *config.Config, logger *slog.Logger) Sink {
	if cfg == nil || !cfg.MailEnabled() {
		return noopSink{logger: logger}
	}
	return newSMTPSink(cfg, logger)
}

// Discard returns a sink that silently drops every message.
func Discard() Sink {
	return noopSink{}
}

type noopSink struct {
	logger *slog.Logger
}

func (n noopSink) Send(_ context.Context, to, _, _, _ string) error {
	if n.logger != nil {
		n.logger.Debug("mail disabled, dropping message", "to", to)
	}
	return nil
}
