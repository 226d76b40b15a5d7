package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/wneessen/go-mail"

	"cardpress/internal/config"
)

// reservedAttachment is never attached, matching the marker the original
// deployment used for the inline body image.
const reservedAttachment = "emailbody.jpg"

// redemptionAttachment is the optional fixed secondary attachment, looked up
// in the assets directory.
const redemptionAttachment = "Redemption.jpg"

type smtpSink struct {
	smtp      config.SMTP
	assetsDir string
	logger    *slog.Logger
}

func newSMTPSink(cfg *config.Config, logger *slog.Logger) *smtpSink {
	return &smtpSink{
		smtp:      cfg.SMTP,
		assetsDir: cfg.Paths.AssetsDir,
		logger:    logger,
	}
}

// Send builds and delivers one message: plain fallback, HTML alternative,
// the optional redemption attachment, and the card artifact.
func (s *smtpSink) Send(ctx context.Context, to, subject, bodyText, attachmentPath string) error {
	msg := mail.NewMsg()
	if err := msg.From(s.smtp.From); err != nil {
		return fmt.Errorf("set sender %q: %w", s.smtp.From, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set recipient %q: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, plainBody(bodyText))
	msg.AddAlternativeString(mail.TypeTextHTML, htmlBody(bodyText))

	s.attach(msg, filepath.Join(s.assetsDir, redemptionAttachment))
	if attachmentPath != "" {
		s.attach(msg, attachmentPath)
	}

	client, err := s.client()
	if err != nil {
		return err
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

// attach adds a file when it exists and is not the reserved marker name.
func (s *smtpSink) attach(msg *mail.Msg, path string) {
	if strings.EqualFold(filepath.Base(path), reservedAttachment) {
		if s.logger != nil {
			s.logger.Warn("skipped reserved attachment", "path", path)
		}
		return
	}
	if _, err := os.Stat(path); err != nil {
		return
	}
	msg.AttachFile(path)
}

func (s *smtpSink) client() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(s.smtp.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
	}
	if s.smtp.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.smtp.Username),
			mail.WithPassword(s.smtp.Password),
		)
	}
	client, err := mail.NewClient(s.smtp.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return client, nil
}
