package mailer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wneessen/go-mail"
)

func TestHTMLBodyEmbedsBannerAndContactBlock(t *testing.T) {
	body := htmlBody("Here is your card.")
	if !strings.Contains(body, bannerURL) {
		t.Fatal("banner url missing from html body")
	}
	if !strings.Contains(body, "Here is your card.") {
		t.Fatal("body text missing from html body")
	}
	if !strings.Contains(body, "A Life Insurance Company Limited") {
		t.Fatal("contact block missing from html body")
	}
}

func TestPlainBodyFallback(t *testing.T) {
	if got := plainBody(""); got != plainFallback {
		t.Fatalf("plainBody(\"\") = %q", got)
	}
	if got := plainBody("hi"); got != "hi" {
		t.Fatalf("plainBody(hi) = %q", got)
	}
}

func TestAttachSkipsReservedAndMissingFiles(t *testing.T) {
	dir := t.TempDir()
	card := filepath.Join(dir, "jane_ABC123.png")
	if err := os.WriteFile(card, []byte("png"), 0o644); err != nil {
		t.Fatalf("write card: %v", err)
	}
	reserved := filepath.Join(dir, "EmailBody.jpg")
	if err := os.WriteFile(reserved, []byte("jpg"), 0o644); err != nil {
		t.Fatalf("write reserved: %v", err)
	}

	sink := &smtpSink{}
	msg := mail.NewMsg()

	sink.attach(msg, card)
	sink.attach(msg, reserved)
	sink.attach(msg, filepath.Join(dir, "missing.jpg"))

	if got := len(msg.GetAttachments()); got != 1 {
		t.Fatalf("attachments = %d, want only the card", got)
	}
}
