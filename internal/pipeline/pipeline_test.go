package pipeline_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"cardpress/internal/pipeline"
	"cardpress/internal/render"
	"cardpress/internal/roster"
	"cardpress/internal/testsupport"
)

type stubRenderer struct {
	failOn map[string]bool
	calls  []string
}

func (s *stubRenderer) Render(rec roster.Record, destDir string) (string, error) {
	s.calls = append(s.calls, rec.CardID)
	if s.failOn[rec.CardID] {
		return "", errors.New("template unreadable")
	}
	path := filepath.Join(destDir, rec.CardID+".png")
	if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

type stubSink struct {
	failOn map[string]bool
	sent   []string
}

func (s *stubSink) Send(_ context.Context, to, _, _, _ string) error {
	if s.failOn[to] {
		return errors.New("mailbox unavailable")
	}
	s.sent = append(s.sent, to)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunRendersEveryRowInOrder(t *testing.T) {
	renderer := &stubRenderer{}
	sink := &stubSink{}
	runner := pipeline.New(renderer, sink, discardLogger())

	rows := []roster.Record{
		{Name: "A", CardID: "AAA1"},
		{Name: "B", CardID: "BBB2", Email: "b@example.com"},
		{Name: "C", CardID: "CCC3"},
	}
	dest := t.TempDir()
	summary, err := runner.Run(context.Background(), rows, dest)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Rendered != 3 || summary.Failed != 0 {
		t.Fatalf("summary = %+v, want 3 rendered", summary)
	}
	want := []string{"AAA1", "BBB2", "CCC3"}
	for i, card := range want {
		if renderer.calls[i] != card {
			t.Fatalf("render order = %v, want %v", renderer.calls, want)
		}
	}
	if len(sink.sent) != 1 || sink.sent[0] != "b@example.com" {
		t.Fatalf("sink.sent = %v", sink.sent)
	}
	if summary.BatchID == "" {
		t.Fatal("batch id missing")
	}
}

func TestRunIsolatesRenderFailures(t *testing.T) {
	renderer := &stubRenderer{failOn: map[string]bool{"BAD": true}}
	runner := pipeline.New(renderer, &stubSink{}, discardLogger())

	rows := []roster.Record{
		{Name: "A", CardID: "AAA1"},
		{Name: "B", CardID: "BAD"},
		{Name: "C", CardID: "CCC3"},
	}
	dest := t.TempDir()
	summary, err := runner.Run(context.Background(), rows, dest)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Rendered != 2 || summary.Failed != 1 {
		t.Fatalf("summary = %+v, want 2 rendered 1 failed", summary)
	}
	for _, name := range []string{"AAA1.png", "CCC3.png"} {
		if _, err := os.Stat(filepath.Join(dest, name)); err != nil {
			t.Fatalf("artifact %s missing after isolated failure: %v", name, err)
		}
	}
}

func TestRunIsolatesNotifyFailures(t *testing.T) {
	renderer := &stubRenderer{}
	sink := &stubSink{failOn: map[string]bool{"broken@example.com": true}}
	runner := pipeline.New(renderer, sink, discardLogger())

	rows := []roster.Record{
		{Name: "A", CardID: "AAA1", Email: "broken@example.com"},
		{Name: "B", CardID: "BBB2", Email: "ok@example.com"},
	}
	dest := t.TempDir()
	summary, err := runner.Run(context.Background(), rows, dest)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Rendered != 2 {
		t.Fatalf("rendered = %d, want both cards despite notify failure", summary.Rendered)
	}
	if summary.Notified != 1 || summary.NotifyFailed != 1 {
		t.Fatalf("summary = %+v", summary)
	}
	if _, err := os.Stat(filepath.Join(dest, "AAA1.png")); err != nil {
		t.Fatalf("failed-notify row lost its artifact: %v", err)
	}
}

func TestRunFailsOnUnusableDestination(t *testing.T) {
	runner := pipeline.New(&stubRenderer{}, &stubSink{}, discardLogger())

	blocking := filepath.Join(t.TempDir(), "occupied")
	if err := os.WriteFile(blocking, []byte("file, not dir"), 0o644); err != nil {
		t.Fatalf("write blocking file: %v", err)
	}
	dest := filepath.Join(blocking, "cards")
	if _, err := runner.Run(context.Background(), nil, dest); err == nil {
		t.Fatal("expected batch-level error for unusable destination")
	}
}

func TestRunWithRealRendererDefaultsUnparseableDate(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteCardTemplates(t, cfg.Paths.AssetsDir)

	renderer := render.New(cfg.Paths.AssetsDir, cfg.Render.FontPath, render.DefaultLayout(), discardLogger())
	runner := pipeline.New(renderer, &stubSink{}, discardLogger())

	rows := []roster.Record{
		{Name: "Before", CardID: "AAA1", Date: "2024-12-31"},
		{Name: "Odd", CardID: "BBB2", Date: "sometime soon"},
		{Name: "After", CardID: "CCC3", Date: "2025-01-15"},
	}
	dest := filepath.Join(cfg.Paths.OutputDir, "batch")
	summary, err := runner.Run(context.Background(), rows, dest)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Rendered != 3 || summary.Failed != 0 {
		t.Fatalf("summary = %+v, want all rows rendered", summary)
	}
}
