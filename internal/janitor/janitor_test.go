package janitor_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cardpress/internal/janitor"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSweepClearsEntriesKeepsDirectories(t *testing.T) {
	uploads := t.TempDir()
	output := t.TempDir()

	if err := os.WriteFile(filepath.Join(uploads, "roster.xlsx"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write upload: %v", err)
	}
	batch := filepath.Join(output, "batch-1")
	if err := os.MkdirAll(batch, 0o755); err != nil {
		t.Fatalf("mkdir batch: %v", err)
	}
	if err := os.WriteFile(filepath.Join(batch, "card.png"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write card: %v", err)
	}

	j := janitor.New([]string{uploads, output}, time.Hour, discardLogger())
	j.Sweep()

	for _, dir := range []string{uploads, output} {
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("swept directory vanished: %v", err)
		}
		if len(entries) != 0 {
			t.Fatalf("directory %s not emptied: %d entries left", dir, len(entries))
		}
	}
}

func TestSweepToleratesMissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "never-created")
	j := janitor.New([]string{missing}, time.Hour, discardLogger())
	j.Sweep()
	if _, err := os.Stat(missing); !os.IsNotExist(err) {
		t.Fatalf("sweep should not create directories: %v", err)
	}
}
