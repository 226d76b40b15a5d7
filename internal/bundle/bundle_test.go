package bundle_test

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"cardpress/internal/bundle"
)

func TestPackRoundTripsArtifacts(t *testing.T) {
	dir := t.TempDir()
	artifacts := map[string][]byte{
		"John_Doe_STE123.png":  []byte("first card"),
		"Jane_Smith_ABC12.png": []byte("second card"),
	}
	for name, content := range artifacts {
		if err := os.WriteFile(filepath.Join(dir, name), content, 0o644); err != nil {
			t.Fatalf("write artifact: %v", err)
		}
	}
	// Non-PNG files never enter the bundle.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644); err != nil {
		t.Fatalf("write extra file: %v", err)
	}

	zipPath := filepath.Join(t.TempDir(), "cards.zip")
	if err := bundle.Pack(dir, zipPath); err != nil {
		t.Fatalf("Pack: %v", err)
	}

	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer zr.Close()

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)

		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open entry %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read entry %s: %v", f.Name, err)
		}
		if !bytes.Equal(content, artifacts[f.Name]) {
			t.Fatalf("entry %s content mismatch", f.Name)
		}
	}

	sort.Strings(names)
	want := []string{"Jane_Smith_ABC12.png", "John_Doe_STE123.png"}
	if len(names) != len(want) {
		t.Fatalf("archive names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("archive names = %v, want %v", names, want)
		}
	}
}

func TestPackUppercaseExtensionIncluded(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "CARD.PNG"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}

	zipPath := filepath.Join(t.TempDir(), "cards.zip")
	if err := bundle.Pack(dir, zipPath); err != nil {
		t.Fatalf("Pack: %v", err)
	}

	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer zr.Close()
	if len(zr.File) != 1 || zr.File[0].Name != "CARD.PNG" {
		t.Fatalf("unexpected entries: %v", zr.File)
	}
}

func TestPackEmptyDirectoryYieldsEmptyArchive(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "cards.zip")
	if err := bundle.Pack(t.TempDir(), zipPath); err != nil {
		t.Fatalf("Pack: %v", err)
	}
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer zr.Close()
	if len(zr.File) != 0 {
		t.Fatalf("expected empty archive, got %d entries", len(zr.File))
	}
}
