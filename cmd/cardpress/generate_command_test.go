package main

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateCommandRendersAndBundles(t *testing.T) {
	_, configPath := newCLIConfig(t)

	workbook := writeWorkbook(t, [][]any{
		{"Name", "Card", "Date"},
		{"John Doe", "STE123", "2025-01-01"},
		{"Jane Smith", "ABC12345", "2025-06-30"},
	})

	dest := filepath.Join(t.TempDir(), "cards")
	zipPath := filepath.Join(t.TempDir(), "cards.zip")
	out, _, err := runCLI(t, []string{"generate", workbook, "-o", dest, "--zip", zipPath}, configPath)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	requireContains(t, out, "Cards written to "+dest)
	requireContains(t, out, "Bundle written to "+zipPath)

	for _, name := range []string{"John_Doe_STE123.png", "Jane_Smith_ABC12345.png"} {
		if _, err := os.Stat(filepath.Join(dest, name)); err != nil {
			t.Fatalf("artifact %s missing: %v", name, err)
		}
	}

	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatalf("open bundle: %v", err)
	}
	defer zr.Close()
	if len(zr.File) != 2 {
		t.Fatalf("bundle has %d entries, want 2", len(zr.File))
	}
}

func TestGenerateCommandEmailRequiresSMTP(t *testing.T) {
	_, configPath := newCLIConfig(t)

	workbook := writeWorkbook(t, [][]any{
		{"Name", "Card", "Date"},
		{"John Doe", "STE123", "2025-01-01"},
	})

	if _, _, err := runCLI(t, []string{"generate", workbook, "--email"}, configPath); err == nil {
		t.Fatal("expected --email to fail without SMTP configuration")
	}
}

func TestGenerateCommandRejectsMissingWorkbook(t *testing.T) {
	_, configPath := newCLIConfig(t)

	missing := filepath.Join(t.TempDir(), "nope.xlsx")
	if _, _, err := runCLI(t, []string{"generate", missing}, configPath); err == nil {
		t.Fatal("expected error for missing workbook")
	}
}
