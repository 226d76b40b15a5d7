package roster_test

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"cardpress/internal/roster"
)

func TestRecordResolvedDefaults(t *testing.T) {
	rec := roster.Record{}.Resolved()
	if rec.Name != "Unknown" {
		t.Fatalf("default name = %q, want Unknown", rec.Name)
	}
	if rec.CardID != "Unknown" {
		t.Fatalf("default card id = %q, want Unknown", rec.CardID)
	}

	rec = roster.Record{Name: "Jane", CardID: "  ABC123  "}.Resolved()
	if rec.CardID != "ABC123" {
		t.Fatalf("card id = %q, want trimmed ABC123", rec.CardID)
	}
}

func TestRecordVIP(t *testing.T) {
	tests := []struct {
		tier string
		want bool
	}{
		{"yes", true},
		{"YES", true},
		{" Yes ", true},
		{"no", false},
		{"", false},
		{"vip", false},
	}
	for _, tc := range tests {
		rec := roster.Record{Tier: tc.tier}
		if rec.VIP() != tc.want {
			t.Fatalf("VIP(%q) = %v, want %v", tc.tier, rec.VIP(), tc.want)
		}
	}
}

func TestRecordValidUntil(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{"iso date passes through reformatted", "2024-12-31", "2024-12-31"},
		{"slash date reformatted", "01/15/2025", "2025-01-15"},
		{"datetime cell", "2024-12-31 00:00:00", "2024-12-31"},
		{"unparseable stays raw", "end of year", "end of year"},
		{"missing date is empty", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := roster.Record{Date: tc.date}
			if got := rec.ValidUntil(); got != tc.want {
				t.Fatalf("ValidUntil(%q) = %q, want %q", tc.date, got, tc.want)
			}
		})
	}
}

func TestReadWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "members.xlsx")
	writeWorkbook(t, path, [][]any{
		{"Name", "Card", "Date", "VIP", "Email"},
		{"John Doe", "STE 12345 690 7890", "2024-12-31", "Yes", "john@example.com"},
		{"", "", "", "", ""},
		{"Jane Smith", "ABC123", "not a date", "no", ""},
	})

	records, err := roster.ReadWorkbook(path)
	if err != nil {
		t.Fatalf("ReadWorkbook: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2 (blank row skipped)", len(records))
	}
	if records[0].Name != "John Doe" || !records[0].VIP() || records[0].Email != "john@example.com" {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[1].CardID != "ABC123" || records[1].VIP() {
		t.Fatalf("unexpected second record: %+v", records[1])
	}
}

func TestReadWorkbookHeaderCaseFolding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "members.xlsx")
	writeWorkbook(t, path, [][]any{
		{"NAME", "CARD", "DATE"},
		{"Jo", "CII 98765", "2025-01-15"},
	})

	records, err := roster.ReadWorkbook(path)
	if err != nil {
		t.Fatalf("ReadWorkbook: %v", err)
	}
	if len(records) != 1 || records[0].CardID != "CII 98765" {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestReadWorkbookTooFewColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "narrow.xlsx")
	writeWorkbook(t, path, [][]any{
		{"Name", "Card"},
		{"Jo", "ABC123"},
	})

	if _, err := roster.ReadWorkbook(path); err == nil {
		t.Fatal("expected error for two-column workbook")
	}
}

func TestCreateSampleRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.xlsx")
	if err := roster.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	records, err := roster.ReadWorkbook(path)
	if err != nil {
		t.Fatalf("ReadWorkbook: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("sample has %d records, want 2", len(records))
	}
	if records[0].Name != "John Doe" || !records[0].VIP() {
		t.Fatalf("unexpected sample record: %+v", records[0])
	}
}

func writeWorkbook(t *testing.T, path string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		ref, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell ref: %v", err)
		}
		if err := f.SetSheetRow(sheet, ref, &row); err != nil {
			t.Fatalf("write row: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
}
