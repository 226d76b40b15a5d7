package roster

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// sampleRows seeds the downloadable template workbook.
var sampleRows = [][]any{
	{"Name", "Card", "Date", "VIP", "Email"},
	{"John Doe", "STE 12345 690 7890", "2024-12-31", "Yes", "john@example.com"},
	{"Jane Smith", "CII 98765 432 1098", "2025-01-15", "No", "jane@example.com"},
}

// CreateSample writes the sample membership workbook to path.
func CreateSample(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range sampleRows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("sample cell ref: %w", err)
		}
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			return fmt.Errorf("write sample row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save sample workbook: %w", err)
	}
	return nil
}
