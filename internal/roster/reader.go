package roster

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
)

// ErrTooFewColumns indicates a workbook missing the Name/Card/Date minimum.
var ErrTooFewColumns = errors.New("workbook must have at least 3 columns")

// headerFold performs Unicode-correct case folding for header matching, so
// workbooks exported with unusual casing still map cleanly.
var headerFold = cases.Fold()

type columnMap struct {
	name  int
	card  int
	date  int
	tier  int
	email int
}

// ReadWorkbook loads membership rows from the first sheet of an XLSX workbook.
// The first row is treated as the header; recognized columns are Name, Card,
// Date, VIP, and Email, matched case-insensitively. Rows with no content are
// skipped. The 3-column minimum of the row source contract is enforced here.
func ReadWorkbook(path string) ([]Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 || len(rows[0]) < 3 {
		return nil, ErrTooFewColumns
	}

	columns := mapColumns(rows[0])
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := Record{
			Name:   cell(row, columns.name),
			CardID: cell(row, columns.card),
			Date:   cell(row, columns.date),
			Tier:   cell(row, columns.tier),
			Email:  cell(row, columns.email),
		}
		if rec == (Record{}) {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func mapColumns(header []string) columnMap {
	columns := columnMap{name: -1, card: -1, date: -1, tier: -1, email: -1}
	for i, h := range header {
		switch headerFold.String(strings.TrimSpace(h)) {
		case "name":
			columns.name = i
		case "card":
			columns.card = i
		case "date":
			columns.date = i
		case "vip":
			columns.tier = i
		case "email":
			columns.email = i
		}
	}
	// Positional fallback mirrors the original three-column contract: the
	// first three columns are Name, Card, Date even without matching headers.
	if columns.name < 0 {
		columns.name = 0
	}
	if columns.card < 0 {
		columns.card = 1
	}
	if columns.date < 0 {
		columns.date = 2
	}
	return columns
}

func cell(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}
