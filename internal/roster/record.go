package roster

import (
	"strings"
	"time"
)

// unknownField substitutes for absent names and card identifiers.
const unknownField = "Unknown"

// dateLayouts lists the calendar formats accepted for the Date column, tried
// in order. Excelize returns datetime cells as formatted strings, so the
// datetime layouts cover styled cells.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01-02-06",
	"1/2/06 15:04",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
	"Jan 2, 2006",
	"2 Jan 2006",
	"02.01.2006",
	time.RFC3339,
}

// Record is one membership row. Fields hold the raw cell values; defaulting
// and interpretation happen through Resolved, VIP, and ValidUntil so that a
// record read from any source behaves identically.
type Record struct {
	Name   string
	CardID string
	Date   string
	Tier   string
	Email  string
}

// Resolved returns a copy with the documented defaults applied: blank names
// and card identifiers become "Unknown", surrounding whitespace on the card
// identifier is dropped.
func (r Record) Resolved() Record {
	out := r
	if strings.TrimSpace(out.Name) == "" {
		out.Name = unknownField
	}
	out.CardID = strings.TrimSpace(out.CardID)
	if out.CardID == "" {
		out.CardID = unknownField
	}
	out.Email = strings.TrimSpace(out.Email)
	return out
}

// VIP reports whether the tier cell marks the row as VIP. The comparison is
// case-insensitive against "yes"; every other value is regular tier.
func (r Record) VIP() bool {
	return strings.EqualFold(strings.TrimSpace(r.Tier), "yes")
}

// ValidUntil returns the date text rendered on the card. Parseable dates are
// reformatted as YYYY-MM-DD; unparseable values pass through raw; a missing
// date yields an empty string.
func (r Record) ValidUntil() string {
	value := strings.TrimSpace(r.Date)
	if value == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.Format("2006-01-02")
		}
	}
	return value
}
