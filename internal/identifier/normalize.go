package identifier

import (
	"fmt"
	"strings"
)

const (
	categoryWidth = 3
	numberWidth   = 7
	suffixWidth   = 4
	shortWidth    = 11
)

// unknownCategory fills the category field when a scheme identifier is too
// short to carry one.
const unknownCategory = "XXX"

// Normalize maps a raw identifier to its canonical display string. The result
// always matches one of two fixed shapes:
//
//	AL001/CCC-NNNNNNN/SSSS   (scheme and carrier identifiers)
//	CCC-NNNN NNNN NNN        (everything else)
//
// Missing digits are zero-padded, surplus digits are truncated, and an empty
// input falls through to the default family as XXX-0000 0000 000.
func Normalize(raw string) string {
	cleaned := Clean(raw)

	switch Classify(raw) {
	case ClassScheme:
		category := unknownCategory
		if len(cleaned) >= len(SchemePrefix)+categoryWidth {
			category = cleaned[len(SchemePrefix) : len(SchemePrefix)+categoryWidth]
		}
		return longForm(category, digitsOf(cleaned[min(len(cleaned), len(SchemePrefix)+categoryWidth):]))
	case ClassCarrier:
		return longForm(cleaned[:categoryWidth], digitsOf(cleaned[categoryWidth:]))
	default:
		letters := padRight(cleaned, categoryWidth, 'X')[:categoryWidth]
		digits := padRight(digitsOf(cleaned), shortWidth, '0')[:shortWidth]
		return fmt.Sprintf("%s-%s %s %s", letters, digits[0:4], digits[4:8], digits[8:11])
	}
}

func longForm(category, digits string) string {
	padded := padRight(digits, numberWidth+suffixWidth, '0')
	numbers := padded[:numberWidth]
	suffix := padded[numberWidth : numberWidth+suffixWidth]
	return fmt.Sprintf("%s/%s-%s/%s", SchemePrefix, category, numbers, suffix)
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func padRight(s string, width int, fill byte) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(string(fill), width-len(s))
}
