package identifier

import "strings"

// Class tags the formatting family a raw identifier belongs to. The class is
// computed once and dispatched on, rather than re-testing prefix conditions at
// every call site.
type Class int

const (
	// ClassDefault covers identifiers outside the long-form family.
	ClassDefault Class = iota
	// ClassScheme covers identifiers carrying the canonical scheme prefix.
	ClassScheme
	// ClassCarrier covers identifiers beginning with a known carrier code.
	ClassCarrier
)

const (
	// SchemePrefix is the 5-character canonical scheme prefix. Long-form
	// output always carries this prefix, regardless of the matched family.
	SchemePrefix = "AL001"
	// CarrierCode is the 3-letter carrier code recognized as long form.
	CarrierCode = "STE"
)

// String returns the class name for logs and CLI output.
func (c Class) String() string {
	switch c {
	case ClassScheme:
		return "scheme"
	case ClassCarrier:
		return "carrier"
	default:
		return "default"
	}
}

// LongForm reports whether the class normalizes to the slash-delimited form.
func (c Class) LongForm() bool {
	return c == ClassScheme || c == ClassCarrier
}

// Classify determines the formatting family for a raw identifier. The check
// runs against the cleaned identifier, so separators and punctuation in the
// raw value do not affect the outcome.
func Classify(raw string) Class {
	cleaned := Clean(raw)
	switch {
	case strings.HasPrefix(cleaned, SchemePrefix):
		return ClassScheme
	case strings.HasPrefix(cleaned, CarrierCode):
		return ClassCarrier
	default:
		return ClassDefault
	}
}

// Clean strips every character that is not an ASCII letter or digit, preserving
// case and order.
func Clean(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if isAlnum(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
