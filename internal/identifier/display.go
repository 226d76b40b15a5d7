package identifier

import "regexp"

// shortPattern matches identifiers of exactly three letters immediately
// followed by digits, with nothing else. Matching runs against the original
// identifier, not the cleaned one.
var shortPattern = regexp.MustCompile(`^([A-Za-z]{3})([0-9]+)$`)

// DisplayText resolves the text rendered on a card for an identifier.
//
// Long-form identifiers use their canonical form verbatim. Identifiers shaped
// like "ABC123" are split into "ABC 123" using the raw captured groups, with
// no padding or truncation. Anything else passes through unchanged.
func DisplayText(raw string) string {
	if Classify(raw).LongForm() {
		return Normalize(raw)
	}
	if m := shortPattern.FindStringSubmatch(raw); m != nil {
		return m[1] + " " + m[2]
	}
	return raw
}
