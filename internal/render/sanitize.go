package render

import "strings"

// hostileReplacer drops path-hostile characters after spaces have been turned
// into underscores. Lettercase is preserved.
var hostileReplacer = strings.NewReplacer(
	" ", "_",
	"\\", "",
	"/", "",
	"*", "",
	"?", "",
	":", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
	"\n", "",
	"\r", "",
)

// SanitizeFilename makes a row field safe for use as a filename component:
// spaces become underscores, path-hostile characters are removed, and the
// result is truncated to maxLen runes.
func SanitizeFilename(value string, maxLen int) string {
	cleaned := hostileReplacer.Replace(value)
	if maxLen > 0 {
		runes := []rune(cleaned)
		if len(runes) > maxLen {
			cleaned = string(runes[:maxLen])
		}
	}
	return cleaned
}
