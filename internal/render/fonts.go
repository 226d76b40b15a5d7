package render

import (
	"log/slog"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// fontSet holds the four faces used on a card, one per field.
type fontSet struct {
	number font.Face
	label  font.Face
	date   font.Face
	name   font.Face
}

// loadFonts loads the card font at each configured point size. A face that
// fails to load degrades to the builtin bitmap face instead of aborting;
// the degradation is logged once per size.
func loadFonts(path string, layout Layout, logger *slog.Logger) fontSet {
	return fontSet{
		number: loadFace(path, layout.NumberSize, logger),
		label:  loadFace(path, layout.LabelSize, logger),
		date:   loadFace(path, layout.DateSize, logger),
		name:   loadFace(path, layout.NameSize, logger),
	}
}

func loadFace(path string, points float64, logger *slog.Logger) font.Face {
	face, err := gg.LoadFontFace(path, points)
	if err != nil {
		if logger != nil {
			logger.Warn("card font unavailable, using fallback face",
				"font", path, "size", points, "error", err)
		}
		return basicfont.Face7x13
	}
	return face
}
