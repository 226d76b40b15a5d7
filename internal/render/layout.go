package render

import "image/color"

// Point is a fixed text anchor on the card canvas, measured from the top-left
// corner of the template.
type Point struct {
	X float64
	Y float64
}

// Layout carries the card geometry: anchor points, font sizes, ink color, and
// filename limits. It is immutable configuration handed to the renderer at
// construction; nothing mutates it afterwards.
type Layout struct {
	NumberPos Point
	LabelPos  Point
	NamePos   Point

	NumberSize float64
	LabelSize  float64
	DateSize   float64
	NameSize   float64

	// LabelGap is the vertical gap between the VALID label's measured
	// bounding box and the UNTIL line below it.
	LabelGap float64

	Ink color.Color

	// MaxFilenameField caps each sanitized filename component.
	MaxFilenameField int
}

const leftMargin = 60

// DefaultLayout returns the card geometry used by the stock templates.
func DefaultLayout() Layout {
	return Layout{
		NumberPos:        Point{X: leftMargin, Y: 200},
		LabelPos:         Point{X: leftMargin, Y: 280},
		NamePos:          Point{X: leftMargin, Y: 390},
		NumberSize:       36,
		LabelSize:        18,
		DateSize:         22,
		NameSize:         25,
		LabelGap:         5,
		Ink:              color.White,
		MaxFilenameField: 100,
	}
}
