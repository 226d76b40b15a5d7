package render

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"cardpress/internal/identifier"
	"cardpress/internal/roster"
)

const (
	// RegularTemplate is the stock card template and the fixed fallback when
	// a tier-specific template is absent.
	RegularTemplate = "Card_Regular.jpg"
	// VIPTemplate is used for rows whose tier resolves to VIP.
	VIPTemplate = "Card_VIP.jpg"

	validLabel  = "VALID"
	untilPrefix = "UNTIL - "
)

// Renderer composites card artifacts from resolved rows. Construct once per
// batch scope with New; the renderer is safe to reuse across batches as long
// as the assets directory stays put.
type Renderer struct {
	assetsDir string
	layout    Layout
	fonts     fontSet
	logger    *slog.Logger
}

// New builds a renderer over the given assets directory. fontPath is loaded
// at the four layout sizes; a missing font degrades to a builtin face.
func New(assetsDir, fontPath string, layout Layout, logger *slog.Logger) *Renderer {
	return &Renderer{
		assetsDir: assetsDir,
		layout:    layout,
		fonts:     loadFonts(fontPath, layout, logger),
		logger:    logger,
	}
}

// Render draws one card for the resolved record and writes it as a PNG under
// destDir. It returns the artifact path.
func (r *Renderer) Render(rec roster.Record, destDir string) (string, error) {
	templatePath := r.templatePath(rec.VIP())
	im, err := gg.LoadImage(templatePath)
	if err != nil {
		return "", fmt.Errorf("load template %s: %w", filepath.Base(templatePath), err)
	}

	dc := gg.NewContextForImage(im)
	dc.SetColor(r.layout.Ink)

	display := identifier.DisplayText(rec.CardID)
	drawTopLeft(dc, r.fonts.number, display, r.layout.NumberPos)

	drawTopLeft(dc, r.fonts.label, validLabel, r.layout.LabelPos)
	labelHeight := faceHeight(dc, r.fonts.label)

	untilPos := Point{
		X: r.layout.LabelPos.X,
		Y: r.layout.LabelPos.Y + labelHeight + r.layout.LabelGap,
	}
	drawTopLeft(dc, r.fonts.date, untilPrefix+rec.ValidUntil(), untilPos)

	drawTopLeft(dc, r.fonts.name, rec.Name, r.layout.NamePos)

	path := filepath.Join(destDir, r.Filename(rec))
	if err := dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("save card %s: %w", filepath.Base(path), err)
	}
	return path, nil
}

// Filename derives the deterministic artifact name for a record:
// {sanitized-name}_{sanitized-cardid}.png.
func (r *Renderer) Filename(rec roster.Record) string {
	max := r.layout.MaxFilenameField
	return fmt.Sprintf("%s_%s.png",
		SanitizeFilename(rec.Name, max),
		SanitizeFilename(rec.CardID, max))
}

// templatePath selects the tier template, falling back to the regular
// template when the tier-specific file is absent.
func (r *Renderer) templatePath(vip bool) string {
	name := RegularTemplate
	if vip {
		name = VIPTemplate
	}
	path := filepath.Join(r.assetsDir, name)
	if _, err := os.Stat(path); err != nil {
		return filepath.Join(r.assetsDir, RegularTemplate)
	}
	return path
}

// drawTopLeft draws text anchored at the top-left corner of its bounding box,
// matching the layout's top-left anchor semantics.
func drawTopLeft(dc *gg.Context, face font.Face, text string, pos Point) {
	dc.SetFontFace(face)
	dc.DrawStringAnchored(text, pos.X, pos.Y, 0, 1)
}

// faceHeight measures the rendered height of the label face, used to offset
// the UNTIL line below the VALID label.
func faceHeight(dc *gg.Context, face font.Face) float64 {
	dc.SetFontFace(face)
	_, h := dc.MeasureString(validLabel)
	return h
}
