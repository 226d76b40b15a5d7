package testsupport

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
)

// WriteTemplate writes a solid-color JPEG card template of the given size.
func WriteTemplate(t testing.TB, path string, width, height int) {
	t.Helper()

	im := image.NewRGBA(image.Rect(0, 0, width, height))
	fill := color.RGBA{R: 20, G: 60, B: 120, A: 255}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			im.Set(x, y, fill)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, im, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

// WriteCardTemplates writes the regular and VIP templates into assetsDir at
// the stock 640x440 card size.
func WriteCardTemplates(t testing.TB, assetsDir string) {
	t.Helper()
	WriteTemplate(t, filepath.Join(assetsDir, "Card_Regular.jpg"), 640, 440)
	WriteTemplate(t, filepath.Join(assetsDir, "Card_VIP.jpg"), 640, 440)
}
