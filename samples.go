package svg2font

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Sample rendering: rasterize each mapped glyph of a finished font to a
// PNG, one file per icon, for quick visual inspection without a browser.
// Like the preview this consumes only final artifacts: the font bytes are
// parsed back with freetype rather than reusing pipeline internals.

// RenderSamples writes <name>.png for every icon in the map into dir,
// rendered at the given pixel size. dir is created if needed.
func RenderSamples(fontBytes []byte, cm *CodepointMap, dir string, size int) error {
	if size <= 0 {
		size = 64
	}
	f, err := truetype.Parse(fontBytes)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	face := truetype.NewFace(f, &truetype.Options{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()
	descent := face.Metrics().Descent

	for _, name := range cm.Names() {
		r, _ := cm.Codepoint(name)
		bounds, _, ok := face.GlyphBounds(r)
		if !ok {
			return fmt.Errorf("%w: glyph for %q (U+%04X) missing from rendered font", ErrInternal, name, r)
		}
		width := bounds.Max.X.Ceil()
		if width <= 0 {
			width = size
		}

		img := image.NewRGBA(image.Rect(0, 0, width, size))
		d := &font.Drawer{
			Face: face,
			Dst:  img,
			Src:  image.Black,
		}
		d.Dot.Y = fixed.I(size) - descent
		d.DrawString(string(r))

		path := filepath.Join(dir, name+".png")
		out, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := png.Encode(out, img); err != nil {
			out.Close()
			return err
		}
		if err := out.Close(); err != nil {
			return err
		}
		Logger().Debug("rendered sample", "icon", name, "path", path)
	}
	return nil
}
