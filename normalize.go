package svg2font

import (
	"fmt"
	"math"
)

// NormalizedGlyph holds an icon's contours mapped to font design units,
// Y-up, centered in the em square, plus the derived advance width.
// Segments are still lines and cubics; degree reduction comes next.
type NormalizedGlyph struct {
	Name     string
	Contours []Contour
	Advance  int
}

// Normalize maps an icon's source-space contours onto the font design grid.
//
// The scale factor is uniform: s = (UnitsPerEm - 2*margin) / max(w, h), so
// no distortion is introduced and any residual space on the shorter axis is
// absorbed by centering. Source Y-down coordinates are flipped to font Y-up,
// and the view-box is centered vertically in the em square. Horizontally the
// glyph starts at the side bearing; its advance is the scaled view-box width
// plus a bearing on each side.
//
// A view-box with zero or negative extent fails with ErrInvalidGeometry.
func Normalize(icon *Icon, cfg config) (*NormalizedGlyph, error) {
	vb := icon.ViewBox
	if vb.Width <= 0 || vb.Height <= 0 {
		return nil, fmt.Errorf("%w: icon %q: view-box %gx%g", ErrInvalidGeometry, icon.Name, vb.Width, vb.Height)
	}

	target := float64(UnitsPerEm) - 2*cfg.margin
	if target <= 0 {
		return nil, fmt.Errorf("%w: margin %g leaves no room in the em square", ErrInvalidGeometry, cfg.margin)
	}

	scale := math.Min(target/vb.Width, target/vb.Height)
	offX := float64(cfg.sideBearing)
	offY := (float64(UnitsPerEm) - vb.Height*scale) / 2

	toDesign := func(p Point) Point {
		return Point{
			X: (p.X-vb.MinX)*scale + offX,
			// Flip: source Y grows downward, design Y grows upward.
			Y: (vb.MinY+vb.Height-p.Y)*scale + offY,
		}
	}

	contours := make([]Contour, len(icon.Contours))
	for i, c := range icon.Contours {
		contours[i] = c.Map(toDesign)
	}

	return &NormalizedGlyph{
		Name:     icon.Name,
		Contours: contours,
		Advance:  int(math.Round(vb.Width*scale)) + 2*cfg.sideBearing,
	}, nil
}
