package svg2font

import (
	"fmt"

	"golang.org/x/image/font/sfnt"

	"github.com/cipherchabon/svg2font/internal/ttf"
)

// Font assembly: combine the built glyphs and the codepoint map into one
// internally consistent table set and serialize it.
//
// Glyph index assignment mirrors codepoint order (.notdef first, then icons
// sorted by name), so index i+1 always carries codepoint U+E000+i. Metrics
// and the character map reference glyphs by integer index only.

// defaultAscent and defaultDescent are used when every glyph is blank and
// no extent can be measured.
const (
	defaultAscent  = 800
	defaultDescent = -200
)

// AssembleFont builds the TrueType table set for the given glyphs and
// serializes it. glyphs must hold one entry per allocated name; lookup is
// by glyph name.
func AssembleFont(glyphs map[string]*Glyph, cm *CodepointMap, familyName string) ([]byte, error) {
	names := cm.Names()
	if len(glyphs) != len(names) {
		return nil, fmt.Errorf("%w: %d glyphs for %d allocated names", ErrInternal, len(glyphs), len(names))
	}

	font := &ttf.Font{
		FamilyName: familyName,
		UnitsPerEm: UnitsPerEm,
		Glyphs:     make([]ttf.Glyph, 0, len(names)+1),
		HMetrics:   make([]ttf.Metrics, 0, len(names)+1),
		CharMap:    make(map[rune]uint16, len(names)),
	}

	// .notdef: blank glyph, full-em advance.
	font.Glyphs = append(font.Glyphs, ttf.Glyph{})
	font.HMetrics = append(font.HMetrics, ttf.Metrics{Advance: UnitsPerEm})

	ascent, descent := int16(0), int16(0)
	measured := false

	for i, name := range names {
		g, ok := glyphs[name]
		if !ok {
			return nil, fmt.Errorf("%w: no glyph built for icon %q", ErrInternal, name)
		}
		r, ok := cm.Codepoint(name)
		if !ok || r != PUAStart+rune(i) {
			return nil, fmt.Errorf("%w: codepoint map out of order at %q", ErrInternal, name)
		}

		tg := ttf.Glyph{Contours: make([][]ttf.GlyphPoint, len(g.Contours))}
		for ci, c := range g.Contours {
			pts := make([]ttf.GlyphPoint, len(c))
			for pi, p := range c {
				pts[pi] = ttf.GlyphPoint{X: p.X, Y: p.Y, OnCurve: p.OnCurve}
			}
			tg.Contours[ci] = pts
		}

		lsb := int16(0)
		if xMin, yMin, _, yMax, nonEmpty := g.Bounds(); nonEmpty {
			lsb = xMin
			if !measured {
				ascent, descent = yMax, yMin
				measured = true
			} else {
				ascent = max(ascent, yMax)
				descent = min(descent, yMin)
			}
		}

		gid := uint16(len(font.Glyphs))
		font.Glyphs = append(font.Glyphs, tg)
		font.HMetrics = append(font.HMetrics, ttf.Metrics{Advance: g.Advance, LeftSideBearing: lsb})
		font.CharMap[r] = gid

		Logger().Debug("assembled glyph",
			"icon", name, "codepoint", fmt.Sprintf("U+%04X", r),
			"index", gid, "points", g.PointCount())
	}

	if !measured {
		ascent, descent = defaultAscent, defaultDescent
	} else {
		// Breathing room above and below the measured extents.
		const vMargin = 20
		ascent += vMargin
		if descent > 0 {
			descent = 0
		} else {
			descent -= vMargin
		}
	}
	font.Ascent = ascent
	font.Descent = descent

	data, err := font.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	// Sanity-check the output with an independent parser before handing
	// it to the caller.
	if _, err := sfnt.Parse(data); err != nil {
		return nil, fmt.Errorf("%w: serialized font does not parse: %v", ErrSerialization, err)
	}
	return data, nil
}
