package ttf

import "fmt"

// Simple glyph flag bits.
const (
	flagOnCurve     = 0x01
	flagXShort      = 0x02
	flagYShort      = 0x04
	flagRepeat      = 0x08
	flagXSameOrPlus = 0x10
	flagYSameOrPlus = 0x20
)

// bbox is a per-glyph bounding box. ok is false for blank glyphs.
type bbox struct {
	xMin, yMin, xMax, yMax int16
	ok                     bool
}

// extents aggregates what the other tables need to know about the glyphs.
type extents struct {
	font        bbox
	perGlyph    []bbox
	maxPoints   uint16
	maxContours uint16
}

// encodeGlyf produces the glyf table, the matching long-format loca table,
// and the extents the head/hhea/maxp tables are derived from.
//
// Each glyph is a TrueType simple glyph: contour end indices, flag array
// with repeat compression, then delta-encoded x and y coordinates. Blank
// glyphs get a zero-length entry (loca[i] == loca[i+1]).
func encodeGlyf(glyphs []Glyph) (glyf, loca []byte, ext extents, err error) {
	gw := newWriter()
	lw := newWriter()
	ext.perGlyph = make([]bbox, len(glyphs))

	for i, g := range glyphs {
		lw.u32(uint32(gw.len()))
		if len(g.Contours) == 0 {
			continue
		}
		b, np, err := encodeSimpleGlyph(gw, g)
		if err != nil {
			return nil, nil, extents{}, fmt.Errorf("glyph %d: %w", i, err)
		}
		gw.align2()

		ext.perGlyph[i] = b
		if !ext.font.ok {
			ext.font = b
		} else {
			ext.font.xMin = min(ext.font.xMin, b.xMin)
			ext.font.yMin = min(ext.font.yMin, b.yMin)
			ext.font.xMax = max(ext.font.xMax, b.xMax)
			ext.font.yMax = max(ext.font.yMax, b.yMax)
		}
		ext.maxPoints = max(ext.maxPoints, np)
		ext.maxContours = max(ext.maxContours, uint16(len(g.Contours)))
	}
	lw.u32(uint32(gw.len()))

	return gw.buf, lw.buf, ext, nil
}

func encodeSimpleGlyph(w *writer, g Glyph) (bbox, uint16, error) {
	var pts []GlyphPoint
	var ends []uint16
	for _, c := range g.Contours {
		if len(c) == 0 {
			return bbox{}, 0, fmt.Errorf("empty contour")
		}
		pts = append(pts, c...)
		if len(pts) > 0xFFFF {
			return bbox{}, 0, fmt.Errorf("%d points exceed the point index space", len(pts))
		}
		ends = append(ends, uint16(len(pts)-1))
	}

	b := bbox{xMin: pts[0].X, yMin: pts[0].Y, xMax: pts[0].X, yMax: pts[0].Y, ok: true}
	for _, p := range pts[1:] {
		b.xMin = min(b.xMin, p.X)
		b.yMin = min(b.yMin, p.Y)
		b.xMax = max(b.xMax, p.X)
		b.yMax = max(b.yMax, p.Y)
	}

	w.i16(int16(len(g.Contours)))
	w.i16(b.xMin)
	w.i16(b.yMin)
	w.i16(b.xMax)
	w.i16(b.yMax)
	for _, e := range ends {
		w.u16(e)
	}
	w.u16(0) // no instructions

	// Build flags and delta-encoded coordinates together.
	flags := make([]uint8, len(pts))
	var xs, ys []byte
	prevX, prevY := int16(0), int16(0)
	for i, p := range pts {
		var f uint8
		if p.OnCurve {
			f |= flagOnCurve
		}
		dx := int(p.X) - int(prevX)
		dy := int(p.Y) - int(prevY)
		prevX, prevY = p.X, p.Y
		if dx < -32768 || dx > 32767 || dy < -32768 || dy > 32767 {
			return bbox{}, 0, fmt.Errorf("point %d: delta (%d, %d) not representable", i, dx, dy)
		}

		switch {
		case dx == 0:
			f |= flagXSameOrPlus
		case dx >= -255 && dx <= 255:
			f |= flagXShort
			if dx > 0 {
				f |= flagXSameOrPlus
			} else {
				dx = -dx
			}
			xs = append(xs, uint8(dx))
		default:
			xs = append(xs, byte(uint16(dx)>>8), byte(uint16(dx)))
		}

		switch {
		case dy == 0:
			f |= flagYSameOrPlus
		case dy >= -255 && dy <= 255:
			f |= flagYShort
			if dy > 0 {
				f |= flagYSameOrPlus
			} else {
				dy = -dy
			}
			ys = append(ys, uint8(dy))
		default:
			ys = append(ys, byte(uint16(dy)>>8), byte(uint16(dy)))
		}
		flags[i] = f
	}

	// Repeat-compress the flag array.
	for i := 0; i < len(flags); {
		j := i + 1
		for j < len(flags) && flags[j] == flags[i] && j-i <= 255 {
			j++
		}
		if run := j - i; run > 1 {
			w.u8(flags[i] | flagRepeat)
			w.u8(uint8(run - 1))
		} else {
			w.u8(flags[i])
		}
		i = j
	}

	w.bytes(xs)
	w.bytes(ys)
	return b, uint16(len(pts)), nil
}
