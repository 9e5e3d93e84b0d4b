package svg2font

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cipherchabon/svg2font/internal/svgicon"
)

// Outline extraction: flatten a parsed SVG document into closed contours of
// line and cubic segments in source coordinates. Quadratic commands are
// degree-elevated to cubics so the degree reducer deals with one curve
// degree only; subpaths left open by the source are closed with a line,
// matching SVG fill semantics.

// ParseIcon parses SVG bytes into an Icon. name is the stable identifier,
// source the originating path (used in error messages only).
func ParseIcon(data []byte, name, source string) (*Icon, error) {
	doc, err := svgicon.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: icon %q (%s): %v", ErrInvalidGeometry, name, source, err)
	}
	return &Icon{
		Name:   name,
		Source: source,
		ViewBox: ViewBox{
			MinX:   doc.ViewBox.MinX,
			MinY:   doc.ViewBox.MinY,
			Width:  doc.ViewBox.Width,
			Height: doc.ViewBox.Height,
		},
		Contours: extractContours(doc.Commands),
	}, nil
}

// LoadIcon reads and parses one SVG file, deriving the icon name from the
// file stem.
func LoadIcon(path string) (*Icon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ParseIcon(data, NameFromFilename(stem), path)
}

func extractContours(cmds []svgicon.Command) []Contour {
	var contours []Contour
	var cur Contour
	open := false

	pt := func(p svgicon.Pt) Point { return Point{X: p.X, Y: p.Y} }

	closeCurrent := func() {
		if !open {
			return
		}
		open = false
		if len(cur.Segments) == 0 {
			return
		}
		if !cur.Closed() {
			cur.Segments = append(cur.Segments, LineSeg{End: cur.Start})
		}
		contours = append(contours, cur)
	}

	for _, c := range cmds {
		switch c.Op {
		case svgicon.OpMove:
			closeCurrent()
			cur = Contour{Start: pt(c.End)}
			open = true
		case svgicon.OpLine:
			if !open {
				cur = Contour{Start: pt(c.End)}
				open = true
				continue
			}
			cur.Segments = append(cur.Segments, LineSeg{End: pt(c.End)})
		case svgicon.OpQuad:
			if !open {
				continue
			}
			// Elevate to a cubic; the representation is exact.
			var from Point
			if n := len(cur.Segments); n > 0 {
				from = cur.Segments[n-1].SegEnd()
			} else {
				from = cur.Start
			}
			cubic := QuadBez{P0: from, P1: pt(c.C1), P2: pt(c.End)}.Raise()
			cur.Segments = append(cur.Segments, CubicSeg{C1: cubic.P1, C2: cubic.P2, End: cubic.P3})
		case svgicon.OpCubic:
			if !open {
				continue
			}
			cur.Segments = append(cur.Segments, CubicSeg{C1: pt(c.C1), C2: pt(c.C2), End: pt(c.End)})
		case svgicon.OpClose:
			closeCurrent()
		}
	}
	closeCurrent()

	// Contours that cannot enclose area are rejected here rather than
	// surfacing later as degenerate glyph data.
	kept := contours[:0]
	for _, c := range contours {
		if len(c.Segments) >= 2 {
			kept = append(kept, c)
		}
	}
	return kept
}
