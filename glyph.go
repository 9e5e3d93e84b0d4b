package svg2font

import (
	"fmt"
	"math"
)

// Winding convention: in Y-up design space, outer contours are clockwise
// (negative shoelace area) and holes are counter-clockwise, matching
// TrueType's fill convention. The builder enforces this; when the input's
// polarity is ambiguous it resolves what it can by treating the
// largest-area contour as the outer shape (see orientContours).

// OutlinePoint is one point of a quadratic glyph outline on the integer
// design grid. Off-curve points are quadratic control points.
type OutlinePoint struct {
	X, Y    int16
	OnCurve bool
}

// Glyph is the final per-icon representation handed to the font assembler:
// integer-grid quadratic contours plus horizontal metrics. A glyph with no
// contours is valid and renders blank.
type Glyph struct {
	Name     string
	Advance  uint16
	Contours [][]OutlinePoint
}

// Bounds returns the bounding box over all points. ok is false for a blank
// glyph.
func (g *Glyph) Bounds() (xMin, yMin, xMax, yMax int16, ok bool) {
	for _, c := range g.Contours {
		for _, p := range c {
			if !ok {
				xMin, yMin, xMax, yMax = p.X, p.Y, p.X, p.Y
				ok = true
				continue
			}
			xMin = min(xMin, p.X)
			yMin = min(yMin, p.Y)
			xMax = max(xMax, p.X)
			yMax = max(yMax, p.Y)
		}
	}
	return
}

// PointCount returns the total number of outline points.
func (g *Glyph) PointCount() int {
	n := 0
	for _, c := range g.Contours {
		n += len(c)
	}
	return n
}

// BuildGlyph converts a normalized, degree-reduced glyph into its on/off
// curve point representation. Winding is made consistent, consecutive
// coincident points are removed, and a synthesized on-curve midpoint is
// inserted wherever two off-curve points would be adjacent.
func BuildGlyph(g *NormalizedGlyph) (*Glyph, error) {
	for _, c := range g.Contours {
		if s, ok := firstNonQuadratic(c); ok {
			return nil, fmt.Errorf("%w: glyph %q: unreduced segment %T", ErrInternal, g.Name, s)
		}
	}

	contours, err := orientContours(g.Name, g.Contours)
	if err != nil {
		return nil, err
	}

	if g.Advance < 0 || g.Advance > math.MaxUint16 {
		return nil, fmt.Errorf("%w: glyph %q: advance %d out of range", ErrInternal, g.Name, g.Advance)
	}
	out := &Glyph{Name: g.Name, Advance: uint16(g.Advance)}
	for _, c := range contours {
		pts, err := contourPoints(g.Name, c)
		if err != nil {
			return nil, err
		}
		// Fewer than 3 points cannot enclose area. Such contours are
		// invalid and rejected; rounding can collapse sub-unit slivers
		// down to this.
		if len(pts) > 0 && len(pts) < 3 {
			Logger().Debug("rejecting collapsed contour", "icon", g.Name, "points", len(pts))
			continue
		}
		if len(pts) >= 3 {
			out.Contours = append(out.Contours, pts)
		}
	}

	if out.PointCount() > math.MaxUint16 {
		return nil, fmt.Errorf("%w: glyph %q: %d outline points", ErrInvalidGeometry, g.Name, out.PointCount())
	}
	return out, nil
}

func firstNonQuadratic(c Contour) (Segment, bool) {
	for _, s := range c.Segments {
		if _, isCubic := s.(CubicSeg); isCubic {
			return s, true
		}
	}
	return nil, false
}

// orientContours enforces the winding convention. Contours with negligible
// area are dropped (they render nothing). The remaining contour with the
// largest absolute area is taken as the outer shape and forced clockwise;
// when the input has mixed polarity the relative polarity of the other
// contours is preserved, and when all contours share one sign the others
// are treated as holes. Two top-area contours of opposite polarity cannot
// be disambiguated and fail with ErrInconsistentWinding.
func orientContours(name string, contours []Contour) ([]Contour, error) {
	type wound struct {
		c    Contour
		area float64
	}
	kept := make([]wound, 0, len(contours))
	for _, c := range contours {
		if len(c.Segments) < 2 {
			continue
		}
		a := c.SignedArea()
		if math.Abs(a) < 1e-6 {
			Logger().Debug("dropping zero-area contour", "icon", name)
			continue
		}
		kept = append(kept, wound{c: c, area: a})
	}
	if len(kept) == 0 {
		return nil, nil
	}

	outer := 0
	for i, w := range kept {
		if math.Abs(w.area) > math.Abs(kept[outer].area) {
			outer = i
		}
	}
	for i, w := range kept {
		if i == outer {
			continue
		}
		const tieRatio = 1e-3
		tied := math.Abs(math.Abs(w.area)-math.Abs(kept[outer].area)) <= tieRatio*math.Abs(kept[outer].area)
		if tied && sign(w.area) != sign(kept[outer].area) {
			return nil, fmt.Errorf("%w: icon %q: two top-area contours with opposite polarity", ErrInconsistentWinding, name)
		}
	}

	sameSign := true
	for _, w := range kept {
		if sign(w.area) != sign(kept[outer].area) {
			sameSign = false
			break
		}
	}

	out := make([]Contour, len(kept))
	for i, w := range kept {
		cw := w.area < 0
		switch {
		case i == outer:
			// Outer shape must be clockwise.
			if !cw {
				w.c = w.c.Reverse()
			}
		case sameSign:
			// Careless single-direction input: everything inside the
			// outer shape is treated as a hole.
			if cw {
				w.c = w.c.Reverse()
			}
		default:
			// Mixed polarity input: keep each contour's polarity
			// relative to the outer shape, flipping only if the
			// outer itself had to flip.
			if kept[outer].area > 0 {
				w.c = w.c.Reverse()
			}
		}
		out[i] = w.c
	}
	return out, nil
}

func sign(f float64) int {
	if f < 0 {
		return -1
	}
	return 1
}

// contourPoints flattens one quadratic contour into rounded outline points:
// the start point and each segment end are on-curve, each quadratic control
// is off-curve. Consecutive coincident points collapse (an off-curve point
// coinciding with a neighboring on-curve point degenerates its quad into a
// line), the closing duplicate of the start point is dropped, and adjacent
// off-curve pairs get an explicit on-curve midpoint.
func contourPoints(name string, c Contour) ([]OutlinePoint, error) {
	raw := make([]OutlinePoint, 0, len(c.Segments)*2+1)

	push := func(p Point, on bool) error {
		x, y, err := roundCoord(name, p)
		if err != nil {
			return err
		}
		op := OutlinePoint{X: x, Y: y, OnCurve: on}
		if n := len(raw); n > 0 {
			last := raw[n-1]
			if last.X == op.X && last.Y == op.Y {
				// Keep the on-curve interpretation when flags differ.
				if op.OnCurve && !last.OnCurve {
					raw[n-1] = op
				}
				return nil
			}
		}
		raw = append(raw, op)
		return nil
	}

	if err := push(c.Start, true); err != nil {
		return nil, err
	}
	for _, seg := range c.Segments {
		switch s := seg.(type) {
		case LineSeg:
			if err := push(s.End, true); err != nil {
				return nil, err
			}
		case QuadSeg:
			if err := push(s.Ctrl, false); err != nil {
				return nil, err
			}
			if err := push(s.End, true); err != nil {
				return nil, err
			}
		}
	}

	// TrueType closes contours implicitly; drop the explicit closing point.
	if n := len(raw); n > 1 && raw[0].X == raw[n-1].X && raw[0].Y == raw[n-1].Y {
		raw = raw[:n-1]
	}

	return splitOffCurveRuns(raw), nil
}

// splitOffCurveRuns inserts an on-curve midpoint between every pair of
// adjacent off-curve points, including the wrap-around pair. The outline
// format requires on/off alternation with no two adjacent control points.
func splitOffCurveRuns(pts []OutlinePoint) []OutlinePoint {
	if len(pts) == 0 {
		return pts
	}
	out := make([]OutlinePoint, 0, len(pts)+2)
	for i, p := range pts {
		if i > 0 && !p.OnCurve && !out[len(out)-1].OnCurve {
			out = append(out, midOn(out[len(out)-1], p))
		}
		out = append(out, p)
	}
	// Wrap-around adjacency between the last and first point.
	if n := len(out); n > 1 && !out[n-1].OnCurve && !out[0].OnCurve {
		out = append(out, midOn(out[n-1], out[0]))
	}
	return out
}

func midOn(a, b OutlinePoint) OutlinePoint {
	return OutlinePoint{
		X:       int16((int(a.X) + int(b.X)) / 2),
		Y:       int16((int(a.Y) + int(b.Y)) / 2),
		OnCurve: true,
	}
}

// roundCoord snaps a design-space point to the integer grid. The normalizer
// keeps everything inside the em square, so an out-of-range coordinate here
// is a pipeline defect, not a user error.
func roundCoord(name string, p Point) (int16, int16, error) {
	x := math.Round(p.X)
	y := math.Round(p.Y)
	if x < math.MinInt16 || x > math.MaxInt16 || y < math.MinInt16 || y > math.MaxInt16 {
		return 0, 0, fmt.Errorf("%w: glyph %q: coordinate (%g, %g) outside the design grid", ErrInternal, name, p.X, p.Y)
	}
	return int16(x), int16(y), nil
}
