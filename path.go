package svg2font

// Segment is one piece of a contour. Coordinates are in whatever space the
// contour currently belongs to: source space before normalization, font
// design units after.
type Segment interface {
	// SegEnd returns the endpoint of the segment.
	SegEnd() Point

	isSegment()
}

// LineSeg is a straight segment to End.
type LineSeg struct {
	End Point
}

func (s LineSeg) SegEnd() Point { return s.End }
func (LineSeg) isSegment()      {}

// CubicSeg is a cubic Bezier segment with control points C1, C2 ending at End.
type CubicSeg struct {
	C1, C2, End Point
}

func (s CubicSeg) SegEnd() Point { return s.End }
func (CubicSeg) isSegment()      {}

// QuadSeg is a quadratic Bezier segment with control point Ctrl ending at End.
// QuadSeg only appears after degree reduction; the extractor elevates source
// quadratics to cubics so the reducer sees a single curve degree.
type QuadSeg struct {
	Ctrl, End Point
}

func (s QuadSeg) SegEnd() Point { return s.End }
func (QuadSeg) isSegment()      {}

// Contour is a closed loop: the path starts at Start, follows Segments in
// order, and the last segment ends back at Start.
type Contour struct {
	Start    Point
	Segments []Segment
}

// Closed reports whether the last segment returns to the start point.
func (c Contour) Closed() bool {
	if len(c.Segments) == 0 {
		return false
	}
	return c.Segments[len(c.Segments)-1].SegEnd() == c.Start
}

// SignedArea returns the shoelace area of the polygon formed by the contour's
// on-curve endpoints. The sign encodes winding: in Y-up design space a
// clockwise contour has negative area. Curve control points are ignored;
// only the winding sign is consumed, and endpoints determine it.
func (c Contour) SignedArea() float64 {
	var area float64
	prev := c.Start
	for _, s := range c.Segments {
		end := s.SegEnd()
		area += prev.Cross(end)
		prev = end
	}
	// Close back to start.
	area += prev.Cross(c.Start)
	return area / 2
}

// Reverse returns the contour traced in the opposite direction.
// Control points swap roles so the geometry is unchanged.
func (c Contour) Reverse() Contour {
	n := len(c.Segments)
	if n == 0 {
		return c
	}
	rev := Contour{
		Start:    c.Segments[n-1].SegEnd(),
		Segments: make([]Segment, 0, n),
	}
	for i := n - 1; i >= 0; i-- {
		var from Point
		if i == 0 {
			from = c.Start
		} else {
			from = c.Segments[i-1].SegEnd()
		}
		switch s := c.Segments[i].(type) {
		case LineSeg:
			rev.Segments = append(rev.Segments, LineSeg{End: from})
		case QuadSeg:
			rev.Segments = append(rev.Segments, QuadSeg{Ctrl: s.Ctrl, End: from})
		case CubicSeg:
			rev.Segments = append(rev.Segments, CubicSeg{C1: s.C2, C2: s.C1, End: from})
		}
	}
	return rev
}

// Map returns a copy of the contour with every point transformed by fn.
func (c Contour) Map(fn func(Point) Point) Contour {
	out := Contour{
		Start:    fn(c.Start),
		Segments: make([]Segment, len(c.Segments)),
	}
	for i, seg := range c.Segments {
		switch s := seg.(type) {
		case LineSeg:
			out.Segments[i] = LineSeg{End: fn(s.End)}
		case QuadSeg:
			out.Segments[i] = QuadSeg{Ctrl: fn(s.Ctrl), End: fn(s.End)}
		case CubicSeg:
			out.Segments[i] = CubicSeg{C1: fn(s.C1), C2: fn(s.C2), End: fn(s.End)}
		}
	}
	return out
}

// ViewBox is the source coordinate frame of an icon: origin plus extent.
type ViewBox struct {
	MinX, MinY    float64
	Width, Height float64
}

// Icon is one discovered source icon after outline extraction. It is created
// once per file and not mutated afterwards; each pipeline stage derives new
// values from it.
type Icon struct {
	// Name is the stable identifier derived from the source filename,
	// e.g. "arrow_down_filled" from "arrowDown-filled.svg".
	Name string

	// Source is the originating file path, kept for error reporting.
	Source string

	// ViewBox is the source coordinate frame.
	ViewBox ViewBox

	// Contours holds the extracted outline in source coordinates.
	// Segments are lines and cubics only.
	Contours []Contour
}
