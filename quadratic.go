package svg2font

import "math"

// Cubic to quadratic degree reduction. TrueType outlines only support
// quadratic curves, so every cubic segment is rewritten as one or more
// quadratics within a deviation tolerance.
//
// The reduction is deterministic: deviation is measured at a fixed set of
// parameter values and subdivision always happens at t=0.5, so identical
// input yields an identical quadratic sequence.

// deviationSamples are the parameter values at which the cubic and its
// quadratic candidate are compared. t=0 and t=1 coincide by construction.
var deviationSamples = [7]float64{0.125, 0.25, 0.375, 0.5, 0.625, 0.75, 0.875}

// quadApprox returns the single-quadratic candidate for a cubic: its control
// point is the intersection of the cubic's entry and exit tangent lines.
// When the tangents are parallel or degenerate the midpoint of the cubic's
// two control points is used instead.
func quadApprox(c CubicBez) QuadBez {
	d0 := c.P1.Sub(c.P0) // entry tangent direction
	d1 := c.P2.Sub(c.P3) // exit tangent direction, pointing backwards

	denom := d0.Cross(d1)
	chord := c.P0.Distance(c.P3)
	if math.Abs(denom) > 1e-9 {
		t := c.P3.Sub(c.P0).Cross(d1) / denom
		ctrl := c.P0.Add(d0.Mul(t))
		// Near-parallel tangents can put the intersection absurdly far
		// away; fall back to the control midpoint in that case.
		if ctrl.Distance(c.P0) <= 4*chord+1 && ctrl.Distance(c.P3) <= 4*chord+1 {
			return QuadBez{P0: c.P0, P1: ctrl, P2: c.P3}
		}
	}
	return QuadBez{P0: c.P0, P1: c.P1.Midpoint(c.P2), P2: c.P3}
}

// deviation returns the worst-case distance between the cubic and the
// quadratic across the fixed sample parameters.
func deviation(c CubicBez, q QuadBez) float64 {
	var worst float64
	for _, t := range deviationSamples {
		if d := c.Eval(t).Distance(q.Eval(t)); d > worst {
			worst = d
		}
	}
	return worst
}

// ReduceCubic approximates a cubic with quadratics whose sampled deviation
// stays within tolerance. Above tolerance the cubic is split at its
// parametric midpoint (de Casteljau) and each half is reduced recursively,
// up to maxDepth levels. At the depth bound the best candidate found is
// accepted rather than failing the icon: a quality tradeoff, not a
// correctness one.
func ReduceCubic(c CubicBez, tolerance float64, maxDepth int) []QuadBez {
	quads := make([]QuadBez, 0, 2)
	return appendReduced(quads, c, tolerance, maxDepth)
}

func appendReduced(quads []QuadBez, c CubicBez, tolerance float64, depth int) []QuadBez {
	q := quadApprox(c)
	if depth <= 0 || deviation(c, q) <= tolerance {
		return append(quads, q)
	}
	left, right := c.Subdivide()
	quads = appendReduced(quads, left, tolerance, depth-1)
	return appendReduced(quads, right, tolerance, depth-1)
}

// ReduceContour rewrites every cubic segment of a contour as quadratic
// segments. Lines and existing quadratics pass through unchanged.
func ReduceContour(c Contour, tolerance float64, maxDepth int) Contour {
	out := Contour{
		Start:    c.Start,
		Segments: make([]Segment, 0, len(c.Segments)),
	}
	prev := c.Start
	for _, seg := range c.Segments {
		switch s := seg.(type) {
		case CubicSeg:
			cubic := CubicBez{P0: prev, P1: s.C1, P2: s.C2, P3: s.End}
			for _, q := range ReduceCubic(cubic, tolerance, maxDepth) {
				out.Segments = append(out.Segments, QuadSeg{Ctrl: q.P1, End: q.P2})
			}
		default:
			out.Segments = append(out.Segments, seg)
		}
		prev = seg.SegEnd()
	}
	return out
}

// Reduce applies ReduceContour to every contour of a normalized glyph.
func Reduce(g *NormalizedGlyph, cfg config) *NormalizedGlyph {
	out := &NormalizedGlyph{
		Name:     g.Name,
		Contours: make([]Contour, len(g.Contours)),
		Advance:  g.Advance,
	}
	for i, c := range g.Contours {
		out.Contours[i] = ReduceContour(c, cfg.tolerance, cfg.maxSplitDepth)
	}
	return out
}
