package svg2font

import (
	"math"
	"testing"
)

func TestReduceCubic_RoundTrip(t *testing.T) {
	// A cubic that is a degree-elevated quadratic must reduce back to a
	// single quadratic with the original control point recovered exactly
	// by the tangent intersection.
	q := QuadBez{P0: Pt(0, 0), P1: Pt(250, 700), P2: Pt(500, 0)}
	c := q.Raise()

	quads := ReduceCubic(c, DefaultTolerance, DefaultMaxSplitDepth)
	if len(quads) != 1 {
		t.Fatalf("got %d quadratics, want 1", len(quads))
	}
	got := quads[0]
	if !pointsEqual(got.P0, q.P0, 1e-6) || !pointsEqual(got.P1, q.P1, 1e-6) || !pointsEqual(got.P2, q.P2, 1e-6) {
		t.Errorf("recovered quad %+v, want %+v", got, q)
	}
}

func TestReduceCubic_WithinTolerance(t *testing.T) {
	tests := []struct {
		name string
		c    CubicBez
	}{
		{"s-curve", CubicBez{P0: Pt(0, 0), P1: Pt(300, 600), P2: Pt(700, -600), P3: Pt(1000, 0)}},
		{"quarter-arc", CubicBez{P0: Pt(500, 0), P1: Pt(500, 276), P2: Pt(276, 500), P3: Pt(0, 500)}},
		{"tight-loop", CubicBez{P0: Pt(0, 0), P1: Pt(900, 100), P2: Pt(-400, 100), P3: Pt(500, 0)}},
	}

	const tol = 1.0
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quads := ReduceCubic(tt.c, tol, DefaultMaxSplitDepth)
			if len(quads) == 0 {
				t.Fatal("no quadratics produced")
			}

			// Segments must chain and span the cubic's endpoints.
			if !pointsEqual(quads[0].P0, tt.c.P0, epsilon) {
				t.Errorf("first quad starts at %v, want %v", quads[0].P0, tt.c.P0)
			}
			if last := quads[len(quads)-1]; !pointsEqual(last.P2, tt.c.P3, epsilon) {
				t.Errorf("last quad ends at %v, want %v", last.P2, tt.c.P3)
			}
			for i := 1; i < len(quads); i++ {
				if !pointsEqual(quads[i-1].P2, quads[i].P0, epsilon) {
					t.Errorf("quads %d and %d do not chain", i-1, i)
				}
			}

			// The chain must stay close to the cubic. Sample the cubic
			// densely and measure the distance to the nearest chain sample.
			const n = 256
			chain := make([]Point, 0, n*len(quads))
			for _, q := range quads {
				for i := 0; i <= n; i++ {
					chain = append(chain, q.Eval(float64(i)/n))
				}
			}
			var worst float64
			for i := 0; i <= n; i++ {
				p := tt.c.Eval(float64(i) / n)
				best := math.Inf(1)
				for _, cp := range chain {
					if d := p.Distance(cp); d < best {
						best = d
					}
				}
				if best > worst {
					worst = best
				}
			}
			if worst > 2*tol {
				t.Errorf("chain deviates %v from the cubic, tolerance %v", worst, tol)
			}
		})
	}
}

func TestReduceCubic_Deterministic(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(300, 600), P2: Pt(700, -600), P3: Pt(1000, 0)}
	a := ReduceCubic(c, 0.5, DefaultMaxSplitDepth)
	b := ReduceCubic(c, 0.5, DefaultMaxSplitDepth)
	if len(a) != len(b) {
		t.Fatalf("run lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("quad %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestReduceCubic_DepthBound(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(300, 600), P2: Pt(700, -600), P3: Pt(1000, 0)}

	// An unreachable tolerance must still terminate, capped at 2^depth
	// quadratics.
	const depth = 4
	quads := ReduceCubic(c, 1e-12, depth)
	if len(quads) == 0 || len(quads) > 1<<depth {
		t.Errorf("got %d quadratics, want between 1 and %d", len(quads), 1<<depth)
	}
}

func TestReduceContour(t *testing.T) {
	c := Contour{
		Start: Pt(0, 0),
		Segments: []Segment{
			LineSeg{End: Pt(100, 0)},
			CubicSeg{C1: Pt(150, 100), C2: Pt(50, 100), End: Pt(0, 0)},
		},
	}
	out := ReduceContour(c, DefaultTolerance, DefaultMaxSplitDepth)
	if !pointsEqual(out.Start, c.Start, epsilon) {
		t.Errorf("start moved to %v", out.Start)
	}
	for i, seg := range out.Segments {
		if _, cubic := seg.(CubicSeg); cubic {
			t.Errorf("segment %d is still cubic", i)
		}
	}
	if _, ok := out.Segments[0].(LineSeg); !ok {
		t.Errorf("line segment was rewritten to %T", out.Segments[0])
	}
	if end := out.Segments[len(out.Segments)-1].SegEnd(); !pointsEqual(end, Pt(0, 0), epsilon) {
		t.Errorf("contour no longer ends at the start: %v", end)
	}
}
