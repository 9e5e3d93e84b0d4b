package svg2font

import (
	"errors"
	"testing"
)

func TestParseIcon(t *testing.T) {
	icon, err := ParseIcon([]byte(squareSVG), "square", "square.svg")
	if err != nil {
		t.Fatal(err)
	}
	if icon.Name != "square" || icon.Source != "square.svg" {
		t.Errorf("identity = %q/%q", icon.Name, icon.Source)
	}
	if icon.ViewBox != (ViewBox{Width: 24, Height: 24}) {
		t.Errorf("ViewBox = %+v", icon.ViewBox)
	}
	if len(icon.Contours) != 1 {
		t.Fatalf("got %d contours, want 1", len(icon.Contours))
	}
	if !icon.Contours[0].Closed() {
		t.Error("contour is not closed")
	}
}

func TestParseIcon_BadInput(t *testing.T) {
	if _, err := ParseIcon([]byte("<svg"), "bad", "bad.svg"); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("err = %v, want ErrInvalidGeometry", err)
	}
}

func TestParseIcon_OpenSubpathClosedWithLine(t *testing.T) {
	// No Z command: fill semantics close the subpath implicitly.
	svg := `<svg viewBox="0 0 24 24"><path d="M2 2 L22 2 L12 22"/></svg>`
	icon, err := ParseIcon([]byte(svg), "tri", "tri.svg")
	if err != nil {
		t.Fatal(err)
	}
	if len(icon.Contours) != 1 {
		t.Fatalf("got %d contours, want 1", len(icon.Contours))
	}
	c := icon.Contours[0]
	if !c.Closed() {
		t.Fatal("open subpath was not closed")
	}
	if got := c.Segments[len(c.Segments)-1].SegEnd(); !pointsEqual(got, c.Start, epsilon) {
		t.Errorf("closing segment ends at %v, want %v", got, c.Start)
	}
}

func TestParseIcon_QuadElevatedToCubic(t *testing.T) {
	svg := `<svg viewBox="0 0 24 24"><path d="M0 12 Q12 0 24 12 Z"/></svg>`
	icon, err := ParseIcon([]byte(svg), "q", "q.svg")
	if err != nil {
		t.Fatal(err)
	}
	c := icon.Contours[0]
	cub, ok := c.Segments[0].(CubicSeg)
	if !ok {
		t.Fatalf("segment 0 is %T, want CubicSeg", c.Segments[0])
	}

	// The elevation is exact: the cubic's midpoint equals the quad's.
	orig := QuadBez{P0: Pt(0, 12), P1: Pt(12, 0), P2: Pt(24, 12)}
	got := CubicBez{P0: c.Start, P1: cub.C1, P2: cub.C2, P3: cub.End}
	if !pointsEqual(got.Eval(0.5), orig.Eval(0.5), epsilon) {
		t.Errorf("elevated cubic midpoint %v, want %v", got.Eval(0.5), orig.Eval(0.5))
	}
}

func TestParseIcon_MultipleSubpaths(t *testing.T) {
	// Outer square with an inner square hole.
	svg := `<svg viewBox="0 0 24 24"><path d="M2 2h20v20H2z M8 8v8h8V8z"/></svg>`
	icon, err := ParseIcon([]byte(svg), "frame", "frame.svg")
	if err != nil {
		t.Fatal(err)
	}
	if len(icon.Contours) != 2 {
		t.Fatalf("got %d contours, want 2", len(icon.Contours))
	}
	for i, c := range icon.Contours {
		if !c.Closed() {
			t.Errorf("contour %d is not closed", i)
		}
	}
}

func TestParseIcon_DropsLoneMoveto(t *testing.T) {
	// A moveto with no drawing commands produces no contour.
	svg := `<svg viewBox="0 0 24 24"><path d="M1 1 M2 2h20v20H2z"/></svg>`
	icon, err := ParseIcon([]byte(svg), "stray", "stray.svg")
	if err != nil {
		t.Fatal(err)
	}
	if len(icon.Contours) != 1 {
		t.Errorf("got %d contours, want 1 (lone moveto dropped)", len(icon.Contours))
	}
}
