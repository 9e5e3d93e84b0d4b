package svgicon

import (
	"math"
	"testing"
)

func TestParse_ViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want ViewBox
	}{
		{
			"viewBox attribute",
			`<svg viewBox="0 0 24 24"></svg>`,
			ViewBox{Width: 24, Height: 24},
		},
		{
			"offset origin",
			`<svg viewBox="-12 -12 24 24"></svg>`,
			ViewBox{MinX: -12, MinY: -12, Width: 24, Height: 24},
		},
		{
			"comma separated",
			`<svg viewBox="0,0,16,16"></svg>`,
			ViewBox{Width: 16, Height: 16},
		},
		{
			"width and height fallback",
			`<svg width="32" height="48"></svg>`,
			ViewBox{Width: 32, Height: 48},
		},
		{
			"unit suffix on fallback",
			`<svg width="32px" height="48px"></svg>`,
			ViewBox{Width: 32, Height: 48},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			icon, err := Parse([]byte(tt.svg))
			if err != nil {
				t.Fatal(err)
			}
			if icon.ViewBox != tt.want {
				t.Errorf("ViewBox = %+v, want %+v", icon.ViewBox, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		svg  string
	}{
		{"not xml", "<svg"},
		{"no svg root", `<html><body/></html>`},
		{"malformed viewBox", `<svg viewBox="0 0 24"></svg>`},
		{"malformed path", `<svg viewBox="0 0 24 24"><path d="M0 0 ?"/></svg>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.svg)); err == nil {
				t.Errorf("Parse succeeded on %s", tt.name)
			}
		})
	}
}

func TestParse_Shapes(t *testing.T) {
	svg := `<svg viewBox="0 0 24 24">
		<rect x="2" y="2" width="20" height="20"/>
		<circle cx="12" cy="12" r="10"/>
		<line x1="0" y1="0" x2="24" y2="24"/>
		<polygon points="0,0 24,0 12,24"/>
		<polyline points="0,24 12,0 24,24"/>
	</svg>`
	icon, err := Parse([]byte(svg))
	if err != nil {
		t.Fatal(err)
	}

	counts := map[Op]int{}
	for _, c := range icon.Commands {
		counts[c.Op]++
	}
	// rect: 1 move 3 lines 1 close; circle: 1 move 4 cubics 1 close;
	// line: 1 move 1 line; polygon: 1 move 2 lines 1 close;
	// polyline: 1 move 2 lines.
	if counts[OpMove] != 5 {
		t.Errorf("moves = %d, want 5", counts[OpMove])
	}
	if counts[OpCubic] != 4 {
		t.Errorf("cubics = %d, want 4", counts[OpCubic])
	}
	if counts[OpLine] != 8 {
		t.Errorf("lines = %d, want 8", counts[OpLine])
	}
	if counts[OpClose] != 3 {
		t.Errorf("closes = %d, want 3", counts[OpClose])
	}
}

func TestParse_CircleOnCircle(t *testing.T) {
	icon, err := Parse([]byte(`<svg viewBox="0 0 24 24"><circle cx="12" cy="12" r="10"/></svg>`))
	if err != nil {
		t.Fatal(err)
	}
	// Every cubic segment of the approximation stays near the circle.
	prev := Pt{}
	for _, c := range icon.Commands {
		switch c.Op {
		case OpMove:
			prev = c.End
		case OpCubic:
			for _, tv := range []float64{0.25, 0.5, 0.75} {
				p := evalCubic(prev, c.C1, c.C2, c.End, tv)
				if r := math.Hypot(p.X-12, p.Y-12); math.Abs(r-10) > 0.05 {
					t.Errorf("point %v is %v from center, want 10", p, r)
				}
			}
			prev = c.End
		}
	}
}

func TestParse_Transforms(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want Pt // transformed position of the path's moveto (10, 0)
	}{
		{
			"translate",
			`<svg viewBox="0 0 24 24"><path transform="translate(5 3)" d="M10 0"/></svg>`,
			Pt{15, 3},
		},
		{
			"scale",
			`<svg viewBox="0 0 24 24"><path transform="scale(2)" d="M10 0"/></svg>`,
			Pt{20, 0},
		},
		{
			"non-uniform scale",
			`<svg viewBox="0 0 24 24"><path transform="scale(2 3)" d="M10 0"/></svg>`,
			Pt{20, 0},
		},
		{
			"rotate",
			`<svg viewBox="0 0 24 24"><path transform="rotate(90)" d="M10 0"/></svg>`,
			Pt{0, 10},
		},
		{
			"rotate about center",
			`<svg viewBox="0 0 24 24"><path transform="rotate(180 5 0)" d="M10 0"/></svg>`,
			Pt{0, 0},
		},
		{
			"matrix",
			`<svg viewBox="0 0 24 24"><path transform="matrix(1 0 0 1 -4 2)" d="M10 0"/></svg>`,
			Pt{6, 2},
		},
		{
			"composed list",
			`<svg viewBox="0 0 24 24"><path transform="translate(1 0) scale(2)" d="M10 0"/></svg>`,
			Pt{21, 0},
		},
		{
			"nested groups",
			`<svg viewBox="0 0 24 24"><g transform="translate(1 0)"><g transform="scale(2)"><path d="M10 0"/></g></g></svg>`,
			Pt{21, 0},
		},
		{
			"sibling after group",
			`<svg viewBox="0 0 24 24"><g transform="translate(100 0)"><path d="M0 0"/></g><path d="M10 0"/></svg>`,
			Pt{10, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			icon, err := Parse([]byte(tt.svg))
			if err != nil {
				t.Fatal(err)
			}
			var last Pt
			for _, c := range icon.Commands {
				if c.Op == OpMove {
					last = c.End
				}
			}
			if !ptNear(last, tt.want, 1e-9) {
				t.Errorf("transformed moveto = %v, want %v", last, tt.want)
			}
		})
	}
}

func TestParse_SkewTransforms(t *testing.T) {
	icon, err := Parse([]byte(`<svg viewBox="0 0 24 24"><path transform="skewX(45)" d="M0 10"/></svg>`))
	if err != nil {
		t.Fatal(err)
	}
	if want := (Pt{10, 10}); !ptNear(icon.Commands[0].End, want, 1e-9) {
		t.Errorf("skewX(45) of (0, 10) = %v, want %v", icon.Commands[0].End, want)
	}

	icon, err = Parse([]byte(`<svg viewBox="0 0 24 24"><path transform="skewY(45)" d="M10 0"/></svg>`))
	if err != nil {
		t.Fatal(err)
	}
	if want := (Pt{10, 10}); !ptNear(icon.Commands[0].End, want, 1e-9) {
		t.Errorf("skewY(45) of (10, 0) = %v, want %v", icon.Commands[0].End, want)
	}
}

func TestParseTransform_Errors(t *testing.T) {
	tests := []string{
		"translate(1",
		"frobnicate(1 2)",
		"matrix(1 2 3)",
		"rotate(1 2)",
	}
	for _, s := range tests {
		if _, err := parseTransform(s); err == nil {
			t.Errorf("parseTransform(%q) succeeded", s)
		}
	}
}
