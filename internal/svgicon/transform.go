package svgicon

import (
	"fmt"
	"math"
	"strings"
)

// affine is a 2D affine transform in SVG matrix order:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type affine struct {
	a, b, c, d, e, f float64
}

func identity() affine {
	return affine{a: 1, d: 1}
}

// mul composes transforms: the receiver is applied after m, matching how
// nested SVG transform attributes stack.
func (t affine) mul(m affine) affine {
	return affine{
		a: t.a*m.a + t.c*m.b,
		b: t.b*m.a + t.d*m.b,
		c: t.a*m.c + t.c*m.d,
		d: t.b*m.c + t.d*m.d,
		e: t.a*m.e + t.c*m.f + t.e,
		f: t.b*m.e + t.d*m.f + t.f,
	}
}

func (t affine) apply(p Pt) Pt {
	return Pt{
		X: t.a*p.X + t.c*p.Y + t.e,
		Y: t.b*p.X + t.d*p.Y + t.f,
	}
}

// parseTransform parses an SVG transform attribute: a whitespace-separated
// list of matrix, translate, scale, rotate, skewX and skewY functions.
func parseTransform(s string) (affine, error) {
	t := identity()
	b := []byte(s)
	pos := 0

	skipWS := func() {
		for pos < len(b) && (b[pos] == ' ' || b[pos] == '\t' || b[pos] == '\n' || b[pos] == '\r' || b[pos] == ',') {
			pos++
		}
	}

	for {
		skipWS()
		if pos >= len(b) {
			return t, nil
		}
		start := pos
		for pos < len(b) && b[pos] != '(' {
			pos++
		}
		if pos >= len(b) {
			return affine{}, fmt.Errorf("malformed transform %q", s)
		}
		name := strings.TrimSpace(string(b[start:pos]))
		pos++ // consume '('
		argStart := pos
		for pos < len(b) && b[pos] != ')' {
			pos++
		}
		if pos >= len(b) {
			return affine{}, fmt.Errorf("malformed transform %q", s)
		}
		args, err := parseNumberList(b[argStart:pos])
		if err != nil {
			return affine{}, fmt.Errorf("transform %s: %w", name, err)
		}
		pos++ // consume ')'

		m, err := transformFunc(name, args)
		if err != nil {
			return affine{}, err
		}
		t = t.mul(m)
	}
}

func transformFunc(name string, args []float64) (affine, error) {
	switch name {
	case "matrix":
		if len(args) != 6 {
			return affine{}, fmt.Errorf("matrix wants 6 arguments, got %d", len(args))
		}
		return affine{a: args[0], b: args[1], c: args[2], d: args[3], e: args[4], f: args[5]}, nil
	case "translate":
		switch len(args) {
		case 1:
			return affine{a: 1, d: 1, e: args[0]}, nil
		case 2:
			return affine{a: 1, d: 1, e: args[0], f: args[1]}, nil
		}
		return affine{}, fmt.Errorf("translate wants 1 or 2 arguments, got %d", len(args))
	case "scale":
		switch len(args) {
		case 1:
			return affine{a: args[0], d: args[0]}, nil
		case 2:
			return affine{a: args[0], d: args[1]}, nil
		}
		return affine{}, fmt.Errorf("scale wants 1 or 2 arguments, got %d", len(args))
	case "rotate":
		if len(args) != 1 && len(args) != 3 {
			return affine{}, fmt.Errorf("rotate wants 1 or 3 arguments, got %d", len(args))
		}
		rad := args[0] * math.Pi / 180
		sin, cos := math.Sin(rad), math.Cos(rad)
		rot := affine{a: cos, b: sin, c: -sin, d: cos}
		if len(args) == 3 {
			cx, cy := args[1], args[2]
			pre := affine{a: 1, d: 1, e: cx, f: cy}
			post := affine{a: 1, d: 1, e: -cx, f: -cy}
			return pre.mul(rot).mul(post), nil
		}
		return rot, nil
	case "skewX":
		if len(args) != 1 {
			return affine{}, fmt.Errorf("skewX wants 1 argument, got %d", len(args))
		}
		return affine{a: 1, d: 1, c: math.Tan(args[0] * math.Pi / 180)}, nil
	case "skewY":
		if len(args) != 1 {
			return affine{}, fmt.Errorf("skewY wants 1 argument, got %d", len(args))
		}
		return affine{a: 1, d: 1, b: math.Tan(args[0] * math.Pi / 180)}, nil
	}
	return affine{}, fmt.Errorf("unsupported transform function %q", name)
}
