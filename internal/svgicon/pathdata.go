package svgicon

import (
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

// Path-data parser for the SVG "d" attribute. All command letters of the
// path grammar are handled, including relative variants, smooth curves and
// elliptical arcs; arcs are converted to cubic segments so the rest of the
// pipeline only ever sees lines, quadratics and cubics.

type pathScanner struct {
	data []byte
	pos  int
}

func (s *pathScanner) skipSeparators() {
	for s.pos < len(s.data) {
		switch s.data[s.pos] {
		case ' ', '\t', '\n', '\r', ',':
			s.pos++
		default:
			return
		}
	}
}

func (s *pathScanner) done() bool {
	s.skipSeparators()
	return s.pos >= len(s.data)
}

// peekCommand reports whether the next token is a command letter.
func (s *pathScanner) peekCommand() (byte, bool) {
	s.skipSeparators()
	if s.pos >= len(s.data) {
		return 0, false
	}
	c := s.data[s.pos]
	if (c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z') && c != 'e' && c != 'E' {
		return c, true
	}
	return 0, false
}

func (s *pathScanner) command() (byte, error) {
	c, ok := s.peekCommand()
	if !ok {
		return 0, fmt.Errorf("expected command letter at offset %d", s.pos)
	}
	s.pos++
	return c, nil
}

func (s *pathScanner) number() (float64, error) {
	s.skipSeparators()
	f, n := strconv.ParseFloat(s.data[s.pos:])
	if n == 0 {
		return 0, fmt.Errorf("expected number at offset %d", s.pos)
	}
	s.pos += n
	return f, nil
}

// flag parses an arc flag, which may be written without a separator from
// the following number ("1 1" or "11").
func (s *pathScanner) flag() (bool, error) {
	s.skipSeparators()
	if s.pos >= len(s.data) {
		return false, fmt.Errorf("expected flag at offset %d", s.pos)
	}
	switch s.data[s.pos] {
	case '0':
		s.pos++
		return false, nil
	case '1':
		s.pos++
		return true, nil
	}
	return false, fmt.Errorf("expected flag at offset %d", s.pos)
}

func (s *pathScanner) pt() (Pt, error) {
	x, err := s.number()
	if err != nil {
		return Pt{}, err
	}
	y, err := s.number()
	if err != nil {
		return Pt{}, err
	}
	return Pt{X: x, Y: y}, nil
}

// parsePathData parses a "d" attribute into commands.
func parsePathData(d []byte) ([]Command, error) {
	s := &pathScanner{data: d}
	var cmds []Command

	var cur, start Pt
	var prevCubicCtrl, prevQuadCtrl Pt
	var prevOp byte

	abs := func(p Pt, rel bool) Pt {
		if rel {
			return Pt{X: cur.X + p.X, Y: cur.Y + p.Y}
		}
		return p
	}

	for !s.done() {
		c, err := s.command()
		if err != nil {
			return nil, err
		}
		rel := c >= 'a'
		op := c &^ 0x20 // uppercase

		// Each command letter may be followed by several coordinate
		// sets; loop until the next token is another command letter.
		for first := true; ; first = false {
			switch op {
			case 'M':
				p, err := s.pt()
				if err != nil {
					return nil, err
				}
				p = abs(p, rel)
				if first {
					cmds = append(cmds, Command{Op: OpMove, End: p})
					start = p
				} else {
					// Subsequent pairs are implicit linetos.
					cmds = append(cmds, Command{Op: OpLine, End: p})
				}
				cur = p

			case 'L':
				p, err := s.pt()
				if err != nil {
					return nil, err
				}
				p = abs(p, rel)
				cmds = append(cmds, Command{Op: OpLine, End: p})
				cur = p

			case 'H':
				x, err := s.number()
				if err != nil {
					return nil, err
				}
				if rel {
					x += cur.X
				}
				cur = Pt{X: x, Y: cur.Y}
				cmds = append(cmds, Command{Op: OpLine, End: cur})

			case 'V':
				y, err := s.number()
				if err != nil {
					return nil, err
				}
				if rel {
					y += cur.Y
				}
				cur = Pt{X: cur.X, Y: y}
				cmds = append(cmds, Command{Op: OpLine, End: cur})

			case 'C':
				c1, err := s.pt()
				if err != nil {
					return nil, err
				}
				c2, err := s.pt()
				if err != nil {
					return nil, err
				}
				p, err := s.pt()
				if err != nil {
					return nil, err
				}
				c1, c2, p = abs(c1, rel), abs(c2, rel), abs(p, rel)
				cmds = append(cmds, Command{Op: OpCubic, C1: c1, C2: c2, End: p})
				prevCubicCtrl = c2
				cur = p

			case 'S':
				c2, err := s.pt()
				if err != nil {
					return nil, err
				}
				p, err := s.pt()
				if err != nil {
					return nil, err
				}
				c2, p = abs(c2, rel), abs(p, rel)
				c1 := cur
				if prevOp == 'C' || prevOp == 'S' {
					c1 = reflect(prevCubicCtrl, cur)
				}
				cmds = append(cmds, Command{Op: OpCubic, C1: c1, C2: c2, End: p})
				prevCubicCtrl = c2
				cur = p

			case 'Q':
				c1, err := s.pt()
				if err != nil {
					return nil, err
				}
				p, err := s.pt()
				if err != nil {
					return nil, err
				}
				c1, p = abs(c1, rel), abs(p, rel)
				cmds = append(cmds, Command{Op: OpQuad, C1: c1, End: p})
				prevQuadCtrl = c1
				cur = p

			case 'T':
				p, err := s.pt()
				if err != nil {
					return nil, err
				}
				p = abs(p, rel)
				c1 := cur
				if prevOp == 'Q' || prevOp == 'T' {
					c1 = reflect(prevQuadCtrl, cur)
				}
				cmds = append(cmds, Command{Op: OpQuad, C1: c1, End: p})
				prevQuadCtrl = c1
				cur = p

			case 'A':
				rx, err := s.number()
				if err != nil {
					return nil, err
				}
				ry, err := s.number()
				if err != nil {
					return nil, err
				}
				rot, err := s.number()
				if err != nil {
					return nil, err
				}
				large, err := s.flag()
				if err != nil {
					return nil, err
				}
				sweep, err := s.flag()
				if err != nil {
					return nil, err
				}
				p, err := s.pt()
				if err != nil {
					return nil, err
				}
				p = abs(p, rel)
				cmds = appendArc(cmds, cur, rx, ry, rot, large, sweep, p)
				cur = p

			case 'Z':
				cmds = append(cmds, Command{Op: OpClose})
				cur = start

			default:
				return nil, fmt.Errorf("unsupported path command %q", string(c))
			}
			prevOp = op
			if op == 'Z' {
				break
			}
			if _, isCmd := s.peekCommand(); isCmd || s.done() {
				break
			}
		}
	}
	return cmds, nil
}

// reflect mirrors a control point across the current point, for the smooth
// curve commands.
func reflect(ctrl, about Pt) Pt {
	return Pt{X: 2*about.X - ctrl.X, Y: 2*about.Y - ctrl.Y}
}

// appendArc converts an elliptical arc to cubic segments using the
// endpoint-to-center parameterization from the SVG spec (appendix B.2.4),
// splitting the sweep into arcs of at most 90 degrees.
func appendArc(cmds []Command, from Pt, rx, ry, xRotDeg float64, large, sweep bool, to Pt) []Command {
	if from == to {
		return cmds
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return append(cmds, Command{Op: OpLine, End: to})
	}

	phi := xRotDeg * math.Pi / 180
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)

	// Step 1: midpoint-relative coordinates.
	dx2, dy2 := (from.X-to.X)/2, (from.Y-to.Y)/2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	// Correct out-of-range radii.
	lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// Step 2: center in the rotated frame.
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	co := 0.0
	if den != 0 && num > 0 {
		co = math.Sqrt(num / den)
	}
	if large == sweep {
		co = -co
	}
	cxp := co * rx * y1p / ry
	cyp := -co * ry * x1p / rx

	// Step 3: center and angles in the original frame.
	cx := cosPhi*cxp - sinPhi*cyp + (from.X+to.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (from.Y+to.Y)/2

	theta1 := math.Atan2((y1p-cyp)/ry, (x1p-cxp)/rx)
	theta2 := math.Atan2((-y1p-cyp)/ry, (-x1p-cxp)/rx)
	delta := theta2 - theta1
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	// Split into <= 90 degree slices, each approximated by one cubic.
	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	if n == 0 {
		return append(cmds, Command{Op: OpLine, End: to})
	}
	step := delta / float64(n)
	// Tangent length factor for a cubic approximating a circular arc.
	k := 4.0 / 3.0 * math.Tan(step/4)

	pointAt := func(theta float64) (Pt, Pt) {
		ct, st := math.Cos(theta), math.Sin(theta)
		p := Pt{
			X: cx + rx*ct*cosPhi - ry*st*sinPhi,
			Y: cy + rx*ct*sinPhi + ry*st*cosPhi,
		}
		// Derivative with respect to theta.
		d := Pt{
			X: -rx*st*cosPhi - ry*ct*sinPhi,
			Y: -rx*st*sinPhi + ry*ct*cosPhi,
		}
		return p, d
	}

	theta := theta1
	p0, d0 := pointAt(theta)
	for i := 0; i < n; i++ {
		next := theta + step
		p1, d1 := pointAt(next)
		end := p1
		if i == n-1 {
			end = to // land exactly on the endpoint
		}
		cmds = append(cmds, Command{
			Op:  OpCubic,
			C1:  Pt{X: p0.X + k*d0.X, Y: p0.Y + k*d0.Y},
			C2:  Pt{X: end.X - k*d1.X, Y: end.Y - k*d1.Y},
			End: end,
		})
		theta = next
		p0, d0 = p1, d1
	}
	return cmds
}
