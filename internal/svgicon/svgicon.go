// Package svgicon parses an SVG document into a flat sequence of drawing
// commands (move, line, quadratic, cubic, close) in view-box coordinates.
//
// It is the geometry-parsing boundary of the pipeline: group and element
// transforms are applied, basic shapes are converted to path commands, and
// elliptical arcs are converted to cubics. Paint, gradients, clipping and
// text are out of scope; icons are assumed single-color fills.
package svgicon

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/tdewolff/parse/v2/strconv"
)

// Pt is a 2D point in SVG user units.
type Pt struct {
	X, Y float64
}

// Op identifies a drawing command.
type Op uint8

const (
	// OpMove starts a new subpath at End.
	OpMove Op = iota
	// OpLine draws a straight line to End.
	OpLine
	// OpQuad draws a quadratic curve with control C1 to End.
	OpQuad
	// OpCubic draws a cubic curve with controls C1, C2 to End.
	OpCubic
	// OpClose closes the current subpath.
	OpClose
)

// Command is one drawing command. Which of C1, C2 and End are meaningful
// depends on Op.
type Command struct {
	Op     Op
	C1, C2 Pt
	End    Pt
}

// ViewBox is the document coordinate frame.
type ViewBox struct {
	MinX, MinY    float64
	Width, Height float64
}

// Icon is a parsed SVG document.
type Icon struct {
	ViewBox  ViewBox
	Commands []Command
}

// Parse parses an SVG document. All path and basic-shape elements are
// collected in document order with their transforms applied.
func Parse(data []byte) (*Icon, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	icon := &Icon{}
	sawSVG := false

	// Transform stack; index 0 is the identity.
	stack := []affine{identity()}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("svgicon: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			tf := stack[len(stack)-1]
			if a := attr(t, "transform"); a != "" {
				local, err := parseTransform(a)
				if err != nil {
					return nil, fmt.Errorf("svgicon: %w", err)
				}
				tf = tf.mul(local)
			}
			stack = append(stack, tf)

			switch t.Name.Local {
			case "svg":
				sawSVG = true
				vb, err := parseViewBox(t)
				if err != nil {
					return nil, fmt.Errorf("svgicon: %w", err)
				}
				icon.ViewBox = vb
			case "path":
				cmds, err := parsePathData([]byte(attr(t, "d")))
				if err != nil {
					return nil, fmt.Errorf("svgicon: path: %w", err)
				}
				icon.append(cmds, tf)
			case "rect":
				icon.append(rectCommands(t), tf)
			case "circle":
				cx, cy := num(t, "cx"), num(t, "cy")
				r := num(t, "r")
				icon.append(ellipseCommands(cx, cy, r, r), tf)
			case "ellipse":
				icon.append(ellipseCommands(num(t, "cx"), num(t, "cy"), num(t, "rx"), num(t, "ry")), tf)
			case "line":
				icon.append([]Command{
					{Op: OpMove, End: Pt{num(t, "x1"), num(t, "y1")}},
					{Op: OpLine, End: Pt{num(t, "x2"), num(t, "y2")}},
				}, tf)
			case "polygon", "polyline":
				cmds, err := polyCommands(attr(t, "points"), t.Name.Local == "polygon")
				if err != nil {
					return nil, fmt.Errorf("svgicon: %s: %w", t.Name.Local, err)
				}
				icon.append(cmds, tf)
			}
		case xml.EndElement:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if !sawSVG {
		return nil, fmt.Errorf("svgicon: no <svg> root element")
	}
	return icon, nil
}

// append applies the transform and adds the commands to the icon.
func (ic *Icon) append(cmds []Command, tf affine) {
	for _, c := range cmds {
		c.C1 = tf.apply(c.C1)
		c.C2 = tf.apply(c.C2)
		c.End = tf.apply(c.End)
		ic.Commands = append(ic.Commands, c)
	}
}

func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// num parses a numeric attribute, ignoring a trailing unit suffix.
// Missing or malformed attributes read as zero, matching how renderers
// treat absent shape attributes.
func num(el xml.StartElement, name string) float64 {
	v := attr(el, name)
	if v == "" {
		return 0
	}
	f, n := strconv.ParseFloat([]byte(v))
	if n == 0 {
		return 0
	}
	return f
}

// parseViewBox reads the viewBox attribute, falling back to width/height
// with a 0 0 origin when absent.
func parseViewBox(el xml.StartElement) (ViewBox, error) {
	if vb := attr(el, "viewBox"); vb != "" {
		nums, err := parseNumberList([]byte(vb))
		if err != nil || len(nums) != 4 {
			return ViewBox{}, fmt.Errorf("malformed viewBox %q", vb)
		}
		return ViewBox{MinX: nums[0], MinY: nums[1], Width: nums[2], Height: nums[3]}, nil
	}
	return ViewBox{Width: num(el, "width"), Height: num(el, "height")}, nil
}

// parseNumberList parses whitespace/comma separated numbers.
func parseNumberList(b []byte) ([]float64, error) {
	s := &pathScanner{data: b}
	var out []float64
	for !s.done() {
		f, err := s.number()
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// rectCommands converts a rect element, ignoring rounded corners: icon
// fonts quantize to a coarse grid where rx/ry rarely survive anyway.
func rectCommands(el xml.StartElement) []Command {
	x, y := num(el, "x"), num(el, "y")
	w, h := num(el, "width"), num(el, "height")
	if w <= 0 || h <= 0 {
		return nil
	}
	return []Command{
		{Op: OpMove, End: Pt{x, y}},
		{Op: OpLine, End: Pt{x + w, y}},
		{Op: OpLine, End: Pt{x + w, y + h}},
		{Op: OpLine, End: Pt{x, y + h}},
		{Op: OpClose},
	}
}

// kappa is the control-point distance factor for approximating a quarter
// circle with one cubic.
const kappa = 0.5522847498307936

// ellipseCommands converts a circle or ellipse to four cubic segments.
func ellipseCommands(cx, cy, rx, ry float64) []Command {
	if rx <= 0 || ry <= 0 {
		return nil
	}
	kx, ky := rx*kappa, ry*kappa
	return []Command{
		{Op: OpMove, End: Pt{cx + rx, cy}},
		{Op: OpCubic, C1: Pt{cx + rx, cy + ky}, C2: Pt{cx + kx, cy + ry}, End: Pt{cx, cy + ry}},
		{Op: OpCubic, C1: Pt{cx - kx, cy + ry}, C2: Pt{cx - rx, cy + ky}, End: Pt{cx - rx, cy}},
		{Op: OpCubic, C1: Pt{cx - rx, cy - ky}, C2: Pt{cx - kx, cy - ry}, End: Pt{cx, cy - ry}},
		{Op: OpCubic, C1: Pt{cx + kx, cy - ry}, C2: Pt{cx + rx, cy - ky}, End: Pt{cx + rx, cy}},
		{Op: OpClose},
	}
}

// polyCommands converts polyline/polygon points.
func polyCommands(points string, closed bool) ([]Command, error) {
	nums, err := parseNumberList([]byte(points))
	if err != nil {
		return nil, err
	}
	if len(nums) < 4 || len(nums)%2 != 0 {
		return nil, fmt.Errorf("malformed points list")
	}
	cmds := []Command{{Op: OpMove, End: Pt{nums[0], nums[1]}}}
	for i := 2; i < len(nums); i += 2 {
		cmds = append(cmds, Command{Op: OpLine, End: Pt{nums[i], nums[i+1]}})
	}
	if closed {
		cmds = append(cmds, Command{Op: OpClose})
	}
	return cmds, nil
}
