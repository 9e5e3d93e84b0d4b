// Package svg2font compiles a directory of single-color SVG icons into a
// TrueType icon font.
//
// # Overview
//
// Each icon becomes one glyph, mapped to a sequential codepoint in the
// Unicode Private Use Area starting at U+E000. The pipeline is:
//
//  1. Extract: parse an SVG document into closed contours of line and
//     cubic-bezier segments in source coordinates (internal/svgicon).
//  2. Normalize: uniformly scale, flip and center the contours on the
//     font design grid (1000 units per em).
//  3. Reduce: approximate every cubic segment with quadratic segments
//     within a configurable tolerance (TrueType outlines are quadratic).
//  4. Build: convert the quadratic contours into on/off-curve point lists
//     with consistent winding.
//  5. Allocate: assign codepoints in sorted icon-name order.
//  6. Assemble: construct the TrueType table set and serialize it
//     (internal/ttf).
//
// # Quick Start
//
//	import "github.com/cipherchabon/svg2font"
//
//	gen := svg2font.New()
//	res, err := gen.GenerateDir("./icons", "My Icons")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("my_icons.ttf", res.Font, 0o644)
//
// # Coordinate System
//
// Source SVG coordinates are Y-down with the origin at the top-left of the
// view-box. Font design coordinates are Y-up with the baseline at y=0. The
// normalizer performs the flip; everything after it works in design units.
//
// # Concurrency
//
// Per-icon work (extract through glyph construction) runs on a worker pool
// with no shared mutable state; codepoint allocation and font assembly run
// only after all workers join.
package svg2font
