// Package ttf serializes a validated TrueType table set into font bytes.
//
// The package is the binary boundary of the pipeline: it accepts glyph
// outlines, metrics and a character map that are already self-consistent,
// and produces a complete sfnt file (head, hhea, maxp, hmtx, cmap, name,
// OS/2, post, loca, glyf). It knows nothing about icons or SVG.
package ttf

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sort"
)

// GlyphPoint is one outline point on the font design grid. Off-curve points
// are quadratic control points.
type GlyphPoint struct {
	X, Y    int16
	OnCurve bool
}

// Glyph is a simple (non-composite) glyph outline. A glyph with no contours
// is valid and has a zero-length glyf entry.
type Glyph struct {
	Contours [][]GlyphPoint
}

// Metrics is one hmtx entry.
type Metrics struct {
	Advance         uint16
	LeftSideBearing int16
}

// Font is the full table set to serialize. Glyph index 0 is expected to be
// the .notdef glyph; Metrics aligns with Glyphs by index; CharMap maps
// codepoints to glyph indices.
type Font struct {
	FamilyName string
	UnitsPerEm uint16
	Ascent     int16
	Descent    int16 // negative below the baseline
	Glyphs     []Glyph
	HMetrics   []Metrics
	CharMap    map[rune]uint16
}

// Validation errors returned before any bytes are produced.
var (
	ErrNoGlyphs        = errors.New("ttf: font has no glyphs")
	ErrMetricsMismatch = errors.New("ttf: metrics not aligned with glyphs")
	ErrBadGlyphIndex   = errors.New("ttf: character map references glyph out of range")
	ErrBadCodepoint    = errors.New("ttf: codepoint outside the basic multilingual plane")
)

func (f *Font) validate() error {
	if len(f.Glyphs) == 0 {
		return ErrNoGlyphs
	}
	if len(f.Glyphs) > math.MaxUint16 {
		return fmt.Errorf("ttf: %d glyphs exceed the uint16 glyph index space", len(f.Glyphs))
	}
	if len(f.HMetrics) != len(f.Glyphs) {
		return fmt.Errorf("%w: %d metrics for %d glyphs", ErrMetricsMismatch, len(f.HMetrics), len(f.Glyphs))
	}
	for r, gid := range f.CharMap {
		if int(gid) >= len(f.Glyphs) {
			return fmt.Errorf("%w: U+%04X -> %d (have %d)", ErrBadGlyphIndex, r, gid, len(f.Glyphs))
		}
		if r < 0 || r > 0xFFFF {
			// cmap format 4 addresses the BMP only.
			return fmt.Errorf("%w: U+%04X", ErrBadCodepoint, r)
		}
	}
	if f.UnitsPerEm == 0 {
		return errors.New("ttf: units per em is zero")
	}
	return nil
}

// table tags in the order required by the sfnt directory (sorted by tag).
var tableOrder = []string{"OS/2", "cmap", "glyf", "head", "hhea", "hmtx", "loca", "maxp", "name", "post"}

// Bytes validates the table set and serializes it.
func (f *Font) Bytes() ([]byte, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	glyf, loca, ext, err := encodeGlyf(f.Glyphs)
	if err != nil {
		return nil, err
	}

	tables := map[string][]byte{
		"glyf": glyf,
		"loca": loca,
		"head": encodeHead(f, ext),
		"hhea": encodeHhea(f, ext),
		"maxp": encodeMaxp(f, ext),
		"hmtx": encodeHmtx(f.HMetrics),
		"cmap": encodeCmap(f.CharMap),
		"OS/2": encodeOS2(f),
		"post": encodePost(),
	}
	name, err := encodeName(f.FamilyName)
	if err != nil {
		return nil, err
	}
	tables["name"] = name

	return assemble(tables)
}

// assemble lays out the table directory and data, computes per-table
// checksums, and patches head.checkSumAdjustment.
func assemble(tables map[string][]byte) ([]byte, error) {
	numTables := len(tableOrder)
	w := newWriter()

	// Offset table.
	w.u32(0x00010000) // sfnt version: TrueType outlines
	entrySelector := 0
	for 1<<(entrySelector+1) <= numTables {
		entrySelector++
	}
	searchRange := 16 << entrySelector
	w.u16(uint16(numTables))
	w.u16(uint16(searchRange))
	w.u16(uint16(entrySelector))
	w.u16(uint16(numTables*16 - searchRange))

	// Directory entries, then table data in the same order.
	offset := 12 + numTables*16
	type placed struct {
		tag    string
		off    int
		length int
	}
	placements := make([]placed, 0, numTables)
	for _, tag := range tableOrder {
		data, ok := tables[tag]
		if !ok {
			return nil, fmt.Errorf("ttf: missing table %q", tag)
		}
		w.tag(tag)
		w.u32(checksum(data))
		w.u32(uint32(offset))
		w.u32(uint32(len(data)))
		placements = append(placements, placed{tag, offset, len(data)})
		offset += pad4(len(data))
	}
	for _, p := range placements {
		w.bytes(tables[p.tag])
		w.align4()
	}

	out := w.buf
	// head.checkSumAdjustment = 0xB1B0AFBA - checksum(entire font),
	// computed with the adjustment field itself zeroed.
	var headOff int
	for _, p := range placements {
		if p.tag == "head" {
			headOff = p.off
		}
	}
	adj := 0xB1B0AFBA - checksum(out)
	binary.BigEndian.PutUint32(out[headOff+8:], adj)
	return out, nil
}

// checksum sums the data as big-endian uint32s, zero-padded to a multiple
// of four.
func checksum(data []byte) uint32 {
	var sum uint32
	n := len(data)
	for i := 0; i+4 <= n; i += 4 {
		sum += binary.BigEndian.Uint32(data[i:])
	}
	if rem := n % 4; rem != 0 {
		var last [4]byte
		copy(last[:], data[n-rem:])
		sum += binary.BigEndian.Uint32(last[:])
	}
	return sum
}

func pad4(n int) int { return (n + 3) &^ 3 }

// sortedRunes returns the character map's codepoints in ascending order.
func sortedRunes(cm map[rune]uint16) []rune {
	runes := make([]rune, 0, len(cm))
	for r := range cm {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}
