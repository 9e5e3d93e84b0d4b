package ttf

// encodeCmap builds the character map table: a single format 4 subtable
// (segment mapping to delta values, BMP only) referenced by both a Unicode
// (0, 3) and a Windows (3, 1) encoding record.
func encodeCmap(cm map[rune]uint16) []byte {
	type segment struct {
		start, end uint16
		delta      uint16 // glyph = codepoint + delta, mod 65536
	}

	// Group consecutive codepoints with consecutive glyph indices into
	// segments. PUA allocation produces a single run, but arbitrary maps
	// are handled.
	var segs []segment
	for _, r := range sortedRunes(cm) {
		c := uint16(r)
		gid := cm[r]
		n := len(segs)
		if n > 0 && segs[n-1].end == c-1 && segs[n-1].delta == gid-c {
			segs[n-1].end = c
			continue
		}
		segs = append(segs, segment{start: c, end: c, delta: gid - c})
	}
	// Required terminator segment mapping 0xFFFF to glyph 0.
	segs = append(segs, segment{start: 0xFFFF, end: 0xFFFF, delta: 1})

	segCount := len(segs)
	entrySelector := 0
	for 1<<(entrySelector+1) <= segCount {
		entrySelector++
	}
	searchRange := 2 << entrySelector

	sub := newWriter()
	sub.u16(4) // format
	sub.u16(uint16(16 + segCount*8))
	sub.u16(0) // language
	sub.u16(uint16(segCount * 2))
	sub.u16(uint16(searchRange))
	sub.u16(uint16(entrySelector))
	sub.u16(uint16(segCount*2 - searchRange))
	for _, s := range segs {
		sub.u16(s.end)
	}
	sub.u16(0) // reservedPad
	for _, s := range segs {
		sub.u16(s.start)
	}
	for _, s := range segs {
		sub.u16(s.delta)
	}
	for range segs {
		sub.u16(0) // idRangeOffset: delta arithmetic only
	}

	w := newWriter()
	w.u16(0) // version
	w.u16(2) // encoding records
	const headerLen = 4 + 2*8
	w.u16(0) // Unicode platform
	w.u16(3) // BMP
	w.u32(headerLen)
	w.u16(3) // Windows platform
	w.u16(1) // Unicode BMP
	w.u32(headerLen)
	w.bytes(sub.buf)
	return w.buf
}
