package ttf

// encodeHead builds the font header. The created/modified timestamps are
// fixed at zero so identical input produces byte-identical fonts.
func encodeHead(f *Font, ext extents) []byte {
	w := newWriter()
	w.u32(0x00010000) // version 1.0
	w.u32(0x00010000) // fontRevision 1.0
	w.u32(0)          // checkSumAdjustment, patched in assemble
	w.u32(0x5F0F3CF5) // magicNumber
	w.u16(0x0003)     // baseline at y=0, lsb at xMin
	w.u16(f.UnitsPerEm)
	w.u64(0) // created
	w.u64(0) // modified
	w.i16(ext.font.xMin)
	w.i16(ext.font.yMin)
	w.i16(ext.font.xMax)
	w.i16(ext.font.yMax)
	w.u16(0) // macStyle
	w.u16(8) // lowestRecPPEM
	w.i16(2) // fontDirectionHint
	w.i16(1) // indexToLocFormat: long offsets
	w.i16(0) // glyphDataFormat
	return w.buf
}

// encodeHhea builds the horizontal header.
func encodeHhea(f *Font, ext extents) []byte {
	var advanceMax uint16
	minLSB, minRSB, xMaxExtent := int16(0x7FFF), int16(0x7FFF), int16(0)
	any := false
	for i, m := range f.HMetrics {
		advanceMax = max(advanceMax, m.Advance)
		b := ext.perGlyph[i]
		if !b.ok {
			continue
		}
		any = true
		width := b.xMax - b.xMin
		minLSB = min(minLSB, m.LeftSideBearing)
		minRSB = min(minRSB, int16(int(m.Advance)-int(m.LeftSideBearing)-int(width)))
		xMaxExtent = max(xMaxExtent, m.LeftSideBearing+width)
	}
	if !any {
		minLSB, minRSB = 0, 0
	}

	w := newWriter()
	w.u32(0x00010000) // version 1.0
	w.i16(f.Ascent)
	w.i16(f.Descent)
	w.i16(0) // lineGap
	w.u16(advanceMax)
	w.i16(minLSB)
	w.i16(minRSB)
	w.i16(xMaxExtent)
	w.i16(1) // caretSlopeRise: vertical caret
	w.i16(0) // caretSlopeRun
	w.i16(0) // caretOffset
	w.i16(0)
	w.i16(0)
	w.i16(0)
	w.i16(0) // reserved
	w.i16(0) // metricDataFormat
	w.u16(uint16(len(f.HMetrics)))
	return w.buf
}

// encodeMaxp builds the maximum profile, version 1.0.
func encodeMaxp(f *Font, ext extents) []byte {
	w := newWriter()
	w.u32(0x00010000)
	w.u16(uint16(len(f.Glyphs)))
	w.u16(ext.maxPoints)
	w.u16(ext.maxContours)
	w.u16(0) // maxCompositePoints
	w.u16(0) // maxCompositeContours
	w.u16(2) // maxZones
	w.u16(0) // maxTwilightPoints
	w.u16(0) // maxStorage
	w.u16(0) // maxFunctionDefs
	w.u16(0) // maxInstructionDefs
	w.u16(0) // maxStackElements
	w.u16(0) // maxSizeOfInstructions
	w.u16(0) // maxComponentElements
	w.u16(0) // maxComponentDepth
	return w.buf
}

// encodeHmtx builds the horizontal metrics, one long entry per glyph.
func encodeHmtx(metrics []Metrics) []byte {
	w := newWriter()
	for _, m := range metrics {
		w.u16(m.Advance)
		w.i16(m.LeftSideBearing)
	}
	return w.buf
}

// encodeOS2 builds the OS/2 table, version 4. The Unicode range bits claim
// the Private Use Area; everything else is a fixed regular-weight profile.
func encodeOS2(f *Font) []byte {
	var first, last uint16 = 0xFFFF, 0
	for r := range f.CharMap {
		first = min(first, uint16(r))
		last = max(last, uint16(r))
	}
	if len(f.CharMap) == 0 {
		first, last = 0, 0
	}

	w := newWriter()
	w.u16(4)                   // version
	w.i16(int16(f.UnitsPerEm)) // xAvgCharWidth
	w.u16(400)                 // usWeightClass: normal
	w.u16(5)                   // usWidthClass: medium
	w.u16(0)                   // fsType: installable
	w.i16(650)                 // ySubscriptXSize
	w.i16(600)                 // ySubscriptYSize
	w.i16(0)                   // ySubscriptXOffset
	w.i16(75)                  // ySubscriptYOffset
	w.i16(650)                 // ySuperscriptXSize
	w.i16(600)                 // ySuperscriptYSize
	w.i16(0)                   // ySuperscriptXOffset
	w.i16(350)                 // ySuperscriptYOffset
	w.i16(50)                  // yStrikeoutSize
	w.i16(300)                 // yStrikeoutPosition
	w.i16(0)                   // sFamilyClass
	for i := 0; i < 10; i++ {
		w.u8(0) // panose
	}
	w.u32(0)       // ulUnicodeRange1
	w.u32(0)       // ulUnicodeRange2
	w.u32(0)       // ulUnicodeRange3
	w.u32(1 << 28) // ulUnicodeRange4: Private Use Area
	w.tag("S2FT")  // achVendID
	w.u16(0x0040)  // fsSelection: regular
	w.u16(first)
	w.u16(last)
	w.i16(f.Ascent)           // sTypoAscender
	w.i16(f.Descent)          // sTypoDescender
	w.i16(0)                  // sTypoLineGap
	w.u16(uint16(f.Ascent))   // usWinAscent
	w.u16(uint16(-f.Descent)) // usWinDescent
	w.u32(1)                  // ulCodePageRange1: Latin 1
	w.u32(0)                  // ulCodePageRange2
	w.i16(500)                // sxHeight
	w.i16(700)                // sCapHeight
	w.u16(0)                  // usDefaultChar
	w.u16(32)                 // usBreakChar
	w.u16(0)                  // usMaxContext
	return w.buf
}

// encodePost builds a version 3.0 post table: no glyph names are stored,
// which is all an icon font needs.
func encodePost() []byte {
	w := newWriter()
	w.u32(0x00030000)
	w.u32(0)    // italicAngle
	w.i16(-100) // underlinePosition
	w.i16(50)   // underlineThickness
	w.u32(0)    // isFixedPitch
	w.u32(0)    // minMemType42
	w.u32(0)    // maxMemType42
	w.u32(0)    // minMemType1
	w.u32(0)    // maxMemType1
	return w.buf
}
