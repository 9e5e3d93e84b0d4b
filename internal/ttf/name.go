package ttf

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// Name record IDs written for every font.
const (
	nameCopyright  = 0
	nameFamily     = 1
	nameSubfamily  = 2
	nameUniqueID   = 3
	nameFullName   = 4
	nameVersion    = 5
	namePostScript = 6
)

// encodeName builds a format 0 name table with Windows (3, 1, en-US)
// records for the seven standard name IDs. Strings are UTF-16BE, the
// encoding that platform requires.
func encodeName(family string) ([]byte, error) {
	records := []struct {
		id    uint16
		value string
	}{
		{nameCopyright, "Generated by svg2font"},
		{nameFamily, family},
		{nameSubfamily, "Regular"},
		{nameUniqueID, "svg2font: " + family},
		{nameFullName, family},
		{nameVersion, "Version 1.0"},
		{namePostScript, strings.ReplaceAll(family, " ", "")},
	}

	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()

	w := newWriter()
	w.u16(0) // format
	w.u16(uint16(len(records)))
	w.u16(uint16(6 + len(records)*12)) // stringOffset

	var storage []byte
	for _, rec := range records {
		encoded, err := enc.Bytes([]byte(rec.value))
		if err != nil {
			return nil, fmt.Errorf("name record %d: %w", rec.id, err)
		}
		w.u16(3)      // platformID: Windows
		w.u16(1)      // encodingID: Unicode BMP
		w.u16(0x0409) // languageID: en-US
		w.u16(rec.id)
		w.u16(uint16(len(encoded)))
		w.u16(uint16(len(storage)))
		storage = append(storage, encoded...)
	}
	w.bytes(storage)
	return w.buf, nil
}
