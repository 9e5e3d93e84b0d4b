package svg2font

import (
	"encoding/json"
	"fmt"
	"io"
)

// Manifest metadata emitted alongside the font so build tooling can map
// icon names to codepoints without parsing the font itself.

type manifestIcon struct {
	Name      string `json:"name"`
	Codepoint string `json:"codepoint"` // uppercase hex, no prefix
}

type manifest struct {
	FontFamily string         `json:"fontFamily"`
	Icons      []manifestIcon `json:"icons"`
}

// WriteManifest writes the JSON manifest for a generated font.
func WriteManifest(w io.Writer, cm *CodepointMap, familyName string) error {
	m := manifest{
		FontFamily: familyName,
		Icons:      make([]manifestIcon, 0, cm.Len()),
	}
	for _, name := range cm.Names() {
		r, _ := cm.Codepoint(name)
		m.Icons = append(m.Icons, manifestIcon{
			Name:      name,
			Codepoint: fmt.Sprintf("%04X", r),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}
