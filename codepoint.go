package svg2font

import (
	"fmt"
	"sort"
	"strings"
)

// Codepoint allocation. Icons are mapped to the Unicode Private Use Area
// starting at U+E000, in sorted icon-name order, so re-running on the same
// input set reproduces the same mapping regardless of discovery order.

// PUAStart is the first codepoint handed out.
const PUAStart rune = 0xE000

// puaEnd is the last addressable codepoint: the end of the BMP Private Use
// Area, giving 6400 slots.
const puaEnd rune = 0xF8FF

// CodepointMap is the read-only bidirectional mapping between icon names and
// their assigned codepoints.
type CodepointMap struct {
	names  []string // sorted; index i maps to PUAStart+i
	byName map[string]rune
}

// AllocateCodepoints assigns each icon a codepoint U+E000+i, with i the
// icon's position in sorted name order. Allocation is total: every icon gets
// exactly one codepoint with no gaps or reuse.
//
// Two icons whose names collide case-insensitively fail with
// ErrDuplicateIconName naming both source files. More icons than the PUA
// sub-range can address fail with ErrCodepointRangeExhausted. Both faults
// abort the run before font assembly.
func AllocateCodepoints(icons []*Icon) (*CodepointMap, error) {
	if n := len(icons); n > int(puaEnd-PUAStart)+1 {
		return nil, fmt.Errorf("%w: %d icons exceed the %d available codepoints (U+%04X..U+%04X)",
			ErrCodepointRangeExhausted, n, int(puaEnd-PUAStart)+1, PUAStart, puaEnd)
	}

	seen := make(map[string]*Icon, len(icons))
	names := make([]string, 0, len(icons))
	for _, ic := range icons {
		key := strings.ToLower(ic.Name)
		if prev, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %q from %s collides with %q from %s",
				ErrDuplicateIconName, ic.Name, ic.Source, prev.Name, prev.Source)
		}
		seen[key] = ic
		names = append(names, ic.Name)
	}
	sort.Strings(names)

	m := &CodepointMap{
		names:  names,
		byName: make(map[string]rune, len(names)),
	}
	for i, name := range names {
		m.byName[name] = PUAStart + rune(i)
	}
	return m, nil
}

// Len returns the number of allocated codepoints.
func (m *CodepointMap) Len() int { return len(m.names) }

// Codepoint returns the codepoint assigned to an icon name.
func (m *CodepointMap) Codepoint(name string) (rune, bool) {
	r, ok := m.byName[name]
	return r, ok
}

// Name returns the icon name assigned to a codepoint.
func (m *CodepointMap) Name(r rune) (string, bool) {
	i := int(r - PUAStart)
	if i < 0 || i >= len(m.names) {
		return "", false
	}
	return m.names[i], true
}

// Names returns the icon names in codepoint order. The caller must not
// modify the returned slice.
func (m *CodepointMap) Names() []string { return m.names }
