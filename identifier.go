package svg2font

import (
	"strings"
	"unicode"
)

// suffixFolds rewrites common icon-set suffixes so the camel-case splitter
// turns them into "_filled" etc. rather than leaving a dash behind.
var suffixFolds = strings.NewReplacer(
	"-filled", "Filled",
	"-stroke", "Stroke",
	"-outline", "Outline",
)

// NameFromFilename derives the stable icon identifier from a source file
// stem: camel case is split on underscores and everything is lowered, so
// "arrowDown-filled" becomes "arrow_down_filled". Names that would start
// with a digit get an "icon_" prefix.
func NameFromFilename(stem string) string {
	folded := suffixFolds.Replace(stem)

	var b strings.Builder
	b.Grow(len(folded) + 4)
	prevLower := false
	for _, r := range folded {
		switch {
		case r == '-' || r == ' ':
			b.WriteByte('_')
			prevLower = false
		case unicode.IsUpper(r) && prevLower:
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(r))
			prevLower = false
		default:
			b.WriteRune(unicode.ToLower(r))
			prevLower = unicode.IsLower(r)
		}
	}

	name := b.String()
	if name == "" || unicode.IsDigit(rune(name[0])) {
		name = "icon_" + name
	}
	return name
}
