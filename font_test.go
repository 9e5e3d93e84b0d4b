package svg2font

import (
	"errors"
	"testing"

	"golang.org/x/image/font/sfnt"
)

func builtSquare(t *testing.T, name string) *Glyph {
	t.Helper()
	g, err := BuildGlyph(&NormalizedGlyph{
		Name:     name,
		Advance:  1000,
		Contours: []Contour{designSquare(0, 0, 1000, true)},
	})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestAssembleFont(t *testing.T) {
	glyphs := map[string]*Glyph{
		"a": builtSquare(t, "a"),
		"b": builtSquare(t, "b"),
	}
	cm, err := AllocateCodepoints([]*Icon{{Name: "a"}, {Name: "b"}})
	if err != nil {
		t.Fatal(err)
	}

	data, err := AssembleFont(glyphs, cm, "Pair")
	if err != nil {
		t.Fatal(err)
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		t.Fatalf("assembled font does not parse: %v", err)
	}
	if n := f.NumGlyphs(); n != 3 {
		t.Errorf("NumGlyphs = %d, want 3", n)
	}
}

func TestAssembleFont_GlyphCountMismatch(t *testing.T) {
	cm, err := AllocateCodepoints([]*Icon{{Name: "a"}, {Name: "b"}})
	if err != nil {
		t.Fatal(err)
	}
	glyphs := map[string]*Glyph{"a": builtSquare(t, "a")}
	if _, err := AssembleFont(glyphs, cm, "Short"); !errors.Is(err, ErrInternal) {
		t.Errorf("err = %v, want ErrInternal", err)
	}
}

func TestAssembleFont_WrongName(t *testing.T) {
	cm, err := AllocateCodepoints([]*Icon{{Name: "a"}})
	if err != nil {
		t.Fatal(err)
	}
	glyphs := map[string]*Glyph{"z": builtSquare(t, "z")}
	if _, err := AssembleFont(glyphs, cm, "Mismatch"); !errors.Is(err, ErrInternal) {
		t.Errorf("err = %v, want ErrInternal", err)
	}
}

func TestAssembleFont_AllBlankGlyphs(t *testing.T) {
	// Blank glyphs are valid; vertical metrics fall back to defaults.
	glyphs := map[string]*Glyph{"blank": {Name: "blank", Advance: 500}}
	cm, err := AllocateCodepoints([]*Icon{{Name: "blank"}})
	if err != nil {
		t.Fatal(err)
	}
	data, err := AssembleFont(glyphs, cm, "Blanks")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := sfnt.Parse(data); err != nil {
		t.Errorf("blank-glyph font does not parse: %v", err)
	}
}
