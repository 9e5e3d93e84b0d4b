package svg2font

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRenderSamples(t *testing.T) {
	res, err := New().Generate(testIcons(t), "Samples")
	if err != nil {
		t.Fatal(err)
	}

	dir := filepath.Join(t.TempDir(), "out")
	if err := RenderSamples(res.Font, res.Map, dir, 48); err != nil {
		t.Fatal(err)
	}

	for _, name := range res.Map.Names() {
		path := filepath.Join(dir, name+".png")
		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("missing sample for %q: %v", name, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("sample for %q is not a PNG: %v", name, err)
		}
		if b := img.Bounds(); b.Dy() != 48 || b.Dx() <= 0 {
			t.Errorf("sample for %q is %dx%d, want height 48", name, b.Dx(), b.Dy())
		}
	}
}

func TestRenderSamples_BadFont(t *testing.T) {
	cm, err := AllocateCodepoints([]*Icon{{Name: "a"}})
	if err != nil {
		t.Fatal(err)
	}
	if err := RenderSamples([]byte("not a font"), cm, t.TempDir(), 32); err == nil {
		t.Error("rendering from garbage bytes succeeded")
	}
}
