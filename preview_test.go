package svg2font

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
)

func previewFixtures(t *testing.T) ([]byte, *CodepointMap) {
	t.Helper()
	res, err := New().Generate(testIcons(t), "Preview Icons")
	if err != nil {
		t.Fatal(err)
	}
	return res.Font, res.Map
}

func TestWritePreview(t *testing.T) {
	font, cm := previewFixtures(t)

	var buf bytes.Buffer
	if err := WritePreview(&buf, font, cm, "Preview Icons"); err != nil {
		t.Fatal(err)
	}
	page := buf.String()

	if !strings.Contains(page, "@font-face") {
		t.Error("page has no @font-face rule")
	}
	wantURL := "data:font/truetype;base64," + base64.StdEncoding.EncodeToString(font)
	if !strings.Contains(page, wantURL) {
		t.Error("page does not embed the font bytes")
	}
	for _, name := range cm.Names() {
		if !strings.Contains(page, name) {
			t.Errorf("page does not list icon %q", name)
		}
	}
	if !strings.Contains(page, "U+E000") {
		t.Error("page does not show the first codepoint")
	}
	if !strings.Contains(page, "&#xE000;") {
		t.Error("page does not render the first glyph")
	}
}

func TestWritePreview_EscapesNames(t *testing.T) {
	font, cm := previewFixtures(t)

	var buf bytes.Buffer
	if err := WritePreview(&buf, font, cm, `Icons <&> "Family"`); err != nil {
		t.Fatal(err)
	}
	page := buf.String()
	if strings.Contains(page, `Icons <&> "Family"`) {
		t.Error("family name was interpolated unescaped")
	}
	if !strings.Contains(page, "Icons &lt;&amp;&gt;") {
		t.Error("family name was not HTML-escaped")
	}
}

func TestWriteManifest(t *testing.T) {
	_, cm := previewFixtures(t)

	var buf bytes.Buffer
	if err := WriteManifest(&buf, cm, "Preview Icons"); err != nil {
		t.Fatal(err)
	}

	var m struct {
		FontFamily string `json:"fontFamily"`
		Icons      []struct {
			Name      string `json:"name"`
			Codepoint string `json:"codepoint"`
		} `json:"icons"`
	}
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("manifest is not valid JSON: %v", err)
	}
	if m.FontFamily != "Preview Icons" {
		t.Errorf("fontFamily = %q", m.FontFamily)
	}
	if len(m.Icons) != cm.Len() {
		t.Fatalf("manifest has %d icons, want %d", len(m.Icons), cm.Len())
	}
	if m.Icons[0].Name != "circle" || m.Icons[0].Codepoint != "E000" {
		t.Errorf("first entry = %+v, want circle/E000", m.Icons[0])
	}
}
