package font

import (
	"testing"

	"github.com/BeatGlow/glcd"
)

func testInk(g glcd.Glyph) (n int) {
	for _, col := range g {
		for ; col != 0; col &= col - 1 {
			n++
		}
	}
	return
}

func testGlyphs(t *testing.T, name string, glyphs glcd.GlyphMap) {
	t.Helper()
	if len(glyphs) != len(ASCII) {
		t.Errorf("%s: expected %d glyphs, got %d", name, len(ASCII), len(glyphs))
	}
	if g, ok := glyphs.Glyph(' '); !ok || g != (glcd.Glyph{}) {
		t.Errorf("%s: expected a blank space, got %v", name, g)
	}
	for _, r := range "AHMW08#" {
		g, ok := glyphs.Glyph(r)
		if !ok {
			t.Errorf("%s: missing glyph %q", name, r)
			continue
		}
		if testInk(g) < 4 {
			t.Errorf("%s: glyph %q is nearly blank: %v", name, r, g)
		}
	}
	if a, b := glyphs['-'], glyphs['|']; a == b {
		t.Errorf("%s: expected - and | to differ", name)
	}
}

func TestBasic(t *testing.T) {
	testGlyphs(t, "basic", Basic())
	if _, ok := Basic().Glyph('é'); ok {
		t.Error("expected no glyphs outside ASCII")
	}
}

func TestMono(t *testing.T) {
	glyphs, err := Mono(12)
	if err != nil {
		t.Fatal(err)
	}
	testGlyphs(t, "mono", glyphs)
}

func TestTrueTypeInvalid(t *testing.T) {
	if _, err := TrueType([]byte("not a font"), 12); err == nil {
		t.Error("expected an error for invalid font data")
	}
}

func TestBlitText(t *testing.T) {
	fb := glcd.NewFrameBuffer()
	fb.BlitText("HI", Basic())
	if c := fb.Cursor(); c.X != 2*(glcd.GlyphWidth+1) {
		t.Errorf("expected the cursor to advance, got %s", c)
	}
	var lit int
	for x := 0; x < glcd.Columns; x++ {
		for page := 0; page < glcd.Pages; page++ {
			if fb.ByteAt(page, x) != 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("expected text on the frame")
	}
}
