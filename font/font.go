// Package font builds glyph tables for text rendering on the panel.
//
// Any [font.Face] can be rasterized into 5 column glyphs of 8 rows, one byte
// per column in the panel byte layout. [Basic] uses the bitmap face of the
// golang.org/x/image module, [TrueType] parses an outline font.
package font

import (
	"fmt"
	"image"
	"sync"

	"github.com/golang/freetype/truetype"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"

	"github.com/BeatGlow/glcd"
)

// ASCII is the printable ASCII range.
const ASCII = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

// Threshold is the minimum coverage of a lit pixel after scaling.
const Threshold = 0x60

// Rasterize draws every rune of runes with face and scales it down to a glyph.
// Runes the face has no glyph for are left out.
func Rasterize(face font.Face, runes string) glcd.GlyphMap {
	var (
		m      = face.Metrics()
		ascent = m.Ascent.Ceil()
		height = ascent + m.Descent.Ceil()
		glyphs = make(glcd.GlyphMap)
	)
	if height <= 0 {
		return glyphs
	}
	for _, r := range runes {
		advance, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}
		width := advance.Ceil()
		if width <= 0 {
			continue
		}

		src := image.NewAlpha(image.Rect(0, 0, width, height))
		d := font.Drawer{
			Dst:  src,
			Src:  image.Opaque,
			Face: face,
			Dot:  fixed.P(0, ascent),
		}
		d.DrawString(string(r))

		dst := image.NewAlpha(image.Rect(0, 0, glcd.GlyphWidth, 8))
		xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

		var g glcd.Glyph
		for x := 0; x < glcd.GlyphWidth; x++ {
			for y := 0; y < 8; y++ {
				if dst.AlphaAt(x, y).A >= Threshold {
					g[x] |= 1 << y
				}
			}
		}
		glyphs[r] = g
	}
	return glyphs
}

var (
	basic     glcd.GlyphMap
	basicOnce sync.Once
)

// Basic returns the printable ASCII glyphs of the 7x13 fixed bitmap face.
func Basic() glcd.GlyphMap {
	basicOnce.Do(func() {
		basic = Rasterize(basicfont.Face7x13, ASCII)
	})
	return basic
}

// TrueType rasterizes the printable ASCII glyphs of a TrueType font at size
// points.
func TrueType(ttf []byte, size float64) (glcd.GlyphMap, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()
	return Rasterize(face, ASCII), nil
}

// Mono rasterizes the Go Mono font at size points.
func Mono(size float64) (glcd.GlyphMap, error) {
	return TrueType(gomono.TTF, size)
}
