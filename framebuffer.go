package glcd

import (
	"bytes"
	"fmt"
	"image"

	"github.com/BeatGlow/glcd/pixel"
)

// FrameBuffer is the panel memory: Pages rows of Columns bytes each, where bit i
// of a byte is the pixel at row page*8+i.
//
// It is a [draw.Image], the draw package and image/draw can render into it.
// The zero value is not usable, use [NewFrameBuffer].
type FrameBuffer struct {
	pixel.MonoVerticalLSBImage

	// cursor is the text position, in pixels.
	cursor image.Point
}

// NewFrameBuffer returns a blank frame.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{
		MonoVerticalLSBImage: *pixel.NewMonoVerticalLSBImage(Columns, Rows),
	}
}

func (fb *FrameBuffer) String() string {
	return fmt.Sprintf("FrameBuffer %dx%d cursor %s", fb.Rect.Dx(), fb.Rect.Dy(), fb.cursor)
}

// Clear turns all pixels off and moves the cursor home.
func (fb *FrameBuffer) Clear() {
	fb.MonoVerticalLSBImage.Clear()
	fb.cursor = image.Point{}
}

// Cursor returns the text cursor position.
func (fb *FrameBuffer) Cursor() image.Point {
	return fb.cursor
}

// SetCursor moves the text cursor to pixel (x, y).
func (fb *FrameBuffer) SetCursor(x, y int) {
	fb.cursor = image.Pt(x, y)
}

// Equal reports whether both frames hold the same pixels.
func (fb *FrameBuffer) Equal(other *FrameBuffer) bool {
	return bytes.Equal(fb.Pix, other.Pix)
}

// CopyFrom replaces all pixels with the pixels of src. The cursor is kept.
func (fb *FrameBuffer) CopyFrom(src *FrameBuffer) {
	copy(fb.Pix, src.Pix)
}

// Clone returns a copy of the frame, including the cursor.
func (fb *FrameBuffer) Clone() *FrameBuffer {
	c := NewFrameBuffer()
	c.CopyFrom(fb)
	c.cursor = fb.cursor
	return c
}

// ImportBitmap copies a page packed bitmap to the top left corner. The data holds
// height/8 pages of width bytes each, in the same layout as the frame.
//
// Columns beyond the panel width and pages beyond the panel height are dropped,
// as are bytes missing from a short data slice. Only a height that is not a
// multiple of 8 is an error.
func (fb *FrameBuffer) ImportBitmap(width, height int, data []byte) error {
	if height%8 != 0 {
		return fmt.Errorf("%w, got %d", ErrBitmapSize, height)
	}
	for page := 0; page < height/8 && page < Pages; page++ {
		for x := 0; x < width && x < Columns; x++ {
			i := page*width + x
			if i >= len(data) {
				return nil
			}
			fb.SetByte(page, x, data[i])
		}
	}
	return nil
}

// Overlay composes src onto the frame with its top left corner at pixel (x, y).
//
// When y is a multiple of 8 the source bytes replace the destination bytes.
// Otherwise every source byte straddles two pages and is OR'ed into both, so
// pixels already present in the straddled rows are kept. Anything falling
// outside the panel is clipped.
func (fb *FrameBuffer) Overlay(src *pixel.MonoVerticalLSBImage, x, y int) {
	var (
		pages = src.Pages()
		w     = src.Rect.Dx()
	)
	for page := 0; page < pages; page++ {
		for sx := 0; sx < w; sx++ {
			fb.compose(x+sx, y+page*8, src.ByteAt(page, src.Rect.Min.X+sx))
		}
	}
}

// BlitText draws text at the cursor using glyphs from the lookup table. The
// cursor advances by GlyphWidth+1 pixels per rune; it never wraps. Runes
// without a glyph leave a blank cell.
func (fb *FrameBuffer) BlitText(text string, glyphs Glyphs) {
	for _, r := range text {
		if g, ok := glyphs.Glyph(r); ok {
			for i, b := range g {
				fb.compose(fb.cursor.X+i, fb.cursor.Y, b)
			}
		}
		fb.cursor.X += GlyphWidth + 1
	}
}

// compose writes a vertical byte with its top pixel at row y in column x.
func (fb *FrameBuffer) compose(x, y int, b byte) {
	if x < 0 || x >= Columns {
		return
	}
	page, shift := y>>3, uint(y&7) // arithmetic shift floors negative rows
	if shift == 0 {
		fb.SetByte(page, x, b)
		return
	}
	fb.or(page, x, b<<shift)
	fb.or(page+1, x, b>>(8-shift))
}

func (fb *FrameBuffer) or(page, x int, b byte) {
	if page < 0 || page >= Pages {
		return
	}
	fb.Pix[fb.PixOffset(page, x)] |= b
}
