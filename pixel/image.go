package pixel

import (
	"encoding/binary"
	"image"
	"image/color"

	"github.com/BeatGlow/glcd/draw"
)

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values and is a container that is used by the image formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixel rows or pages.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	clear(p.Pix)
}

func makeBuffer(w, h, stride, size int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

// MonoVerticalLSBImage is a 1-bit per pixel monochrome image organised in pages.
//
// Each byte holds 8 vertically stacked pixels of one column; bit i is the pixel
// at row page*8+i. Pages are stored one after another, Stride bytes apart.
type MonoVerticalLSBImage struct {
	Buffer
}

func NewMonoVerticalLSBImage(w, h int) *MonoVerticalLSBImage {
	pages := (h + 7) / 8 // round up to whole bytes
	return &MonoVerticalLSBImage{
		Buffer: makeBuffer(w, h, w, pages*w),
	}
}

// Pages is the number of 8-row pages in the image.
func (p *MonoVerticalLSBImage) Pages() int {
	return (p.Rect.Dy() + 7) / 8
}

// PixOffset returns the index of the byte holding page, column x.
func (p *MonoVerticalLSBImage) PixOffset(page, x int) int {
	return page*p.Stride + x - p.Rect.Min.X
}

// ByteAt returns the raw byte at page, column x. Out of range reads return 0.
func (p *MonoVerticalLSBImage) ByteAt(page, x int) byte {
	if page < 0 || page >= p.Pages() || x < p.Rect.Min.X || x >= p.Rect.Max.X {
		return 0
	}
	return p.Pix[p.PixOffset(page, x)]
}

// SetByte replaces the raw byte at page, column x. Out of range writes are dropped.
func (p *MonoVerticalLSBImage) SetByte(page, x int, b byte) {
	if page < 0 || page >= p.Pages() || x < p.Rect.Min.X || x >= p.Rect.Max.X {
		return
	}
	p.Pix[p.PixOffset(page, x)] = b
}

// Page returns the bytes of one page, one per column.
func (p *MonoVerticalLSBImage) Page(page int) []byte {
	off := page * p.Stride
	return p.Pix[off : off+p.Rect.Dx()]
}

func (p *MonoVerticalLSBImage) ColorModel() color.Model {
	return MonoModel
}

func (p *MonoVerticalLSBImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	var (
		pos = (y-p.Rect.Min.Y)/8*p.Stride + x - p.Rect.Min.X
		bit = byte(1) << uint((y-p.Rect.Min.Y)&7)
	)
	return Mono{
		On: p.Pix[pos]&bit != 0,
	}
}

func (p *MonoVerticalLSBImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	var (
		pos = (y-p.Rect.Min.Y)/8*p.Stride + x - p.Rect.Min.X
		bit = byte(1) << uint((y-p.Rect.Min.Y)&7)
	)
	if monoModel(c).(Mono).On {
		p.Pix[pos] |= bit
	} else {
		p.Pix[pos] &^= bit
	}
}

func (p *MonoVerticalLSBImage) Fill(c color.Color) {
	var value byte
	if monoModel(c).(Mono).On {
		value = 0xff
	}
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

// CRGB16Image is a 16-bits per pixel 5-6-5-bit RGB image.
type CRGB16Image struct {
	Buffer
	Order binary.ByteOrder
}

func NewCRGB16Image(w, h int) *CRGB16Image {
	return &CRGB16Image{
		Buffer: makeBuffer(w, h, w*2, w*2*h),
		Order:  binary.LittleEndian,
	}
}

func (p *CRGB16Image) ColorModel() color.Model {
	return CRGB16Model
}

func (p *CRGB16Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	v := p.Order.Uint16(p.Pix[x*2+y*p.Stride:])
	return CRGB16{v}
}

func (p *CRGB16Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	v := crgb16Model(c).(CRGB16).V
	p.Order.PutUint16(p.Pix[x*2+y*p.Stride:], v)
}

func (p *CRGB16Image) Fill(c color.Color) {
	value := crgb16Model(c).(CRGB16).V
	bytes := make([]byte, 2)
	p.Order.PutUint16(bytes, value)
	for i, l := 0, len(p.Pix); i < l; i += 2 {
		copy(p.Pix[i:], bytes)
	}
}

// Interface checks.
var (
	_ Image = (*MonoVerticalLSBImage)(nil)
	_ Image = (*CRGB16Image)(nil)
)
