package framebuffer

import (
	"image"
	"image/color"
)

// bgra is a 32-bit screen with blue in the lowest byte, the common XRGB8888
// layout.
type bgra struct {
	image.RGBA
}

func (p *bgra) At(x, y int) color.Color {
	c := p.RGBA.RGBAAt(x, y)
	c.R, c.B = c.B, c.R
	return c
}

func (p *bgra) Set(x, y int, c color.Color) {
	v := color.RGBAModel.Convert(c).(color.RGBA)
	v.R, v.B = v.B, v.R
	p.RGBA.SetRGBA(x, y, v)
}
