// Package draw contains drawing primitives for 1-bit panel images.
//
// The types are aliases of [image/draw], so a [glcd.FrameBuffer] can be passed
// anywhere the standard library expects a destination image.
package draw

import (
	"image"
	"image/draw"
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Op is an alias for [image/draw.Op].
type Op = draw.Op

const (
	// Over specifies ``(src in mask) over dst''.
	Over Op = draw.Over

	// Src specifies ``src in mask''.
	Src Op = draw.Src
)

// Draw aligns r.Min in dst with sp in src and then replaces the rectangle r in
// dst with the result of the composition.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	draw.DrawMask(dst, r, src, sp, nil, image.Point{}, op)
}
