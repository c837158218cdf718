package sink

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Image is an in memory sink. It keeps the last flushed frame, which can be
// taken as a scaled snapshot or encoded as PNG.
type Image struct {
	scale  int
	back   *image1bit.VerticalLSB
	front  *image1bit.VerticalLSB
	frames int
	closed bool
}

// NewImage returns a sink of w by h pixels. Snapshots are scaled up by scale.
func NewImage(w, h, scale int) *Image {
	if scale < 1 {
		scale = 1
	}
	r := image.Rect(0, 0, w, h)
	return &Image{
		scale: scale,
		back:  image1bit.NewVerticalLSB(r),
		front: image1bit.NewVerticalLSB(r),
	}
}

func (s *Image) String() string {
	return fmt.Sprintf("image %dx%d", s.front.Rect.Dx(), s.front.Rect.Dy())
}

// Set the pixel at (x, y) of the frame being built.
func (s *Image) Set(x, y int, c color.Color) {
	s.back.SetBit(x, y, bit(c))
}

// Flush makes the frame being built the visible frame.
func (s *Image) Flush() error {
	if s.closed {
		return ErrClosed
	}
	copy(s.front.Pix, s.back.Pix)
	s.frames++
	return nil
}

// Frames is the number of flushed frames.
func (s *Image) Frames() int {
	return s.frames
}

// Frame returns the visible frame at panel resolution.
func (s *Image) Frame() *image1bit.VerticalLSB {
	return s.front
}

// Snapshot returns the visible frame scaled up, with hard pixel edges.
func (s *Image) Snapshot() *image.NRGBA {
	b := s.front.Bounds()
	return imaging.Resize(s.front, b.Dx()*s.scale, b.Dy()*s.scale, imaging.NearestNeighbor)
}

// WritePNG encodes a snapshot as PNG.
func (s *Image) WritePNG(w io.Writer) error {
	return imaging.Encode(w, s.Snapshot(), imaging.PNG)
}

// Save writes a snapshot to a file, the format follows the file extension.
func (s *Image) Save(name string) error {
	return imaging.Save(s.Snapshot(), name)
}

func (s *Image) Closed() bool {
	return s.closed
}

func (s *Image) Close() error {
	s.closed = true
	return nil
}
