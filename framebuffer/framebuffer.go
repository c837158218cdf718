// Package framebuffer presents emulated frames on the operating system's native
// framebuffer.
//
// This requires framebuffer device support in the operating system. The device
// is opened with [Open]; the panel frame is scaled up by the largest whole
// factor that fits the screen and centered on it.
package framebuffer

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/BeatGlow/glcd/draw"
	"github.com/BeatGlow/glcd/pixel"
)

// Errors
var (
	ErrNotSupported = errors.New("framebuffer: not supported")
	ErrClosed       = errors.New("framebuffer: closed")
)

// Sink draws frames onto a screen image.
type Sink struct {
	name    string
	screen  draw.Image
	frame   *pixel.MonoVerticalLSBImage
	target  image.Rectangle
	release func() error
	closed  bool
}

// New returns a sink drawing w by h pixel frames onto screen.
func New(screen draw.Image, w, h int) *Sink {
	frame := pixel.NewMonoVerticalLSBImage(w, h)
	return &Sink{
		name:   "image",
		screen: screen,
		frame:  frame,
		target: fit(screen.Bounds(), frame.Bounds()),
	}
}

func (s *Sink) String() string {
	return fmt.Sprintf("framebuffer %s %dx%d", s.name, s.screen.Bounds().Dx(), s.screen.Bounds().Dy())
}

// Target is the screen area frames are scaled to.
func (s *Sink) Target() image.Rectangle {
	return s.target
}

func (s *Sink) Set(x, y int, c color.Color) {
	s.frame.Set(x, y, c)
}

// Flush scales the frame onto the screen.
func (s *Sink) Flush() error {
	if s.closed {
		return ErrClosed
	}
	xdraw.NearestNeighbor.Scale(s.screen, s.target, s.frame, s.frame.Bounds(), draw.Src, nil)
	return nil
}

func (s *Sink) Closed() bool {
	return s.closed
}

// Close releases the screen. The screen is blanked first.
func (s *Sink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	draw.Draw(s.screen, s.screen.Bounds(), image.Black, image.Point{}, draw.Src)
	if s.release != nil {
		return s.release()
	}
	return nil
}

// fit returns the largest whole multiple of src centered in screen. Screens
// smaller than src get src cropped at the screen origin.
func fit(screen, src image.Rectangle) image.Rectangle {
	scale := min(screen.Dx()/src.Dx(), screen.Dy()/src.Dy())
	if scale < 1 {
		return image.Rectangle{Min: screen.Min, Max: screen.Min.Add(src.Size())}
	}
	size := src.Size().Mul(scale)
	origin := screen.Min.Add(screen.Size().Sub(size).Div(2))
	return image.Rectangle{Min: origin, Max: origin.Add(size)}
}
