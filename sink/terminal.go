package sink

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Half block characters, indexed by top | bottom<<1.
var blocks = [4]string{" ", "▀", "▄", "█"}

// Terminal draws frames as text, two pixel rows per line.
type Terminal struct {
	w      *bufio.Writer
	frame  *image1bit.VerticalLSB
	home   bool
	closed bool
}

// NewTerminal returns a sink writing w by h pixel frames to out. With home set
// every frame starts by moving the cursor to the top left corner, so frames
// replace each other on an ANSI terminal.
func NewTerminal(out io.Writer, w, h int, home bool) *Terminal {
	return &Terminal{
		w:     bufio.NewWriter(out),
		frame: image1bit.NewVerticalLSB(image.Rect(0, 0, w, h)),
		home:  home,
	}
}

func (s *Terminal) String() string {
	return "terminal"
}

func (s *Terminal) Set(x, y int, c color.Color) {
	s.frame.SetBit(x, y, bit(c))
}

// Flush writes the frame. A failing write closes the sink.
func (s *Terminal) Flush() error {
	if s.closed {
		return ErrClosed
	}
	if s.home {
		s.w.WriteString("\x1b[H")
	}
	r := s.frame.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y += 2 {
		for x := r.Min.X; x < r.Max.X; x++ {
			var i int
			if s.frame.BitAt(x, y) {
				i |= 1
			}
			if y+1 < r.Max.Y && s.frame.BitAt(x, y+1) {
				i |= 2
			}
			s.w.WriteString(blocks[i])
		}
		s.w.WriteByte('\n')
	}
	if err := s.w.Flush(); err != nil {
		log.Printf("sink: terminal write failed, closing: %v", err)
		s.closed = true
		return fmt.Errorf("sink: terminal: %w", err)
	}
	return nil
}

func (s *Terminal) Closed() bool {
	return s.closed
}

func (s *Terminal) Close() error {
	s.closed = true
	return nil
}
