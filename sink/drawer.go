package sink

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3"
)

// Drawer mirrors frames onto a periph.io display, such as a 128x64 SSD1306
// OLED. Frames larger than the display are cropped.
type Drawer struct {
	dev    display.Drawer
	bus    i2c.BusCloser
	frame  *image1bit.VerticalLSB
	closed bool
}

// NewDrawer returns a sink drawing w by h pixel frames on dev.
func NewDrawer(dev display.Drawer, w, h int) *Drawer {
	return &Drawer{
		dev:   dev,
		frame: image1bit.NewVerticalLSB(image.Rect(0, 0, w, h)),
	}
}

// OpenSSD1306 opens an SSD1306 on the named I²C bus, the first bus when the
// name is empty.
func OpenSSD1306(busName string, w, h int) (*Drawer, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("sink: periph host init: %w", err)
	}
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("sink: open I²C bus %q: %w", busName, err)
	}
	opts := ssd1306.DefaultOpts
	opts.W, opts.H = w, h
	dev, err := ssd1306.NewI2C(bus, &opts)
	if err != nil {
		_ = bus.Close()
		return nil, fmt.Errorf("sink: ssd1306: %w", err)
	}
	log.Printf("sink: %s on %s", dev, bus)
	s := NewDrawer(dev, w, h)
	s.bus = bus
	return s, nil
}

func (s *Drawer) String() string {
	return s.dev.String()
}

func (s *Drawer) Set(x, y int, c color.Color) {
	s.frame.SetBit(x, y, bit(c))
}

// Flush draws the frame on the display. A failing draw closes the sink.
func (s *Drawer) Flush() error {
	if s.closed {
		return ErrClosed
	}
	if err := s.dev.Draw(s.dev.Bounds(), s.frame, image.Point{}); err != nil {
		log.Printf("sink: %s draw failed, closing: %v", s.dev, err)
		s.closed = true
		return err
	}
	return nil
}

func (s *Drawer) Closed() bool {
	return s.closed
}

// Close halts the display and releases its bus.
func (s *Drawer) Close() error {
	s.closed = true
	err := s.dev.Halt()
	if s.bus != nil {
		if cerr := s.bus.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
