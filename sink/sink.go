// Package sink provides presentation surfaces for the emulated panel.
//
// Every sink satisfies glcd.Sink: the emulator sets all pixels of a frame and
// then flushes. Sinks that go away (a closed terminal, a halted display) report
// it through Closed, so render loops stop.
package sink

import (
	"errors"
	"image/color"

	"github.com/BeatGlow/glcd/pixel"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// ErrClosed is returned when flushing a closed sink.
var ErrClosed = errors.New("sink: closed")

// bit converts any color to a pixel bit, the same way the panel memory does.
func bit(c color.Color) image1bit.Bit {
	return image1bit.Bit(pixel.MonoModel.Convert(c).(pixel.Mono).On)
}
