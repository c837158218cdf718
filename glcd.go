// Package glcd drives dual controller 128x64 graphic LCD panels over a parallel bus.
//
// The panel is made of two controller units sharing the data bus, each owning
// 64 of the 128 columns. A [Device] keeps the last committed frame and only
// transmits the bytes that changed ([Device.RenderDiff]), or the whole frame
// when asked to ([Device.CommitFull]).
//
// The bus is reached through a [Backend]: an [Actuator] toggles real GPIO lines,
// [Null] discards everything, and an [Emulator] decodes the bus signals back into
// a frame that is presented on a [Sink].
package glcd

import (
	"errors"
	"log"
	"os"
	"time"
)

var debug bool

func init() {
	debug = os.Getenv("GLCD_DEBUG") != ""
}

func debugf(format string, args ...any) {
	if debug {
		log.Printf(format, args...)
	}
}

// Errors
var (
	ErrPin            = errors.New("glcd: GPIO pin is invalid")
	ErrUnit           = errors.New("glcd: controller unit out of range")
	ErrUnknownCommand = errors.New("glcd: unrecognized command byte")
	ErrClosed         = errors.New("glcd: device is closed")
	ErrBitmapSize     = errors.New("glcd: bitmap height must be a multiple of 8")
)

// Config is the device configuration.
type Config struct {
	// Pins is the bus wiring, only used by the [Actuator] backend.
	Pins PinConfig

	// StrobeHold is how long the enable line is held high to latch a byte.
	StrobeHold time.Duration

	// StartLine is the initial display start line (vertical scroll offset).
	StartLine int

	// Backlight turns the LED backlight on during setup.
	Backlight bool

	// ReselectAfterPage selects the unit again after every page address
	// command. Set page releases both chip select lines, panels that gate the
	// strobe on their chip select need this.
	ReselectAfterPage bool
}

// DefaultConfig are the default configuration values.
var DefaultConfig = Config{
	Pins:       DefaultPinConfig,
	StrobeHold: 450 * time.Nanosecond,
	Backlight:  true,
}
