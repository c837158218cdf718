// Package conn provides the pin drivers that actuate the parallel bus of the panel.
//
// Three drivers are available, each resolving pin names in its own way:
//
//   - [Periph] uses periph.io and accepts any name known to gpioreg, such as
//     "GPIO23" or the physical header position "P1_16".
//   - [RPIO] uses go-rpio memory mapped registers (/dev/gpiomem).
//   - [Cdev] uses the Linux GPIO character device (/dev/gpiochipN).
//
// The latter two accept BCM numbers ("23", "GPIO23") or physical header
// positions ("P1_16").
package conn

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"periph.io/x/conn/v3/gpio"
)

// Conn errors.
var (
	ErrPinName = errors.New("conn: invalid pin name")
)

// Pin is a single output line.
//
// Every periph.io [gpio.PinOut] satisfies this interface.
type Pin interface {
	Out(gpio.Level) error
}

// Driver resolves pin names to output lines.
type Driver interface {
	String() string

	// Open the named pin as an output.
	Open(name string) (Pin, error)

	// Close releases all pins opened by the driver.
	Close() error
}

// header maps the physical position on the 40-pin Raspberry Pi header to the
// BCM GPIO number. Power and ground positions are absent.
var header = map[int]int{
	3: 2, 5: 3, 7: 4, 8: 14, 10: 15, 11: 17, 12: 18, 13: 27,
	15: 22, 16: 23, 18: 24, 19: 10, 21: 9, 22: 25, 23: 11, 24: 8,
	26: 7, 27: 0, 28: 1, 29: 5, 31: 6, 32: 12, 33: 13, 35: 19,
	36: 16, 37: 26, 38: 20, 40: 21,
}

// ParseGPIO converts a pin name into a BCM GPIO number.
//
// Accepted forms are "17", "GPIO17" and the physical header position "P1_11".
func ParseGPIO(name string) (int, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	switch {
	case strings.HasPrefix(name, "P1_"):
		n, err := strconv.Atoi(name[3:])
		if err != nil {
			return 0, fmt.Errorf("%w %q", ErrPinName, name)
		}
		bcm, ok := header[n]
		if !ok {
			return 0, fmt.Errorf("%w %q: header position %d is not a GPIO", ErrPinName, name, n)
		}
		return bcm, nil
	case strings.HasPrefix(name, "GPIO"):
		name = name[4:]
	}
	n, err := strconv.Atoi(name)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w %q", ErrPinName, name)
	}
	return n, nil
}
