package conn

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Periph drives pins through the periph.io host drivers.
type Periph struct {
	pins []gpio.PinIO
}

// OpenPeriph initialises the periph.io host drivers.
func OpenPeriph() (*Periph, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("conn: periph host init: %w", err)
	}
	return new(Periph), nil
}

func (d *Periph) String() string {
	return "periph.io"
}

func (d *Periph) Open(name string) (Pin, error) {
	p := gpioreg.ByName(name)
	if p == nil || p == gpio.INVALID {
		return nil, fmt.Errorf("%w %q", ErrPinName, name)
	}
	if err := p.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("conn: %s as output: %w", p, err)
	}
	d.pins = append(d.pins, p)
	return p, nil
}

// Close halts all opened pins.
func (d *Periph) Close() (err error) {
	for _, p := range d.pins {
		if haltErr := p.Halt(); haltErr != nil && err == nil {
			err = haltErr
		}
	}
	d.pins = nil
	return
}
