package conn

import (
	"github.com/stianeikeland/go-rpio/v4"
	"periph.io/x/conn/v3/gpio"
)

// RPIO drives pins through memory mapped GPIO registers.
type RPIO struct{}

// OpenRPIO maps the GPIO registers. Only one RPIO driver can be open at a time.
func OpenRPIO() (*RPIO, error) {
	if err := rpio.Open(); err != nil {
		return nil, err
	}
	return new(RPIO), nil
}

func (d *RPIO) String() string {
	return "rpio"
}

func (d *RPIO) Open(name string) (Pin, error) {
	n, err := ParseGPIO(name)
	if err != nil {
		return nil, err
	}
	p := rpio.Pin(n)
	p.Output()
	p.Low()
	return rpioPin{p}, nil
}

func (d *RPIO) Close() error {
	return rpio.Close()
}

type rpioPin struct {
	rpio.Pin
}

func (p rpioPin) Out(l gpio.Level) error {
	if l {
		p.Pin.High()
	} else {
		p.Pin.Low()
	}
	return nil
}
