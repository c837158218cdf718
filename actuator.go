package glcd

import (
	"fmt"
	"log"
	"time"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/glcd/conn"
)

// Actuator is a backend that toggles real GPIO lines through a pin driver.
type Actuator struct {
	driver conn.Driver
	names  [NumPins]string
	pins   [NumPins]conn.Pin
	levels [NumPins]gpio.Level
	known  [NumPins]bool
	hold   time.Duration
	closed bool
}

// NewActuator returns a backend driving the configured pins. RST and LED may be
// left empty when they are not wired.
func NewActuator(driver conn.Driver, pins PinConfig, hold time.Duration) *Actuator {
	return &Actuator{
		driver: driver,
		names:  pins.Pins(),
		hold:   hold,
	}
}

func (a *Actuator) String() string {
	return fmt.Sprintf("GPIO bus via %s", a.driver)
}

// Setup opens all pins and drives them low.
func (a *Actuator) Setup() error {
	for i, name := range a.names {
		pin := Pin(i)
		if name == "" {
			if pin == PinRST || pin == PinLED {
				continue
			}
			a.release()
			return fmt.Errorf("%w: %s is not configured", ErrPin, pin)
		}
		p, err := a.driver.Open(name)
		if err != nil {
			a.release()
			return fmt.Errorf("glcd: open %s pin %q: %w", pin, name, err)
		}
		a.pins[pin] = p
	}
	if err := a.allLow(); err != nil {
		a.release()
		return err
	}
	log.Printf("glcd: %s ready", a)
	return nil
}

// release closes the driver after a failed setup, the actuator is unusable
// afterwards.
func (a *Actuator) release() {
	if err := a.driver.Close(); err != nil {
		log.Printf("glcd: close %s: %v", a.driver, err)
	}
	a.pins = [NumPins]conn.Pin{}
	a.closed = true
}

func (a *Actuator) allLow() error {
	for i, p := range a.pins {
		if p == nil {
			continue
		}
		if err := p.Out(gpio.Low); err != nil {
			return fmt.Errorf("glcd: drive %s low: %w", Pin(i), err)
		}
		a.levels[i], a.known[i] = gpio.Low, true
	}
	return nil
}

// Set drives a line, skipping the write when it already has that level.
func (a *Actuator) Set(pin Pin, level gpio.Level) error {
	if pin >= NumPins {
		return fmt.Errorf("%w: %s", ErrPin, pin)
	}
	p := a.pins[pin]
	if p == nil {
		return nil
	}
	if a.known[pin] && a.levels[pin] == level {
		return nil
	}
	if err := p.Out(level); err != nil {
		a.known[pin] = false
		return err
	}
	a.levels[pin], a.known[pin] = level, true
	return nil
}

// Pulse holds the enable line high for the strobe hold time.
func (a *Actuator) Pulse() error {
	if err := a.Set(PinE, gpio.High); err != nil {
		return err
	}
	time.Sleep(a.hold)
	return a.Set(PinE, gpio.Low)
}

func (a *Actuator) EndFrame() error {
	return nil
}

func (a *Actuator) Alive() bool {
	return !a.closed
}

// Close drives all lines low and releases the pin driver.
func (a *Actuator) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	if err := a.allLow(); err != nil {
		_ = a.driver.Close()
		return err
	}
	return a.driver.Close()
}
