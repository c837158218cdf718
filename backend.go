package glcd

import (
	"image/color"

	"periph.io/x/conn/v3/gpio"
)

// Backend is the bus the protocol is spoken on.
type Backend interface {
	String() string

	// Setup prepares the backend for use.
	Setup() error

	// Set drives a bus line to the provided level.
	Set(Pin, gpio.Level) error

	// Pulse strobes the enable line, latching the bus into the selected unit.
	Pulse() error

	// EndFrame is called once after every rendered frame.
	EndFrame() error

	// Alive reports whether the backend can still display frames.
	Alive() bool

	// Close releases the backend.
	Close() error
}

// Sink is a presentation surface for emulated frames.
type Sink interface {
	// Set the pixel color at (x, y).
	Set(x, y int, c color.Color)

	// Flush presents all pixels set since the last flush.
	Flush() error

	// Closed reports whether the surface has gone away.
	Closed() bool
}

// Null is a backend that discards everything, for running headless.
type Null struct {
	closed bool
}

// NewNull returns a backend that discards everything.
func NewNull() *Null {
	return new(Null)
}

func (*Null) String() string { return "null" }

func (*Null) Setup() error { return nil }

func (*Null) Set(Pin, gpio.Level) error { return nil }

func (*Null) Pulse() error { return nil }

func (*Null) EndFrame() error { return nil }

func (n *Null) Alive() bool { return !n.closed }

func (n *Null) Close() error {
	n.closed = true
	return nil
}

// Interface checks.
var (
	_ Backend = (*Null)(nil)
	_ Backend = (*Actuator)(nil)
	_ Backend = (*Emulator)(nil)
)
