package glcd

import (
	"errors"
	"fmt"
	"testing"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/glcd/conn"
)

// testBus is a pin driver wired to a decoder, the enable line falling edge
// latches the bus.
type testBus struct {
	decoder *Decoder
	names   map[string]Pin
	writes  int
	closed  bool
	fail    string
}

func newTestBus(config PinConfig) *testBus {
	bus := &testBus{
		decoder: NewDecoder(),
		names:   make(map[string]Pin),
	}
	for i, name := range config.Pins() {
		if name != "" {
			bus.names[name] = Pin(i)
		}
	}
	return bus
}

func (bus *testBus) String() string { return "test bus" }

func (bus *testBus) Open(name string) (conn.Pin, error) {
	if name == bus.fail {
		return nil, conn.ErrPinName
	}
	pin, ok := bus.names[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", conn.ErrPinName, name)
	}
	return &testLine{bus: bus, pin: pin}, nil
}

func (bus *testBus) Close() error {
	bus.closed = true
	return nil
}

type testLine struct {
	bus   *testBus
	pin   Pin
	level gpio.Level
}

func (l *testLine) Out(level gpio.Level) error {
	l.bus.writes++
	prev := l.level
	l.level = level
	l.bus.decoder.Set(l.pin, level)
	if l.pin == PinE && prev && !level {
		return l.bus.decoder.Strobe()
	}
	return nil
}

func TestActuatorSetup(t *testing.T) {
	t.Run("missing data pin", func(t *testing.T) {
		config := DefaultPinConfig
		config.D3 = ""
		bus := newTestBus(config)
		a := NewActuator(bus, config, 0)
		if err := a.Setup(); !errors.Is(err, ErrPin) {
			t.Errorf("expected ErrPin, got %v", err)
		}
		if !bus.closed || a.Alive() {
			t.Error("expected failed setup to release the pin driver")
		}
	})

	t.Run("optional pins", func(t *testing.T) {
		config := DefaultPinConfig
		config.RST, config.LED = "", ""
		a := NewActuator(newTestBus(config), config, 0)
		if err := a.Setup(); err != nil {
			t.Fatal(err)
		}
		if err := a.Set(PinLED, gpio.High); err != nil {
			t.Errorf("expected unwired pin to be ignored, got %v", err)
		}
	})

	t.Run("open fails", func(t *testing.T) {
		bus := newTestBus(DefaultPinConfig)
		bus.fail = DefaultPinConfig.CS2
		a := NewActuator(bus, DefaultPinConfig, 0)
		if err := a.Setup(); !errors.Is(err, conn.ErrPinName) {
			t.Errorf("expected the driver error to be wrapped, got %v", err)
		}
		if !bus.closed {
			t.Error("expected failed setup to release the pin driver")
		}
	})

	t.Run("all low", func(t *testing.T) {
		bus := newTestBus(DefaultPinConfig)
		a := NewActuator(bus, DefaultPinConfig, 0)
		if err := a.Setup(); err != nil {
			t.Fatal(err)
		}
		if bus.writes != int(NumPins) {
			t.Errorf("expected %d pin writes, got %d", NumPins, bus.writes)
		}
		for i, level := range bus.decoder.lines {
			if level {
				t.Errorf("expected %s low", Pin(i))
			}
		}
	})
}

func TestActuatorSetCaches(t *testing.T) {
	bus := newTestBus(DefaultPinConfig)
	a := NewActuator(bus, DefaultPinConfig, 0)
	if err := a.Setup(); err != nil {
		t.Fatal(err)
	}
	bus.writes = 0
	for i := 0; i < 3; i++ {
		if err := a.Set(PinRS, gpio.High); err != nil {
			t.Fatal(err)
		}
	}
	if bus.writes != 1 {
		t.Errorf("expected 1 pin write, got %d", bus.writes)
	}
	if err := a.Set(NumPins, gpio.High); !errors.Is(err, ErrPin) {
		t.Errorf("expected ErrPin, got %v", err)
	}
}

func TestActuatorDevice(t *testing.T) {
	bus := newTestBus(DefaultPinConfig)
	d, err := New(NewActuator(bus, DefaultPinConfig, 0), nil)
	if err != nil {
		t.Fatal(err)
	}

	target := NewFrameBuffer()
	for x := 0; x < Columns; x++ {
		target.SetByte(4, x, 0x01)
		target.SetByte(6, x, byte(x))
	}
	if err = d.RenderDiff(target); err != nil {
		t.Fatal(err)
	}
	if !bus.decoder.FrameBuffer().Equal(target) {
		t.Error("decoded panel memory differs from the target")
	}
	if s := bus.decoder.State(); !s.On || !s.Backlight {
		t.Errorf("unexpected state %+v", s)
	}

	if err = d.Close(); err != nil {
		t.Fatal(err)
	}
	if !bus.closed {
		t.Error("expected pin driver to be closed")
	}
	if bus.decoder.State().On {
		t.Error("expected display off after close")
	}
}
