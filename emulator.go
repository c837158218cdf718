package glcd

import (
	"fmt"
	"io"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/glcd/pixel"
)

// DecoderState is the controller state reconstructed from the bus.
type DecoderState struct {
	Unit      int  // last selected unit
	Page      int  // page address
	Column    int  // column address within the unit
	On        bool // display power
	StartLine int  // RAM row shown at the top
	Backlight bool
}

// Stats counts the bus transactions seen by a decoder.
type Stats struct {
	Strobes    int
	Data       int
	Pages      int
	Columns    int
	Powers     int
	StartLines int
	Unknown    int
}

// Commands is the number of command bytes, including unrecognized ones.
func (s Stats) Commands() int {
	return s.Pages + s.Columns + s.Powers + s.StartLines + s.Unknown
}

// Sub returns the transactions counted since an earlier snapshot.
func (s Stats) Sub(o Stats) Stats {
	return Stats{
		Strobes:    s.Strobes - o.Strobes,
		Data:       s.Data - o.Data,
		Pages:      s.Pages - o.Pages,
		Columns:    s.Columns - o.Columns,
		Powers:     s.Powers - o.Powers,
		StartLines: s.StartLines - o.StartLines,
		Unknown:    s.Unknown - o.Unknown,
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("%d strobes: %d data, %d page, %d column, %d power, %d start line, %d unknown",
		s.Strobes, s.Data, s.Pages, s.Columns, s.Powers, s.StartLines, s.Unknown)
}

// Decoder reconstructs the panel memory from the bus lines, the same way the
// controllers would.
type Decoder struct {
	// Strict makes Strobe fail on unrecognized command bytes instead of
	// ignoring them.
	Strict bool

	lines [NumPins]gpio.Level
	state DecoderState
	fb    *FrameBuffer
	stats Stats
}

// NewDecoder returns a decoder with all lines low, except reset which is
// released.
func NewDecoder() *Decoder {
	d := &Decoder{
		fb: NewFrameBuffer(),
	}
	d.lines[PinRST] = gpio.High
	return d
}

// Set latches a bus line. Asserting a chip select line selects its unit, the
// most recent one wins when both are asserted. Releasing one line while the
// other is asserted selects the other unit; releasing both keeps the unit.
// Pulling reset low resets the controller state.
func (d *Decoder) Set(pin Pin, level gpio.Level) {
	if pin >= NumPins {
		return
	}
	prev := d.lines[pin]
	d.lines[pin] = level
	switch pin {
	case PinCS1, PinCS2:
		unit := int(pin - PinCS1)
		if level {
			d.state.Unit = unit
		} else if other := UnitPin(unit + 1); d.lines[other] {
			d.state.Unit = int(other - PinCS1)
		}
	case PinRST:
		if !level && prev {
			d.state = DecoderState{Backlight: d.state.Backlight}
		}
	case PinLED:
		d.state.Backlight = bool(level)
	}
}

// Strobe latches the data lines. With register select high the byte is stored
// at the current address and the column advances; otherwise it is decoded as a
// command.
func (d *Decoder) Strobe() error {
	if !d.lines[PinRST] {
		return nil
	}
	d.stats.Strobes++

	var v byte
	for i := 0; i < 8; i++ {
		if d.lines[DataPin(i)] {
			v |= 1 << i
		}
	}

	if d.lines[PinRS] {
		d.fb.SetByte(d.state.Page, d.state.Unit*UnitColumns+d.state.Column, v)
		d.state.Column = (d.state.Column + 1) % UnitColumns
		d.stats.Data++
		return nil
	}

	switch command, payload := Classify(v); command {
	case CommandDisplayPower:
		d.state.On = payload == 1
		d.stats.Powers++
	case CommandSetColumn:
		d.state.Column = payload
		d.stats.Columns++
	case CommandSetPage:
		d.state.Page = payload
		d.stats.Pages++
	case CommandSetStartLine:
		d.state.StartLine = payload
		d.stats.StartLines++
	default:
		d.stats.Unknown++
		debugf("glcd: decoder ignored command byte %#02x", v)
		if d.Strict {
			return fmt.Errorf("%w %#02x", ErrUnknownCommand, v)
		}
	}
	return nil
}

// State returns the decoded controller state.
func (d *Decoder) State() DecoderState {
	return d.state
}

// Stats returns the transaction counters.
func (d *Decoder) Stats() Stats {
	return d.stats
}

// FrameBuffer returns the decoded panel memory. It is owned by the decoder.
func (d *Decoder) FrameBuffer() *FrameBuffer {
	return d.fb
}

// Emulator is a backend that decodes the bus instead of driving pins, and
// presents the decoded frame on a sink.
type Emulator struct {
	*Decoder
	sink Sink
}

// NewEmulator returns an emulated panel. The sink may be nil to only decode.
func NewEmulator(sink Sink) *Emulator {
	return &Emulator{
		Decoder: NewDecoder(),
		sink:    sink,
	}
}

func (e *Emulator) String() string {
	if e.sink == nil {
		return "emulator"
	}
	return fmt.Sprintf("emulator on %v", e.sink)
}

func (e *Emulator) Setup() error {
	return nil
}

func (e *Emulator) Set(pin Pin, level gpio.Level) error {
	e.Decoder.Set(pin, level)
	return nil
}

func (e *Emulator) Pulse() error {
	return e.Decoder.Strobe()
}

// EndFrame presents the decoded frame. A powered off display shows blank; the
// start line scrolls the rows vertically.
func (e *Emulator) EndFrame() error {
	if e.sink == nil {
		return nil
	}
	st := e.state
	for y := 0; y < Rows; y++ {
		row := (y + st.StartLine) % Rows
		for x := 0; x < Columns; x++ {
			if st.On {
				e.sink.Set(x, y, e.fb.At(x, row))
			} else {
				e.sink.Set(x, y, pixel.Off)
			}
		}
	}
	return e.sink.Flush()
}

// Alive reports whether the sink is still open.
func (e *Emulator) Alive() bool {
	return e.sink == nil || !e.sink.Closed()
}

// Close closes the sink when it is an [io.Closer].
func (e *Emulator) Close() error {
	if c, ok := e.sink.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
