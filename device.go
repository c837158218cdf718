package glcd

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// Device is a panel behind a backend. It keeps the last committed frame to send
// only the differences on the next one.
//
// A Device is not safe for concurrent use; frames must be submitted by one
// caller at a time.
type Device struct {
	b         Backend
	config    Config
	committed *FrameBuffer
	unit      int // unit selected during a render pass, -1 for none
	closed    bool
}

// New sets up the backend and initialises the panel: reset, backlight, start
// line, a blank frame, and display on. A nil config uses [DefaultConfig].
//
// Failing setup leaves the backend unusable; callers may fall back to [NewNull].
func New(b Backend, config *Config) (*Device, error) {
	if config == nil {
		config = new(Config)
		*config = DefaultConfig
	}
	if err := b.Setup(); err != nil {
		return nil, fmt.Errorf("glcd: %s setup: %w", b, err)
	}

	d := &Device{
		b:         b,
		config:    *config,
		committed: NewFrameBuffer(),
		unit:      -1,
	}
	if err := d.init(); err != nil {
		_ = b.Close()
		return nil, err
	}
	return d, nil
}

func (d *Device) init() (err error) {
	if err = d.Reset(); err != nil {
		return
	}
	if err = d.SetBacklight(d.config.Backlight); err != nil {
		return
	}
	if err = d.SetStartLine(d.config.StartLine); err != nil {
		return
	}
	if err = d.CommitFull(NewFrameBuffer()); err != nil {
		return
	}
	return d.Show(true)
}

func (d *Device) String() string {
	return fmt.Sprintf("%dx%d GLCD on %s", Columns, Rows, d.b)
}

// Backend returns the backend the device talks to.
func (d *Device) Backend() Backend {
	return d.b
}

// Committed returns the frame the panel is showing. It must not be modified.
func (d *Device) Committed() *FrameBuffer {
	return d.committed
}

// Alive reports whether the backend can still display frames. Render loops
// should check it between frames.
func (d *Device) Alive() bool {
	return !d.closed && d.b.Alive()
}

// CommitFull sends every byte of fb, unit by unit and page by page, and makes it
// the committed frame.
func (d *Device) CommitFull(fb *FrameBuffer) (err error) {
	if d.closed {
		return ErrClosed
	}
	defer d.abort(&err)
	for unit := 0; unit < Units; unit++ {
		if err = d.selectUnit(unit); err != nil {
			return err
		}
		for page := 0; page < Pages; page++ {
			if err = d.setPage(unit, page); err != nil {
				return err
			}
			if err = SetColumn(d.b, 0); err != nil {
				return err
			}
			for _, v := range fb.Page(page)[unit*UnitColumns : (unit+1)*UnitColumns] {
				if err = WritePixel(d.b, v); err != nil {
					return err
				}
			}
		}
	}
	if err = d.deselect(); err != nil {
		return err
	}
	d.committed.CopyFrom(fb)
	return d.b.EndFrame()
}

// RenderDiff sends only the bytes of target that differ from the committed
// frame, then makes target the committed frame.
//
// Each unit is selected once. After a page address the column is positioned on
// the first changed byte; contiguous bytes rely on the controller advancing the
// column, a gap costs one set column command. On error the committed frame is
// left as it was and the panel may be partially updated, use CommitFull to
// resynchronise.
func (d *Device) RenderDiff(target *FrameBuffer) (err error) {
	if d.closed {
		return ErrClosed
	}
	defer d.abort(&err)
	var (
		runs   = Diff(d.committed, target)
		page   = -1
		column = -1
	)
	for _, r := range runs {
		if r.Unit != d.unit {
			if err = d.selectUnit(r.Unit); err != nil {
				return err
			}
			page = -1
		}
		if r.Page != page {
			if err = d.setPage(r.Unit, r.Page); err != nil {
				return err
			}
			page, column = r.Page, -1
		}
		if r.Column != column {
			if err = SetColumn(d.b, r.Column); err != nil {
				return err
			}
		}
		off := r.Unit*UnitColumns + r.Column
		for _, v := range target.Page(r.Page)[off : off+r.Length] {
			if err = WritePixel(d.b, v); err != nil {
				return err
			}
		}
		column = r.Column + r.Length
	}
	if err = d.deselect(); err != nil {
		return err
	}
	debugf("glcd: diff render sent %d runs", len(runs))
	d.committed.CopyFrom(target)
	return d.b.EndFrame()
}

// Clear blanks the panel with a full commit.
func (d *Device) Clear() error {
	return d.CommitFull(NewFrameBuffer())
}

// Show toggles the display on or off. Panel memory is kept while off.
func (d *Device) Show(on bool) error {
	if d.closed {
		return ErrClosed
	}
	return SetDisplayPower(d.b, on)
}

// SetStartLine sets the RAM row shown at the top of the display.
func (d *Device) SetStartLine(line int) error {
	if d.closed {
		return ErrClosed
	}
	return SetStartLine(d.b, line)
}

// SetBacklight switches the LED backlight.
func (d *Device) SetBacklight(on bool) error {
	if d.closed {
		return ErrClosed
	}
	return d.b.Set(PinLED, gpio.Level(on))
}

// Reset pulses the reset line. The controllers come out of reset with the
// display off and start line 0.
func (d *Device) Reset() error {
	if d.closed {
		return ErrClosed
	}
	if err := d.b.Set(PinRST, gpio.Low); err != nil {
		return err
	}
	time.Sleep(d.config.StrobeHold)
	return d.b.Set(PinRST, gpio.High)
}

// Close turns the display off and releases the backend.
func (d *Device) Close() error {
	if d.closed {
		return nil
	}
	if err := d.Show(false); err != nil {
		_ = d.b.Close()
		d.closed = true
		return err
	}
	d.closed = true
	return d.b.Close()
}

func (d *Device) selectUnit(unit int) error {
	if d.unit == unit {
		return nil
	}
	if d.unit >= 0 {
		if err := DeselectUnits(d.b); err != nil {
			return err
		}
	}
	if err := SelectUnit(d.b, unit); err != nil {
		return err
	}
	d.unit = unit
	return nil
}

// abort forgets the selected unit after a failed pass, so the next pass asserts
// its chip select again.
func (d *Device) abort(err *error) {
	if *err != nil {
		d.unit = -1
	}
}

func (d *Device) deselect() error {
	if d.unit < 0 {
		return nil
	}
	d.unit = -1
	return DeselectUnits(d.b)
}

// setPage addresses a page on the selected unit. Set page releases the chip
// select lines; the renderer keeps treating the unit as selected unless the
// panel needs it asserted again.
func (d *Device) setPage(unit, page int) error {
	if err := SetPage(d.b, page); err != nil {
		return err
	}
	if d.config.ReselectAfterPage {
		return SelectUnit(d.b, unit)
	}
	return nil
}
