package glcd

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// Command byte prefixes, payload bits shown as lower case.
const (
	cmdDisplayPower byte = 0x3E // 0011 111d
	cmdSetColumn    byte = 0x40 // 01cc cccc
	cmdSetPage      byte = 0xB8 // 1011 1ppp
	cmdSetStartLine byte = 0xC0 // 11ll llll
)

// Command is the kind of a command byte.
type Command uint8

// Command kinds.
const (
	CommandUnknown Command = iota
	CommandDisplayPower
	CommandSetColumn
	CommandSetPage
	CommandSetStartLine
)

func (c Command) String() string {
	switch c {
	case CommandDisplayPower:
		return "display power"
	case CommandSetColumn:
		return "set column"
	case CommandSetPage:
		return "set page"
	case CommandSetStartLine:
		return "set start line"
	default:
		return "unknown"
	}
}

// commandTable is matched top to bottom, the narrowest prefix first.
var commandTable = [...]struct {
	command Command
	prefix  byte
	payload byte
}{
	{CommandDisplayPower, cmdDisplayPower, 0x01},
	{CommandSetColumn, cmdSetColumn, UnitColumns - 1},
	{CommandSetPage, cmdSetPage, Pages - 1},
	{CommandSetStartLine, cmdSetStartLine, Rows - 1},
}

// Classify decodes a command byte into its kind and payload. Bytes matching no
// prefix are CommandUnknown with the raw byte as payload.
func Classify(b byte) (Command, int) {
	for _, c := range commandTable {
		if b&^c.payload == c.prefix {
			return c.command, int(b & c.payload)
		}
	}
	return CommandUnknown, int(b)
}

// SelectUnit asserts the chip select line of one unit. It does not release the
// other line, call [DeselectUnits] first when switching units.
func SelectUnit(b Backend, unit int) error {
	if unit < 0 || unit >= Units {
		return fmt.Errorf("%w: %d", ErrUnit, unit)
	}
	return b.Set(UnitPin(unit), gpio.High)
}

// DeselectUnits releases both chip select lines.
func DeselectUnits(b Backend) error {
	for unit := 0; unit < Units; unit++ {
		if err := b.Set(UnitPin(unit), gpio.Low); err != nil {
			return err
		}
	}
	return nil
}

// SetPage sets the page address of the selected unit and releases both units.
func SetPage(b Backend, page int) error {
	if err := command(b, cmdSetPage|byte(page&(Pages-1))); err != nil {
		return err
	}
	return DeselectUnits(b)
}

// SetColumn sets the column address (within the unit) of the selected unit. The
// unit stays selected for the data writes that follow.
func SetColumn(b Backend, column int) error {
	return command(b, cmdSetColumn|byte(column&(UnitColumns-1)))
}

// WritePixel writes one vertical pixel byte at the current address. The
// controller advances the column address afterwards.
func WritePixel(b Backend, v byte) error {
	if err := b.Set(PinRS, gpio.High); err != nil {
		return err
	}
	if err := drive(b, v); err != nil {
		return err
	}
	return b.Pulse()
}

// SetDisplayPower turns the display of both units on or off.
func SetDisplayPower(b Backend, on bool) error {
	v := cmdDisplayPower
	if on {
		v |= 1
	}
	return broadcast(b, v)
}

// SetStartLine sets the RAM row shown at the top of the display, on both units.
func SetStartLine(b Backend, line int) error {
	return broadcast(b, cmdSetStartLine|byte(line&(Rows-1)))
}

func broadcast(b Backend, v byte) error {
	for unit := 0; unit < Units; unit++ {
		if err := b.Set(UnitPin(unit), gpio.High); err != nil {
			return err
		}
	}
	if err := command(b, v); err != nil {
		return err
	}
	return DeselectUnits(b)
}

func command(b Backend, v byte) error {
	if err := b.Set(PinRS, gpio.Low); err != nil {
		return err
	}
	if err := drive(b, v); err != nil {
		return err
	}
	return b.Pulse()
}

// drive puts v on the data lines.
func drive(b Backend, v byte) error {
	for i := 0; i < 8; i++ {
		if err := b.Set(DataPin(i), gpio.Level(v&(1<<i) != 0)); err != nil {
			return err
		}
	}
	return nil
}
