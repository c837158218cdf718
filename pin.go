package glcd

import "fmt"

// Pin identifies one line of the parallel bus.
type Pin uint8

// Bus lines.
const (
	PinRS  Pin = iota // register select, low for commands, high for data
	PinE              // enable, the strobe line
	PinD0             // data bit 0
	PinD1             // data bit 1
	PinD2             // data bit 2
	PinD3             // data bit 3
	PinD4             // data bit 4
	PinD5             // data bit 5
	PinD6             // data bit 6
	PinD7             // data bit 7
	PinCS1            // chip select, unit 0
	PinCS2            // chip select, unit 1
	PinRST            // reset, active low
	PinLED            // backlight
	NumPins
)

var pinNames = [NumPins]string{
	"RS", "E", "D0", "D1", "D2", "D3", "D4", "D5", "D6", "D7", "CS1", "CS2", "RST", "LED",
}

func (p Pin) String() string {
	if p < NumPins {
		return pinNames[p]
	}
	return fmt.Sprintf("Pin(%d)", uint8(p))
}

// DataPin returns the data line for bit i.
func DataPin(i int) Pin {
	return PinD0 + Pin(i&7)
}

// UnitPin returns the chip select line for a controller unit.
func UnitPin(unit int) Pin {
	return PinCS1 + Pin(unit&1)
}

// PinConfig names the GPIO line wired to each bus line. The names are resolved
// by the pin driver, see package conn.
type PinConfig struct {
	RS, E                          string
	D0, D1, D2, D3, D4, D5, D6, D7 string
	CS1, CS2                       string
	RST, LED                       string
}

// DefaultPinConfig is the reference wiring on the 40-pin Raspberry Pi header.
var DefaultPinConfig = PinConfig{
	RS:  "P1_24",
	E:   "P1_26",
	D0:  "P1_3",
	D1:  "P1_5",
	D2:  "P1_7",
	D3:  "P1_11",
	D4:  "P1_13",
	D5:  "P1_15",
	D6:  "P1_19",
	D7:  "P1_21",
	CS1: "P1_16",
	CS2: "P1_18",
	RST: "P1_8",
	LED: "P1_12",
}

// Pins returns the configured names indexed by [Pin].
func (c PinConfig) Pins() [NumPins]string {
	return [NumPins]string{
		PinRS:  c.RS,
		PinE:   c.E,
		PinD0:  c.D0,
		PinD1:  c.D1,
		PinD2:  c.D2,
		PinD3:  c.D3,
		PinD4:  c.D4,
		PinD5:  c.D5,
		PinD6:  c.D6,
		PinD7:  c.D7,
		PinCS1: c.CS1,
		PinCS2: c.CS2,
		PinRST: c.RST,
		PinLED: c.LED,
	}
}
