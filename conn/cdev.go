package conn

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
	"periph.io/x/conn/v3/gpio"
)

// DefaultChip is the GPIO character device used when none is given.
const DefaultChip = "gpiochip0"

// Cdev drives pins through the GPIO character device.
type Cdev struct {
	chip  *gpiocdev.Chip
	lines []*gpiocdev.Line
}

// OpenCdev opens the named GPIO chip, such as "gpiochip0".
func OpenCdev(chip string) (*Cdev, error) {
	if chip == "" {
		chip = DefaultChip
	}
	c, err := gpiocdev.NewChip(chip, gpiocdev.WithConsumer("glcd"))
	if err != nil {
		return nil, fmt.Errorf("conn: open %s: %w", chip, err)
	}
	return &Cdev{chip: c}, nil
}

func (d *Cdev) String() string {
	return fmt.Sprintf("gpiocdev %s", d.chip.Name)
}

func (d *Cdev) Open(name string) (Pin, error) {
	offset, err := ParseGPIO(name)
	if err != nil {
		return nil, err
	}
	line, err := d.chip.RequestLine(offset, gpiocdev.AsOutput(0))
	if err != nil {
		return nil, fmt.Errorf("conn: request line %d: %w", offset, err)
	}
	d.lines = append(d.lines, line)
	return cdevLine{line}, nil
}

// Close releases all requested lines and the chip.
func (d *Cdev) Close() (err error) {
	for _, line := range d.lines {
		if closeErr := line.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	d.lines = nil
	if closeErr := d.chip.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return
}

type cdevLine struct {
	*gpiocdev.Line
}

func (l cdevLine) Out(level gpio.Level) error {
	var v int
	if level {
		v = 1
	}
	return l.Line.SetValue(v)
}
