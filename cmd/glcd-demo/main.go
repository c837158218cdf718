package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/BeatGlow/glcd"
	"github.com/BeatGlow/glcd/conn"
	"github.com/BeatGlow/glcd/draw"
	"github.com/BeatGlow/glcd/font"
	"github.com/BeatGlow/glcd/framebuffer"
	"github.com/BeatGlow/glcd/pace"
	"github.com/BeatGlow/glcd/pixel"
	"github.com/BeatGlow/glcd/sink"
)

func main() {
	backendFlag := flag.String("backend", "emu", "Backend: gpio, emu or null")
	driverFlag := flag.String("driver", "periph", "GPIO pin driver: periph, rpio or cdev")
	chipFlag := flag.String("chip", conn.DefaultChip, "GPIO character device, for the cdev driver")
	sinkFlag := flag.String("sink", "terminal", "Emulator sink: terminal, image, fb, ssd1306 or none")
	fbFlag := flag.String("fb", "/dev/fb0", "Framebuffer device, for the fb sink")
	i2cFlag := flag.String("i2c", "", "I²C bus, for the ssd1306 sink (default: use first available)")
	pngFlag := flag.String("png", "glcd.png", "Snapshot written on exit, for the image sink")
	scaleFlag := flag.Int("scale", 4, "Snapshot scale, for the image sink")
	fontFlag := flag.String("font", "basic", "Glyphs: basic or mono")
	fpsFlag := flag.Float64("fps", 20, "Frame rate (0: as fast as possible)")
	framesFlag := flag.Int("frames", 0, "Number of frames to render (0: until interrupted)")
	strictFlag := flag.Bool("strict", false, "Fail on unrecognized command bytes, for the emulator")
	reselectFlag := flag.Bool("reselect", glcd.DefaultConfig.ReselectAfterPage, "Select the unit again after every page command")
	holdFlag := flag.Duration("hold", glcd.DefaultConfig.StrobeHold, "Enable strobe hold time")
	startFlag := flag.Int("start-line", glcd.DefaultConfig.StartLine, "Display start line")
	backlightFlag := flag.Bool("backlight", glcd.DefaultConfig.Backlight, "Turn the backlight on")

	pins := glcd.DefaultPinConfig
	for _, p := range []struct {
		name  string
		value *string
	}{
		{"rs", &pins.RS}, {"e", &pins.E},
		{"d0", &pins.D0}, {"d1", &pins.D1}, {"d2", &pins.D2}, {"d3", &pins.D3},
		{"d4", &pins.D4}, {"d5", &pins.D5}, {"d6", &pins.D6}, {"d7", &pins.D7},
		{"cs1", &pins.CS1}, {"cs2", &pins.CS2}, {"rst", &pins.RST}, {"led", &pins.LED},
	} {
		flag.StringVar(p.value, p.name, *p.value, fmt.Sprintf("%s GPIO pin", strings.ToUpper(p.name)))
	}
	flag.Parse()

	config := &glcd.Config{
		Pins:              pins,
		StrobeHold:        *holdFlag,
		StartLine:         *startFlag,
		Backlight:         *backlightFlag,
		ReselectAfterPage: *reselectFlag,
	}

	var (
		backend glcd.Backend
		snap    *sink.Image
		err     error
	)
	var glyphs glcd.Glyphs
	switch *fontFlag {
	case "basic":
		glyphs = font.Basic()
	case "mono":
		if glyphs, err = font.Mono(11); err != nil {
			fatal(err)
		}
	default:
		fatal(fmt.Errorf("unsupported font %q", *fontFlag))
	}

	switch *backendFlag {
	case "gpio":
		var driver conn.Driver
		if driver, err = openDriver(*driverFlag, *chipFlag); err != nil {
			fatal(err)
		}
		backend = glcd.NewActuator(driver, pins, config.StrobeHold)
	case "emu":
		var s glcd.Sink
		if s, snap, err = openSink(*sinkFlag, *fbFlag, *i2cFlag, *scaleFlag); err != nil {
			fatal(err)
		}
		e := glcd.NewEmulator(s)
		e.Strict = *strictFlag
		backend = e
	case "null":
		backend = glcd.NewNull()
	default:
		fatal(fmt.Errorf("unsupported backend %q", *backendFlag))
	}

	d, err := glcd.New(backend, config)
	if err != nil {
		log.Printf("%v, falling back to the null backend", err)
		if d, err = glcd.New(glcd.NewNull(), config); err != nil {
			fatal(err)
		}
	}
	defer func() {
		if err := d.Close(); err != nil {
			log.Printf("close: %v", err)
		}
		if snap != nil {
			if err := snap.Save(*pngFlag); err != nil {
				log.Printf("snapshot: %v", err)
			} else {
				log.Printf("snapshot of %d frames written to %s", snap.Frames(), *pngFlag)
			}
		}
	}()
	log.Printf("using %s", d)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	var (
		frame = glcd.NewFrameBuffer()
		p     = pace.New(*fpsFlag)
		start = time.Now()
	)
	for n := 0; *framesFlag == 0 || n < *framesFlag; n++ {
		select {
		case <-interrupt:
			return
		default:
		}
		if !d.Alive() {
			log.Println("backend is gone, stopping")
			return
		}

		demo(frame, glyphs, n, time.Since(start))
		if err = d.RenderDiff(frame); err != nil {
			log.Printf("render: %v", err)
			return
		}
		if p.Frame() {
			if e, ok := d.Backend().(*glcd.Emulator); ok {
				debugf("%s, %s", p, e.Stats())
			} else {
				debugf("%s", p)
			}
		}
	}
}

// demo draws frame n: a border, a bouncing box and a frame counter.
func demo(frame *glcd.FrameBuffer, glyphs glcd.Glyphs, n int, elapsed time.Duration) {
	frame.Clear()
	draw.Rectangle(frame, image.Rect(0, 0, glcd.Columns, glcd.Rows), pixel.On)

	const size = 12
	var (
		x = bounce(n*2, glcd.Columns-size-2) + 1
		y = bounce(n, glcd.Rows-size-2) + 1
	)
	draw.Box(frame, image.Rect(x, y, x+size, y+size), pixel.On)
	draw.Line(frame, image.Pt(1, glcd.Rows-2), image.Pt(x, y), pixel.On)

	frame.SetCursor(4, 4)
	frame.BlitText(fmt.Sprintf("FRAME %d", n), glyphs)
	frame.SetCursor(4, 13)
	frame.BlitText(elapsed.Truncate(time.Second).String(), glyphs)
	draw.Invert(frame, image.Rect(2, 2, 4+10*(glcd.GlyphWidth+1), 22))
}

// bounce moves back and forth between 0 and limit.
func bounce(n, limit int) int {
	if limit <= 0 {
		return 0
	}
	n %= 2 * limit
	if n > limit {
		return 2*limit - n
	}
	return n
}

func openDriver(name, chip string) (conn.Driver, error) {
	switch name {
	case "periph":
		return conn.OpenPeriph()
	case "rpio":
		return conn.OpenRPIO()
	case "cdev":
		return conn.OpenCdev(chip)
	default:
		return nil, fmt.Errorf("unsupported pin driver %q", name)
	}
}

func openSink(name, fb, bus string, scale int) (glcd.Sink, *sink.Image, error) {
	switch name {
	case "terminal":
		return sink.NewTerminal(os.Stdout, glcd.Columns, glcd.Rows, true), nil, nil
	case "image":
		s := sink.NewImage(glcd.Columns, glcd.Rows, scale)
		return s, s, nil
	case "fb":
		s, err := framebuffer.Open(fb, glcd.Columns, glcd.Rows)
		if err != nil {
			return nil, nil, err
		}
		return s, nil, nil
	case "ssd1306":
		s, err := sink.OpenSSD1306(bus, glcd.Columns, glcd.Rows)
		if err != nil {
			return nil, nil, err
		}
		return s, nil, nil
	case "none":
		return nil, nil, nil
	default:
		return nil, nil, fmt.Errorf("unsupported sink %q", name)
	}
}

var debug = os.Getenv("GLCD_DEBUG") != ""

func debugf(format string, args ...any) {
	if debug {
		log.Printf(format, args...)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
