package framebuffer

import (
	"encoding/binary"
	"fmt"
	"image"
	"log"
	"os"
	"syscall"
	"unsafe"

	"github.com/BeatGlow/glcd/draw"
	"github.com/BeatGlow/glcd/internal/ioctl"
	"github.com/BeatGlow/glcd/pixel"
)

// From <linux/fb.h>
const (
	fbioGetVScreenInfo ioctl.Command = 0x4600
	fbioGetFScreenInfo ioctl.Command = 0x4602
)

// Open a Linux framebuffer device (fbdev) by name, typically /dev/fb[0..x], as
// a sink for w by h pixel frames.
func Open(name string, w, h int) (*Sink, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}

	var (
		fix fixScreenInfo
		vs  varScreenInfo
	)
	if err = ioctl.Call(f.Fd(), fbioGetFScreenInfo, uintptr(unsafe.Pointer(&fix))); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("framebuffer: %s: %w", name, err)
	}
	if err = ioctl.Call(f.Fd(), fbioGetVScreenInfo, uintptr(unsafe.Pointer(&vs))); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("framebuffer: %s: %w", name, err)
	}

	mem, err := syscall.Mmap(int(f.Fd()), 0, int(fix.SmemLen), syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("framebuffer: mmap %s: %w", name, err)
	}

	screen, err := screenImage(mem, &fix, &vs)
	if err != nil {
		_ = syscall.Munmap(mem)
		_ = f.Close()
		return nil, fmt.Errorf("framebuffer: %s: %w", name, err)
	}

	s := New(screen, w, h)
	s.name = name
	s.release = func() error {
		if err := syscall.Munmap(mem); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}
	log.Printf("framebuffer: %s %dx%d %d bpp, frames at %s", name, vs.Xres, vs.Yres, vs.BitsPerPixel, s.target)
	return s, nil
}

// screenImage wraps the mapped memory in an image of the screen pixel format.
func screenImage(mem []byte, fix *fixScreenInfo, vs *varScreenInfo) (draw.Image, error) {
	var (
		rect   = image.Rect(0, 0, int(vs.Xres), int(vs.Yres))
		stride = int(fix.LineLength)
	)
	if stride*rect.Dy() > len(mem) {
		return nil, fmt.Errorf("%d bytes of memory for %dx%d", len(mem), rect.Dx(), rect.Dy())
	}
	switch {
	case vs.BitsPerPixel == 16 &&
		vs.Red.Offset == 11 && vs.Red.Length == 5 &&
		vs.Green.Offset == 5 && vs.Green.Length == 6 &&
		vs.Blue.Offset == 0 && vs.Blue.Length == 5:
		return &pixel.CRGB16Image{
			Buffer: pixel.Buffer{Rect: rect, Pix: mem, Stride: stride},
			Order:  binary.LittleEndian,
		}, nil

	case vs.BitsPerPixel == 32 &&
		vs.Red.Offset == 0 && vs.Green.Offset == 8 && vs.Blue.Offset == 16:
		return &image.RGBA{Pix: mem, Stride: stride, Rect: rect}, nil

	case vs.BitsPerPixel == 32 &&
		vs.Red.Offset == 16 && vs.Green.Offset == 8 && vs.Blue.Offset == 0:
		return &bgra{image.RGBA{Pix: mem, Stride: stride, Rect: rect}}, nil
	}
	return nil, fmt.Errorf("unsupported %d bpp pixel format", vs.BitsPerPixel)
}

type fixScreenInfo struct {
	ID         [16]byte  // Identification string eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved Planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Caps       uint16    // FB_CAP_
	Reserved   [2]uint16 // Reserved for future compatibility
}

type bitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

type varScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha bitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}
