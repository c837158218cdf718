package pixel

import (
	"image/color"
	"testing"
)

func TestMono(t *testing.T) {
	for y := 0; y < 2; y++ {
		t.Run("", func(it *testing.T) {
			c := Off
			if y > 0 {
				c = On
			}
			r, g, b, _ := c.RGBA()
			y *= 0xF
			want := uint32(y | y<<4 | y<<8 | y<<12)
			if r != want {
				t.Errorf("expected red to be %#04x, got %#04x", want, r)
			}
			if g != want {
				t.Errorf("expected green to be %#04x, got %#04x", want, g)
			}
			if b != want {
				t.Errorf("expected blue to be %#04x, got %#04x", want, b)
			}
		})
	}
}

func TestMonoModel(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want Mono
	}{
		{"black", color.Black, Off},
		{"white", color.White, On},
		{"transparent", color.Transparent, Off},
		{"dark gray", color.Gray{Y: 0x40}, Off},
		{"light gray", color.Gray{Y: 0xc0}, On},
		{"mono", On, On},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if v := MonoModel.Convert(tt.c); v != tt.want {
				t.Errorf("expected %v, got %v", tt.want, v)
			}
		})
	}
}

func TestCRGB16Model(t *testing.T) {
	if v := CRGB16Model.Convert(On); v != (CRGB16{0xffff}) {
		t.Errorf("expected white, got %#+v", v)
	}
	if v := CRGB16Model.Convert(color.RGBA{R: 0xff, A: 0xff}); v != (CRGB16{0xf800}) {
		t.Errorf("expected red, got %#+v", v)
	}
}
