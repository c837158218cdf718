package pixel

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestMonoVerticalLSBImage(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewMonoVerticalLSBImage(size.X, size.Y)
	}, MonoModel)
}

func TestCRGB16Image(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewCRGB16Image(size.X, size.Y)
	}, CRGB16Model)
}

func TestMonoVerticalLSBImageBytes(t *testing.T) {
	i := NewMonoVerticalLSBImage(128, 64)
	if v := i.Pages(); v != 8 {
		t.Fatalf("expected 8 pages, got %d", v)
	}

	i.Set(5, 17, On)
	if v := i.ByteAt(2, 5); v != 0x02 {
		t.Errorf("expected byte at page 2 column 5 to be 0x02, got %#02x", v)
	}

	i.SetByte(7, 127, 0x80)
	if v := i.At(127, 63); v != On {
		t.Errorf("expected pixel (127,63) to be on, got %v", v)
	}
	if v := i.Page(7)[127]; v != 0x80 {
		t.Errorf("expected page 7 column 127 to be 0x80, got %#02x", v)
	}

	// Out of range access is dropped.
	i.SetByte(8, 0, 0xff)
	i.SetByte(0, 128, 0xff)
	i.SetByte(-1, 0, 0xff)
	if v := i.ByteAt(8, 0); v != 0 {
		t.Errorf("expected out of range read to be 0, got %#02x", v)
	}
}

func TestMonoVerticalLSBImageOddHeight(t *testing.T) {
	i := NewMonoVerticalLSBImage(4, 12)
	if v := i.Pages(); v != 2 {
		t.Fatalf("expected 2 pages, got %d", v)
	}
	if v := len(i.Pix); v != 8 {
		t.Fatalf("expected 8 bytes, got %d", v)
	}
	i.Set(3, 11, On)
	if v := i.ByteAt(1, 3); v != 0x08 {
		t.Errorf("expected byte at page 1 column 3 to be 0x08, got %#02x", v)
	}
}

func testImage(t *testing.T, f func(image.Point) Image, model color.Model) {
	t.Helper()
	testCases := []image.Point{
		{},
		image.Pt(1, 1),
		image.Pt(2, 2),
		image.Pt(64, 64),
		image.Pt(128, 64),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := f(test)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}

			if v := i.ColorModel(); v != model {
				it.Errorf("expected color model %T, got %T", model, v)
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						i.Set(x, y, c)
						if v := i.ColorModel().Convert(c); i.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
							return
						}
					}
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				for y := -test.Y; y < test.Y*2; y++ {
					for x := -test.X; x < test.X*2; x++ {
						i.Set(x, y, testRandomColor())
						if x < 0 || y < 0 {
							if v := i.At(x, y); v != color.Transparent {
								itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", x, y, v)
								return
							}
						}
					}
				}
			})

			it.Run("fill", func(itt *testing.T) {
				c := testRandomColor()
				i.Fill(c)
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := i.ColorModel().Convert(c); i.At(x, y) != v {
						itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
						return
					}
				}
			})

			it.Run("clear", func(itt *testing.T) {
				i.Clear()
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := monoModel(i.At(x, y)); v != Off {
						itt.Fatalf("pixel (%d,%d) is not black", x, y)
					}
				}
			})
		})
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(255)),
		G: uint8(rand.Intn(255)),
		B: uint8(rand.Intn(255)),
		A: 0xFF,
	}
}
