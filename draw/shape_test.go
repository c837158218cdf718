package draw

import (
	"image"
	"image/color"
	"testing"
)

func count(i *image.Gray) (n int) {
	for _, v := range i.Pix {
		if v != 0 {
			n++
		}
	}
	return
}

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		a, b image.Point
		want int
	}{
		{"point", image.Pt(3, 3), image.Pt(3, 3), 1},
		{"horizontal", image.Pt(0, 2), image.Pt(9, 2), 10},
		{"vertical reversed", image.Pt(4, 9), image.Pt(4, 0), 10},
		{"diagonal", image.Pt(0, 0), image.Pt(7, 7), 8},
		{"diagonal up", image.Pt(0, 7), image.Pt(7, 0), 8},
		{"shallow", image.Pt(0, 0), image.Pt(15, 3), 16},
		{"steep", image.Pt(0, 0), image.Pt(3, 15), 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := image.NewGray(image.Rect(0, 0, 16, 16))
			Line(i, tt.a, tt.b, color.White)
			if n := count(i); n != tt.want {
				t.Errorf("expected %d pixels, got %d", tt.want, n)
			}
			if i.GrayAt(tt.a.X, tt.a.Y).Y == 0 || i.GrayAt(tt.b.X, tt.b.Y).Y == 0 {
				t.Error("expected both end points to be set")
			}
		})
	}
}

func TestRectangle(t *testing.T) {
	i := image.NewGray(image.Rect(0, 0, 16, 16))
	Rectangle(i, image.Rect(2, 3, 10, 8), color.White)
	// perimeter of an 8x5 outline
	if n := count(i); n != 2*8+2*5-4 {
		t.Errorf("expected %d pixels, got %d", 2*8+2*5-4, n)
	}
	if i.GrayAt(9, 7).Y == 0 {
		t.Error("expected bottom right corner (9,7) to be set")
	}
	if i.GrayAt(10, 8).Y != 0 {
		t.Error("expected exclusive max (10,8) to be clear")
	}
}

func TestBoxAndInvert(t *testing.T) {
	i := image.NewGray(image.Rect(0, 0, 16, 16))
	Box(i, image.Rect(0, 0, 4, 4), color.White)
	if n := count(i); n != 16 {
		t.Fatalf("expected 16 pixels, got %d", n)
	}
	Invert(i, image.Rect(0, 0, 8, 4))
	if n := count(i); n != 16 {
		t.Fatalf("expected 16 pixels after invert, got %d", n)
	}
	if i.GrayAt(0, 0).Y != 0 || i.GrayAt(5, 0).Y == 0 {
		t.Error("expected invert to swap the box and its neighbour")
	}
}
