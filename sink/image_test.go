package sink

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"github.com/BeatGlow/glcd/pixel"
)

func TestImage(t *testing.T) {
	s := NewImage(4, 2, 3)
	s.Set(1, 0, pixel.On)
	if s.Frame().BitAt(1, 0) {
		t.Error("expected pixel to be invisible before flush")
	}
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	if !s.Frame().BitAt(1, 0) || s.Frames() != 1 {
		t.Error("expected flushed pixel to be visible")
	}

	snap := s.Snapshot()
	if b := snap.Bounds(); b.Dx() != 12 || b.Dy() != 6 {
		t.Fatalf("expected 12x6 snapshot, got %s", b)
	}
	if c := snap.NRGBAAt(4, 1); c.R != 0xff {
		t.Errorf("expected scaled pixel to be lit, got %v", c)
	}
	if c := snap.NRGBAAt(1, 1); c.R != 0 {
		t.Errorf("expected scaled pixel to be dark, got %v", c)
	}

	var buf bytes.Buffer
	if err := s.WritePNG(&buf); err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds() != snap.Bounds() {
		t.Errorf("expected PNG bounds %s, got %s", snap.Bounds(), decoded.Bounds())
	}

	if err = s.Close(); err != nil {
		t.Fatal(err)
	}
	if !s.Closed() {
		t.Error("expected sink to be closed")
	}
	if err = s.Flush(); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}
