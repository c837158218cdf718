package glcd

import (
	"reflect"
	"testing"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		set  func(*FrameBuffer)
		want []Run
	}{
		{"equal", func(*FrameBuffer) {}, nil},
		{"single", func(fb *FrameBuffer) { fb.SetByte(2, 5, 0x01) }, []Run{
			{Unit: 0, Page: 2, Column: 5, Length: 1},
		}},
		{"contiguous", func(fb *FrameBuffer) {
			for x := 10; x < 14; x++ {
				fb.SetByte(0, x, 0xff)
			}
		}, []Run{
			{Unit: 0, Page: 0, Column: 10, Length: 4},
		}},
		{"gap", func(fb *FrameBuffer) {
			fb.SetByte(0, 1, 0xff)
			fb.SetByte(0, 3, 0xff)
		}, []Run{
			{Unit: 0, Page: 0, Column: 1, Length: 1},
			{Unit: 0, Page: 0, Column: 3, Length: 1},
		}},
		{"unit boundary", func(fb *FrameBuffer) {
			fb.SetByte(7, UnitColumns-1, 0x80)
			fb.SetByte(7, UnitColumns, 0x80)
		}, []Run{
			{Unit: 0, Page: 7, Column: UnitColumns - 1, Length: 1},
			{Unit: 1, Page: 7, Column: 0, Length: 1},
		}},
		{"order", func(fb *FrameBuffer) {
			fb.SetByte(1, Columns-1, 0x01)
			fb.SetByte(3, 0, 0x01)
			fb.SetByte(0, UnitColumns-1, 0x01)
		}, []Run{
			{Unit: 0, Page: 0, Column: UnitColumns - 1, Length: 1},
			{Unit: 0, Page: 3, Column: 0, Length: 1},
			{Unit: 1, Page: 1, Column: UnitColumns - 1, Length: 1},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := NewFrameBuffer()
			tt.set(target)
			if got := Diff(NewFrameBuffer(), target); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected runs %v, got %v", tt.want, got)
			}
		})
	}
}
