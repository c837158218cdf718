package conn

import (
	"errors"
	"testing"
)

func TestParseGPIO(t *testing.T) {
	tests := []struct {
		name    string
		want    int
		wantErr bool
	}{
		{"17", 17, false},
		{"GPIO17", 17, false},
		{"gpio4", 4, false},
		{"P1_11", 17, false},
		{"p1_24", 8, false},
		{" P1_3 ", 2, false},
		{"P1_1", 0, true},
		{"P1_x", 0, true},
		{"LED", 0, true},
		{"-1", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGPIO(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrPinName) {
					t.Fatalf("expected ErrPinName, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("expected GPIO%d, got GPIO%d", tt.want, got)
			}
		})
	}
}

func TestHeaderUnique(t *testing.T) {
	seen := make(map[int]int)
	for pos, gpio := range header {
		if other, dup := seen[gpio]; dup {
			t.Errorf("GPIO%d mapped from both P1_%d and P1_%d", gpio, pos, other)
		}
		seen[gpio] = pos
	}
	if len(header) != 28 {
		t.Errorf("expected 28 GPIO header positions, got %d", len(header))
	}
}
