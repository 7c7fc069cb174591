package utils

import (
	"math"
	"testing"
)

func TestMapRange(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		inMin  float64
		inMax  float64
		outMin float64
		outMax float64
		want   float64
	}{
		{"lower bound", -1, -1, 1, 50, 140, 50},
		{"upper bound", 1, -1, 1, 50, 140, 140},
		{"midpoint", 0, -1, 1, 50, 140, 95},
		{"inverted output", 0.25, 0, 1, 10, 0, 7.5},
		{"outside input is not clamped", 2, 0, 1, 0, 10, 20},
		{"degenerate input range", 5, 3, 3, 7, 9, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapRange(tt.value, tt.inMin, tt.inMax, tt.outMin, tt.outMax)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("MapRange() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(180); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("Radians(180) = %f, want π", got)
	}
	if got := Radians(6.5); math.Abs(got-0.11344640137963142) > 1e-12 {
		t.Errorf("Radians(6.5) = %f", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3) = %f, want 0", got)
	}
	if got := Clamp(13, 0, 10); got != 10 {
		t.Errorf("Clamp(13) = %f, want 10", got)
	}
	if got := Clamp(4, 0, 10); got != 4 {
		t.Errorf("Clamp(4) = %f, want 4", got)
	}
}
