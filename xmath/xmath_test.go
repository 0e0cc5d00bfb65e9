package xmath

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d; want 5", got)
	}
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Clamp(-5, 0, 10) = %d; want 0", got)
	}
	if got := Clamp(50, 0, 10); got != 10 {
		t.Errorf("Clamp(50, 0, 10) = %d; want 10", got)
	}
}

func TestSign(t *testing.T) {
	if Sign(5) != 1 {
		t.Errorf("Sign(5) = %d; want 1", Sign(5))
	}
	if Sign(-5) != -1 {
		t.Errorf("Sign(-5) = %d; want -1", Sign(-5))
	}
	if Sign(0) != 0 {
		t.Errorf("Sign(0) = %d; want 0", Sign(0))
	}
}

func TestPowersOf10(t *testing.T) {
	tests := []int{-300, -1, 0, 1, 2, 10, 100, 308}
	for _, k := range tests {
		got := PowersOf10(k)
		want := math.Pow(10, float64(k))
		if math.Abs(got-want) > math.Abs(want)*1e-9 {
			t.Errorf("PowersOf10(%d) = %v; want ~%v", k, got, want)
		}
	}
}

func TestPowersOf10OutOfRange(t *testing.T) {
	if PowersOf10(DoubleExpMin-1) != 0 {
		t.Errorf("PowersOf10 below range should be 0")
	}
	if !math.IsInf(PowersOf10(DoubleExpMax+1), 1) {
		t.Errorf("PowersOf10 above range should be +Inf")
	}
}

func TestNlz64(t *testing.T) {
	tests := []struct {
		x    uint64
		want int
	}{
		{0, 64},
		{1, 63},
		{1 << 63, 0},
		{1 << 62, 1},
		{0xFF, 56},
	}
	for _, tt := range tests {
		if got := Nlz64(tt.x); got != tt.want {
			t.Errorf("Nlz64(%#x) = %d; want %d", tt.x, got, tt.want)
		}
	}
}
