package util

import (
	"testing"
)

func TestTransitionLut(t *testing.T) {
	lut := TransitionLut(10)
	if len(lut) != 10 {
		t.Fatalf("expected 10 steps, got %d", len(lut))
	}
	if lut[len(lut)-1] != 1 {
		t.Errorf("expected last step 1, got %f", lut[len(lut)-1])
	}
	for i := 1; i < len(lut); i++ {
		if lut[i] < lut[i-1] {
			t.Errorf("lut not monotonic at %d: %f < %f", i, lut[i], lut[i-1])
		}
	}
	if lut[0] <= 0 {
		t.Errorf("expected first step above 0, got %f", lut[0])
	}
}

func TestTransitionLutDegenerate(t *testing.T) {
	lut := TransitionLut(0)
	if len(lut) != 1 || lut[0] != 1 {
		t.Errorf("expected [1], got %v", lut)
	}
}

func TestSteps(t *testing.T) {
	tests := []struct {
		ms   int
		rate float64
		want int
	}{
		{120, 30, 3},
		{1000, 30, 30},
		{10, 30, 1},
		{0, 30, 1},
	}
	for _, tt := range tests {
		if got := Steps(tt.ms, tt.rate); got != tt.want {
			t.Errorf("Steps(%d, %v) = %d, want %d", tt.ms, tt.rate, got, tt.want)
		}
	}
}
