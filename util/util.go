package util

import (
	"github.com/fogleman/ease"
)

// TransitionLut returns steps eased positions running from 0 up to and
// including 1.
func TransitionLut(steps int) []float64 {
	if steps < 1 {
		return []float64{1}
	}
	lut := make([]float64, steps)
	for i := 0; i < steps; i++ {
		lut[i] = ease.InOutQuad(float64(i+1) / float64(steps))
	}
	return lut
}

// Steps returns how many frames at frameRate fit into durationMs, at least 1.
func Steps(durationMs int, frameRate float64) int {
	n := int(float64(durationMs) * frameRate / 1000)
	if n < 1 {
		return 1
	}
	return n
}
