package face

import (
	"math"
	"time"
)

// DefaultHoldMs is how long a frame stays up when it carries no duration.
const DefaultHoldMs = 300

// Frame is one discrete expression instruction for the face.
type Frame struct {
	Mouth    int     `json:"mouth" yaml:"mouth"`
	Eye      int     `json:"eye" yaml:"eye"`
	Lid      int     `json:"lid" yaml:"lid"`
	Duration float64 `json:"duration,omitempty" yaml:"duration,omitempty"`
}

// Hold returns how long the frame is held before the next one is shown.
// A zero duration falls back to DefaultHoldMs; holds too long for a
// time.Duration saturate.
func (f Frame) Hold() time.Duration {
	if f.Duration == 0 {
		return DefaultHoldMs * time.Millisecond
	}
	if f.Duration < 0 {
		return 0
	}
	ns := f.Duration * float64(time.Millisecond)
	if ns >= math.MaxInt64 {
		return math.MaxInt64
	}
	return time.Duration(ns)
}

// Sequence is an ordered list of frames. Order is playback order.
type Sequence []Frame

// TotalHold sums the hold time of every frame.
func (s Sequence) TotalHold() time.Duration {
	var total time.Duration
	for _, f := range s {
		total += f.Hold()
	}
	return total
}

// Rest is the neutral pose shown before anything has been played.
var Rest = Frame{Mouth: 1, Eye: 11, Lid: 1}

// DemoSequence returns the built-in six frame demo.
func DemoSequence() Sequence {
	return Sequence{
		{Mouth: 1, Eye: 11, Lid: 1, Duration: 500},
		{Mouth: 3, Eye: 11, Lid: 1, Duration: 300},
		{Mouth: 4, Eye: 11, Lid: 1, Duration: 300},
		{Mouth: 5, Eye: 3, Lid: 4, Duration: 600},  // wow
		{Mouth: 1, Eye: 11, Lid: 3, Duration: 1000}, // thinking, eyes shut
		{Mouth: 1, Eye: 11, Lid: 1, Duration: 500},
	}
}
