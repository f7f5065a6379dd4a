package face

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestParseSequence(t *testing.T) {
	data := []byte(`[
		{"mouth": 3, "eye": 11, "lid": 1, "duration": 250, "char": "a"},
		{"mouth": 1, "eye": 21, "lid": 4}
	]`)
	seq, err := ParseSequence(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := Sequence{
		{Mouth: 3, Eye: 11, Lid: 1, Duration: 250},
		{Mouth: 1, Eye: 21, Lid: 4},
	}
	if len(seq) != len(want) {
		t.Fatalf("expected %d frames, got %d", len(want), len(seq))
	}
	for i := range want {
		if seq[i] != want[i] {
			t.Errorf("frame %d: expected %+v, got %+v", i, want[i], seq[i])
		}
	}
	if seq[1].Hold() != DefaultHoldMs*time.Millisecond {
		t.Errorf("expected default hold, got %v", seq[1].Hold())
	}
}

func TestParseSequenceEmpty(t *testing.T) {
	seq, err := ParseSequence([]byte(`[]`))
	if err != nil {
		t.Fatalf("expected empty sequence to be valid, got %v", err)
	}
	if len(seq) != 0 {
		t.Errorf("expected no frames, got %d", len(seq))
	}
}

func TestParseSequenceInvalid(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		index int
		field string
	}{
		{"not json", `not json`, -1, ""},
		{"object", `{"frames": []}`, -1, ""},
		{"null", `null`, -1, ""},
		{"number element", `[1]`, 0, ""},
		{"missing mouth", `[{"eye": 1, "lid": 1}]`, 0, "mouth"},
		{"mouth too high", `[{"mouth": 6, "eye": 1, "lid": 1}]`, 0, "mouth"},
		{"eye zero", `[{"mouth": 1, "eye": 1, "lid": 1}, {"mouth": 1, "eye": 0, "lid": 1}]`, 1, "eye"},
		{"eye too high", `[{"mouth": 1, "eye": 22, "lid": 1}]`, 0, "eye"},
		{"fractional lid", `[{"mouth": 1, "eye": 1, "lid": 1.5}]`, 0, "lid"},
		{"lid too high", `[{"mouth": 1, "eye": 1, "lid": 5}]`, 0, "lid"},
		{"string mouth", `[{"mouth": "3", "eye": 1, "lid": 1}]`, 0, "mouth"},
		{"negative duration", `[{"mouth": 1, "eye": 1, "lid": 1, "duration": -1}]`, 0, "duration"},
		{"string duration", `[{"mouth": 1, "eye": 1, "lid": 1, "duration": "fast"}]`, 0, "duration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSequence([]byte(tt.data))
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Index != tt.index {
				t.Errorf("expected index %d, got %d (%v)", tt.index, verr.Index, verr)
			}
			if verr.Field != tt.field {
				t.Errorf("expected field %q, got %q (%v)", tt.field, verr.Field, verr)
			}
		})
	}
}

func TestFrameHold(t *testing.T) {
	tests := []struct {
		duration float64
		want     time.Duration
	}{
		{0, 300 * time.Millisecond},
		{500, 500 * time.Millisecond},
		{12.5, 12500 * time.Microsecond},
		{-5, 0},
		{1e13, time.Duration(math.MaxInt64)},
		{1e300, time.Duration(math.MaxInt64)},
	}
	for _, tt := range tests {
		if got := (Frame{Duration: tt.duration}).Hold(); got != tt.want {
			t.Errorf("Hold(%v) = %v, want %v", tt.duration, got, tt.want)
		}
	}
}
