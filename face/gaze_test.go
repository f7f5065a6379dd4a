package face

import (
	"testing"
)

func TestGazeCellInRange(t *testing.T) {
	for id := 1; id <= 21; id++ {
		row, col := GazeCell(id)
		if row < 1 || row > 5 {
			t.Errorf("id %d: row %d outside [1,5]", id, row)
		}
		if col < 1 || col > 5 {
			t.Errorf("id %d: col %d outside [1,5]", id, col)
		}
	}
}

func TestGazePoint(t *testing.T) {
	tests := []struct {
		id   int
		want Point
	}{
		{1, Point{10, 10}},
		{3, Point{50, 10}},
		{5, Point{90, 10}},
		// the rest pose uses 11, which the arithmetic puts at the left of
		// the middle row; 13 is the centre cell
		{11, Point{10, 50}},
		{13, Point{50, 50}},
		{21, Point{10, 90}},
		// no bounds check, these land outside the eye
		{0, Point{-10, -10}},
		{22, Point{30, 90}},
		{-4, Point{10, -10}},
	}
	for _, tt := range tests {
		if got := GazePoint(tt.id); got != tt.want {
			t.Errorf("GazePoint(%d) = %+v, want %+v", tt.id, got, tt.want)
		}
	}
}

func TestPointCSS(t *testing.T) {
	x, y := GazePoint(21).CSS()
	if x != "10%" || y != "90%" {
		t.Errorf("expected 10%%/90%%, got %s/%s", x, y)
	}
}
