package face

import (
	"strconv"
)

// Gaze indices are laid out row by row on a 5x5 grid. Only 1-21 are
// meaningful positions for the head; anything else still maps
// arithmetically and lands outside the eye.
const gridWidth = 5

// Point is a position inside an eye, in percent of the eye box.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CSS returns the point as CSS percentages.
func (p Point) CSS() (string, string) {
	return pct(p.X), pct(p.Y)
}

func pct(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// GazeCell returns the 1-based grid row and column of a gaze index.
func GazeCell(id int) (row int, col int) {
	n := id - 1
	row = floorDiv(n, gridWidth) + 1
	col = n%gridWidth + 1
	return row, col
}

// GazePoint maps a gaze index to a pupil position.
func GazePoint(id int) Point {
	row, col := GazeCell(id)
	return Point{
		X: float64(50 + (col-3)*20),
		Y: float64(50 + (row-3)*20),
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
