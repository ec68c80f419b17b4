package entity

import "fmt"

// Board boundaries.
const (
	BorderMin = 0
	BorderMax = 2

	BoardSize = BorderMax - BorderMin + 1
)

type Position struct {
	Row int
	Col int
}

func (that Position) Valid() bool {
	return that.Row >= BorderMin && that.Row <= BorderMax && that.Col >= BorderMin && that.Col <= BorderMax
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Line is one of the winning triples of positions.
type Line [3]Position

func (that Line) Contains(pos Position) bool {
	for _, p := range that {
		if p == pos {
			return true
		}
	}
	return false
}

// WinLines - rows top to bottom, columns left to right, main diagonal, anti-diagonal.
// The order decides which line is reported when one move completes two lines.
var WinLines = [8]Line{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// LinesThrough returns the winning lines passing through pos, keeping the WinLines order.
func LinesThrough(pos Position) []Line {
	var lines []Line
	for _, line := range WinLines {
		if line.Contains(pos) {
			lines = append(lines, line)
		}
	}

	return lines
}
