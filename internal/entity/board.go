package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
)

type Cell struct {
	Position Position
	Mark     Mark
}

func (that Cell) Occupied() bool {
	return that.Mark != NoMark
}

// Board is a fixed 3x3 grid. It's a value: Place returns an updated copy and leaves the receiver intact.
type Board struct {
	cells [BoardSize][BoardSize]Mark
}

func (that Board) CellAt(pos Position) (Cell, error) {
	if !pos.Valid() {
		return Cell{}, fmt.Errorf("%w: %s", apperror.ErrOutOfRange, pos)
	}

	return Cell{Position: pos, Mark: that.cells[pos.Row][pos.Col]}, nil
}

// IsEmpty - an out-of-range position has no cell, so it's never empty.
func (that Board) IsEmpty(pos Position) bool {
	return pos.Valid() && that.cells[pos.Row][pos.Col] == NoMark
}

func (that Board) IsFull() bool {
	for _, row := range that.cells {
		for _, mark := range row {
			if mark == NoMark {
				return false
			}
		}
	}

	return true
}

func (that Board) Place(pos Position, mark Mark) (Board, error) {
	if !pos.Valid() {
		return that, fmt.Errorf("%w: %s", apperror.ErrOutOfRange, pos)
	}

	if !mark.Valid() {
		return that, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	if that.cells[pos.Row][pos.Col] != NoMark {
		return that, fmt.Errorf("%w: %s", apperror.ErrIllegalMove, pos)
	}

	that.cells[pos.Row][pos.Col] = mark

	return that, nil
}

func (that Board) Reset() Board {
	return Board{}
}

// Cells returns all nine cells in row-major order.
func (that Board) Cells() []Cell {
	cells := make([]Cell, 0, BoardSize*BoardSize)
	for row := range that.cells {
		for col, mark := range that.cells[row] {
			cells = append(cells, Cell{Position: Position{Row: row, Col: col}, Mark: mark})
		}
	}

	return cells
}

func (that Board) Rows() [BoardSize][BoardSize]Mark {
	return that.cells
}

// Completes reports whether every position of line holds mark.
func (that Board) Completes(line Line, mark Mark) bool {
	for _, pos := range line {
		if that.cells[pos.Row][pos.Col] != mark {
			return false
		}
	}

	return mark != NoMark
}
