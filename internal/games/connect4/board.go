package connect4

import (
	"fmt"
	"strings"
)

// Board is the 7x6 grid indexed by (column, row), row 0 at the bottom.
// The zero value is an empty board. Column heights are always derived from
// the cells so there is a single source of truth.
type Board struct {
	cells [Columns][Rows]Cell
}

// InBounds reports whether (column, row) lies on the grid.
func InBounds(column, row int) bool {
	return column >= 0 && column < Columns && row >= 0 && row < Rows
}

// DropAllowed reports whether a piece can be dropped into the column.
func (b *Board) DropAllowed(column int) bool {
	if column < 0 || column >= Columns {
		return false
	}
	return b.cells[column][Rows-1] == Empty
}

// Drop places the player's piece in the lowest empty row of the column
// and returns that row. The board is left untouched on error.
func (b *Board) Drop(column int, player Player) (int, error) {
	if !b.DropAllowed(column) {
		return -1, invalidMoveError(column)
	}

	row := b.Height(column)
	b.cells[column][row] = player.Cell()
	return row, nil
}

// invalidMoveError explains why a drop into column was refused.
func invalidMoveError(column int) error {
	if column < 0 || column >= Columns {
		return fmt.Errorf("column %d out of range: %w", column, ErrInvalidMove)
	}
	return fmt.Errorf("column %d is full: %w", column, ErrInvalidMove)
}

// CellAt returns the value at (column, row).
func (b *Board) CellAt(column, row int) (Cell, error) {
	if !InBounds(column, row) {
		return Empty, fmt.Errorf("cell (%d, %d): %w", column, row, ErrOutOfRange)
	}
	return b.cells[column][row], nil
}

// at is the unchecked read used by the detector after its own bounds test.
func (b *Board) at(column, row int) Cell {
	return b.cells[column][row]
}

// Height returns the number of pieces stacked in the column.
// Out-of-range columns report 0.
func (b *Board) Height(column int) int {
	if column < 0 || column >= Columns {
		return 0
	}
	n := 0
	for row := range Rows {
		if b.cells[column][row] == Empty {
			break
		}
		n++
	}
	return n
}

// Filled returns the number of non-empty cells on the board.
func (b *Board) Filled() int {
	n := 0
	for col := range Columns {
		n += b.Height(col)
	}
	return n
}

// IsFull reports whether no column accepts another piece.
func (b *Board) IsFull() bool {
	for col := range Columns {
		if b.DropAllowed(col) {
			return false
		}
	}
	return true
}

// OpenColumns returns the columns that still accept a drop, in order.
func (b *Board) OpenColumns() []int {
	cols := make([]int, 0, Columns)
	for col := range Columns {
		if b.DropAllowed(col) {
			cols = append(cols, col)
		}
	}
	return cols
}

// Cells returns a copy of the grid.
func (b *Board) Cells() [Columns][Rows]Cell {
	return b.cells
}

// String renders the board top row first, e.g. for test failure output.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((Columns + 1) * Rows)
	for row := Rows - 1; row >= 0; row-- {
		for col := range Columns {
			sb.WriteRune(b.cells[col][row].Rune())
		}
		if row > 0 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}
