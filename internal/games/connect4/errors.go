package connect4

import "errors"

var (
	// ErrInvalidMove is returned for a drop into a column that is out of
	// range or already full.
	ErrInvalidMove = errors.New("invalid move")

	// ErrGameOver is returned for a drop after the game was won or tied.
	ErrGameOver = errors.New("game is over")

	// ErrOutOfRange is returned for a cell read outside the grid.
	ErrOutOfRange = errors.New("position out of range")
)
