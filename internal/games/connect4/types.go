// Package connect4 implements the Connect Four rules: a 7x6 board, win
// detection through the last placed piece, and the turn/status state machine.
// It has no dependencies outside the standard library so the platform layer
// can drive and render it without the game knowing about terminals.
package connect4

import "fmt"

// Board dimensions. Fixed; the game does not support other sizes.
const (
	Columns = 7
	Rows    = 6
	ToWin   = 4
)

// Player identifies one of the two sides.
type Player uint8

const (
	PlayerA Player = iota + 1
	PlayerB
)

// Other returns the opposing player.
func (p Player) Other() Player {
	if p == PlayerA {
		return PlayerB
	}
	return PlayerA
}

// Cell returns the cell value occupied by this player's pieces.
func (p Player) Cell() Cell {
	switch p {
	case PlayerA:
		return CellA
	case PlayerB:
		return CellB
	default:
		return Empty
	}
}

// String returns a human-readable name for the player.
func (p Player) String() string {
	switch p {
	case PlayerA:
		return "Player A"
	case PlayerB:
		return "Player B"
	default:
		return "Unknown"
	}
}

// Cell is the content of a single board position.
type Cell uint8

const (
	Empty Cell = iota
	CellA
	CellB
)

// Player returns the owner of the cell. ok is false for Empty.
func (c Cell) Player() (p Player, ok bool) {
	switch c {
	case CellA:
		return PlayerA, true
	case CellB:
		return PlayerB, true
	default:
		return 0, false
	}
}

// Rune returns the single-character form used by Board.String.
func (c Cell) Rune() rune {
	switch c {
	case CellA:
		return 'A'
	case CellB:
		return 'B'
	default:
		return '.'
	}
}

// Phase is the coarse state of a game.
type Phase uint8

const (
	InProgress Phase = iota
	Won
	Tie
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Tie:
		return "tie"
	default:
		return "unknown"
	}
}

// Status is InProgress, Won(Winner) or Tie. Winner is only meaningful
// when Phase is Won.
type Status struct {
	Phase  Phase
	Winner Player
}

// InProgressStatus returns the status of a game that still accepts drops.
func InProgressStatus() Status {
	return Status{Phase: InProgress}
}

// WonStatus returns the terminal status for a game won by p.
func WonStatus(p Player) Status {
	return Status{Phase: Won, Winner: p}
}

// TieStatus returns the terminal status for a full board with no winner.
func TieStatus() Status {
	return Status{Phase: Tie}
}

// IsTerminal reports whether the game no longer accepts drops.
func (s Status) IsTerminal() bool {
	return s.Phase == Won || s.Phase == Tie
}

func (s Status) String() string {
	if s.Phase == Won {
		return fmt.Sprintf("won(%s)", s.Winner)
	}
	return s.Phase.String()
}

// Pos addresses a board cell by column and row (row 0 is the bottom).
type Pos struct {
	Column int
	Row    int
}

// Move records a successful drop.
type Move struct {
	Player Player
	Column int
	Row    int
}
