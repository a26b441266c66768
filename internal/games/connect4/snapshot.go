package connect4

// Snapshot is the read-only view handed to the presentation layer.
// It is a deep copy; changing it has no effect on the game.
type Snapshot struct {
	Cells    [Columns][Rows]Cell
	Turn     Player
	Status   Status
	Moves    int
	LastMove *Move
	WinLine  []Pos
}

// Snapshot returns the current public state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Cells:  g.board.Cells(),
		Turn:   g.turn,
		Status: g.status,
		Moves:  g.moves,
	}
	if g.lastMove != nil {
		m := *g.lastMove
		s.LastMove = &m
	}
	if len(g.winLine) > 0 {
		s.WinLine = append([]Pos(nil), g.winLine...)
	}
	return s
}

// Cell returns the value at (column, row), or Empty off the grid.
func (s Snapshot) Cell(column, row int) Cell {
	if !InBounds(column, row) {
		return Empty
	}
	return s.Cells[column][row]
}

// ColumnOpen reports whether the column still accepts a piece and the game
// is in progress. The presentation uses it to hide drop markers.
func (s Snapshot) ColumnOpen(column int) bool {
	if s.Status.IsTerminal() || column < 0 || column >= Columns {
		return false
	}
	return s.Cells[column][Rows-1] == Empty
}

// InWinLine reports whether the cell is part of the winning run.
func (s Snapshot) InWinLine(column, row int) bool {
	for _, p := range s.WinLine {
		if p.Column == column && p.Row == row {
			return true
		}
	}
	return false
}

// IsLastMove reports whether the cell holds the most recently dropped piece.
func (s Snapshot) IsLastMove(column, row int) bool {
	return s.LastMove != nil && s.LastMove.Column == column && s.LastMove.Row == row
}
