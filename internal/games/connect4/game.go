package connect4

import "fmt"

// Game is a single Connect Four match. It exclusively owns its board and
// turn/status fields; callers observe them through Snapshot.
// A Game is not safe for concurrent use.
type Game struct {
	board    Board
	turn     Player
	status   Status
	moves    int
	lastMove *Move
	winLine  []Pos
}

// New creates a game with an empty board and PlayerA to move.
func New() *Game {
	g := &Game{}
	g.reset()
	return g
}

// reset reinitializes every field in one assignment.
func (g *Game) reset() {
	*g = Game{
		turn:   PlayerA,
		status: InProgressStatus(),
	}
}

// Restart discards the current match and starts a fresh one.
func (g *Game) Restart() Snapshot {
	g.reset()
	return g.Snapshot()
}

// ApplyDrop drops a piece for the player to move into column and advances
// the state machine. On error nothing changes.
func (g *Game) ApplyDrop(column int) (Snapshot, error) {
	if g.status.IsTerminal() {
		return g.Snapshot(), fmt.Errorf("drop in column %d: %w", column, ErrGameOver)
	}
	if !g.board.DropAllowed(column) {
		return g.Snapshot(), invalidMoveError(column)
	}

	player := g.turn
	row, err := g.board.Drop(column, player)
	if err != nil {
		return g.Snapshot(), err
	}
	g.moves++
	g.lastMove = &Move{Player: player, Column: column, Row: row}

	switch win, won := FindWin(&g.board, column, row); {
	case won:
		g.status = WonStatus(win.Player)
		g.winLine = win.Line
	case g.board.IsFull():
		g.status = TieStatus()
	default:
		g.turn = player.Other()
	}

	return g.Snapshot(), nil
}

// DropAllowed reports whether ApplyDrop(column) would succeed.
func (g *Game) DropAllowed(column int) bool {
	return !g.status.IsTerminal() && g.board.DropAllowed(column)
}

// Turn returns the player to move. After a terminal status it is the
// player who made the last move.
func (g *Game) Turn() Player {
	return g.turn
}

// Status returns the current game status.
func (g *Game) Status() Status {
	return g.status
}

// Moves returns the number of successful drops since the last restart.
func (g *Game) Moves() int {
	return g.moves
}

// CellAt reads a single cell of the board.
func (g *Game) CellAt(column, row int) (Cell, error) {
	return g.board.CellAt(column, row)
}
