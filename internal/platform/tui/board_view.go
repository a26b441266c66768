package tui

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/games/connect4"
)

// Board layout constants
const (
	cellWidth   = 4                              // Screen columns per board column
	boardWidth  = connect4.Columns*cellWidth + 1 // Frame included
	boardHeight = connect4.Rows + 2              // Frame included
	layoutWidth = boardWidth

	// title, gap, marker, board, numbers, gap, status, notice
	layoutRows = 3 + boardHeight + 2 + 2
)

const markerRune = '▼'

// BoardView draws a snapshot onto a screen buffer.
type BoardView struct {
	Theme config.Theme
}

// Draw renders the snapshot centered on the screen.
// cursor is the selected column; notice is an optional one-line message.
func (v BoardView) Draw(s *core.Screen, snap connect4.Snapshot, cursor int, notice string) {
	s.Clear()

	if s.Width() < layoutWidth || s.Height() < layoutRows {
		y := s.Height() / 2
		s.DrawTextCentered(y-1, "Terminal too small")
		s.DrawTextCentered(y, fmt.Sprintf("Resize to at least %dx%d", layoutWidth, layoutRows))
		return
	}

	area := s.Bounds().CenterIn(layoutWidth, layoutRows)
	y := area.Y

	drawCentered(s, y, "CONNECT FOUR", v.Theme.FrameColor)
	y += 2

	// Marker over the cursor column, in the color of the player to move
	if snap.ColumnOpen(cursor) {
		s.SetCell(columnX(area, cursor), y, markerRune, v.playerColor(snap.Turn))
	}
	y++

	frame := core.NewRect(area.X, y, boardWidth, boardHeight)
	s.DrawBox(frame, v.Theme.FrameColor)
	for col := range connect4.Columns {
		for row := range connect4.Rows {
			v.drawCell(s, snap, col, row, columnX(area, col), frame.Y+connect4.Rows-row)
		}
	}
	y = frame.Bottom()

	// Column numbers, hidden for columns that cannot take a piece
	for col := range connect4.Columns {
		if snap.ColumnOpen(col) {
			c := core.ColorGray
			if col == cursor {
				c = v.playerColor(snap.Turn)
			}
			s.SetCell(columnX(area, col), y, rune('1'+col), c)
		}
	}
	y += 2

	v.drawStatus(s, y, snap.Status, snap.Turn)
	y++

	switch {
	case notice != "":
		drawCentered(s, y, notice, core.ColorYellow)
	case snap.Status.IsTerminal():
		drawCentered(s, y, "Press r to play again", core.ColorGray)
	}
}

// drawCell draws one grid position at screen coordinates (x, y).
func (v BoardView) drawCell(s *core.Screen, snap connect4.Snapshot, col, row, x, y int) {
	p, ok := snap.Cell(col, row).Player()
	if !ok {
		s.SetCell(x, y, v.Theme.Empty, v.Theme.EmptyColor)
		return
	}

	c := v.playerColor(p)
	glyph := v.Theme.Piece
	if snap.InWinLine(col, row) {
		glyph = v.Theme.WinPiece
	}
	s.SetCell(x, y, glyph, c)

	if snap.IsLastMove(col, row) {
		s.SetCell(x-1, y, '[', c)
		s.SetCell(x+1, y, ']', c)
	}
}

// drawStatus draws the message line with the player's name in their color.
func (v BoardView) drawStatus(s *core.Screen, y int, status connect4.Status, turn connect4.Player) {
	var name, suffix string
	var c core.Color

	switch status.Phase {
	case connect4.Won:
		name, suffix, c = v.playerName(status.Winner), " wins!", v.playerColor(status.Winner)
	case connect4.Tie:
		suffix = "Tie game!"
	default:
		name, suffix, c = v.playerName(turn), "'s turn", v.playerColor(turn)
	}

	width := utf8.RuneCountInString(name) + utf8.RuneCountInString(suffix)
	x := (s.Width() - width) / 2
	x = s.DrawTextColor(x, y, name, c)
	s.DrawText(x, y, suffix)
}

func (v BoardView) playerName(p connect4.Player) string {
	if p == connect4.PlayerB {
		return v.Theme.NameB
	}
	return v.Theme.NameA
}

func (v BoardView) playerColor(p connect4.Player) core.Color {
	if p == connect4.PlayerB {
		return v.Theme.ColorB
	}
	return v.Theme.ColorA
}

// columnX returns the screen x of a board column's center.
func columnX(area core.Rect, col int) int {
	return area.X + col*cellWidth + cellWidth/2
}

// drawCentered draws colored text centered horizontally at row y.
func drawCentered(s *core.Screen, y int, text string, c core.Color) {
	x := (s.Width() - utf8.RuneCountInString(text)) / 2
	s.DrawTextColor(x, y, text, c)
}
