package connect4

// direction is a unit step (dc, dr) across the grid.
type direction struct {
	dc, dr int
}

// axes lists each line through a cell as a pair of opposing directions.
// The order is the evaluation order of the detector.
var axes = [4][2]direction{
	{{0, -1}, {0, 1}},  // vertical
	{{1, 1}, {-1, -1}}, // NE / SW
	{{-1, 1}, {1, -1}}, // NW / SE
	{{1, 0}, {-1, 0}},  // horizontal
}

// Win describes a completed line. Line holds every cell of the run,
// ordered from one end to the other.
type Win struct {
	Player Player
	Line   []Pos
}

// DetectWin reports whether the piece at (column, row) completes a line of
// at least ToWin pieces. Only the four lines through that cell are examined,
// which is sufficient when it is called after every drop.
func DetectWin(b *Board, column, row int) (Player, bool) {
	w, ok := FindWin(b, column, row)
	if !ok {
		return 0, false
	}
	return w.Player, true
}

// FindWin is DetectWin that also returns the cells of the winning run.
func FindWin(b *Board, column, row int) (Win, bool) {
	if !InBounds(column, row) {
		return Win{}, false
	}
	player, ok := b.at(column, row).Player()
	if !ok {
		return Win{}, false
	}

	for _, axis := range axes {
		forward := countRun(b, column, row, axis[0])
		backward := countRun(b, column, row, axis[1])
		if forward+backward < ToWin-1 {
			continue
		}

		line := make([]Pos, 0, forward+backward+1)
		for i := backward; i > 0; i-- {
			line = append(line, Pos{Column: column + axis[1].dc*i, Row: row + axis[1].dr*i})
		}
		line = append(line, Pos{Column: column, Row: row})
		for i := 1; i <= forward; i++ {
			line = append(line, Pos{Column: column + axis[0].dc*i, Row: row + axis[0].dr*i})
		}
		return Win{Player: player, Line: line}, true
	}
	return Win{}, false
}

// countRun counts consecutive cells matching the origin, walking outward
// from (column, row) in direction d. The origin itself is not counted.
func countRun(b *Board, column, row int, d direction) int {
	want := b.at(column, row)
	count := 0
	c, r := column+d.dc, row+d.dr
	for InBounds(c, r) && b.at(c, r) == want {
		count++
		c += d.dc
		r += d.dr
	}
	return count
}
