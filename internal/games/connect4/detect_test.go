package connect4

import "testing"

// boardWith returns a board with the given cells set to the player's piece.
// Cells are written directly so tests can build shapes that are not
// reachable by legal play.
func boardWith(p Player, cells ...Pos) *Board {
	var b Board
	for _, c := range cells {
		b.cells[c.Column][c.Row] = p.Cell()
	}
	return &b
}

func TestDetectWinEveryCellOfRun(t *testing.T) {
	tests := []struct {
		name string
		run  []Pos
	}{
		{"vertical", []Pos{{2, 0}, {2, 1}, {2, 2}, {2, 3}}},
		{"horizontal", []Pos{{1, 0}, {2, 0}, {3, 0}, {4, 0}}},
		{"horizontal at top", []Pos{{3, 5}, {4, 5}, {5, 5}, {6, 5}}},
		{"diagonal NE/SW", []Pos{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"diagonal NW/SE", []Pos{{6, 0}, {5, 1}, {4, 2}, {3, 3}}},
		{"diagonal touching top right", []Pos{{3, 2}, {4, 3}, {5, 4}, {6, 5}}},
		{"run of five", []Pos{{0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 2}}},
	}

	for _, tc := range tests {
		for _, player := range []Player{PlayerA, PlayerB} {
			b := boardWith(player, tc.run...)
			for _, last := range tc.run {
				t.Run(tc.name, func(t *testing.T) {
					got, ok := DetectWin(b, last.Column, last.Row)
					if !ok || got != player {
						t.Errorf("DetectWin(%d, %d) = %v, %v; expected %v, true\n%s",
							last.Column, last.Row, got, ok, player, b.String())
					}
				})
			}
		}
	}
}

func TestDetectWinNoWin(t *testing.T) {
	tests := []struct {
		name string
		b    *Board
		last Pos
	}{
		{"three vertical", boardWith(PlayerA, Pos{0, 0}, Pos{0, 1}, Pos{0, 2}), Pos{0, 2}},
		{"three horizontal", boardWith(PlayerA, Pos{0, 0}, Pos{1, 0}, Pos{2, 0}), Pos{1, 0}},
		{"gap in row", boardWith(PlayerA, Pos{0, 0}, Pos{1, 0}, Pos{3, 0}, Pos{4, 0}), Pos{4, 0}},
		{"three diagonal", boardWith(PlayerA, Pos{0, 0}, Pos{1, 1}, Pos{2, 2}), Pos{2, 2}},
		{"empty origin", boardWith(PlayerA, Pos{0, 0}, Pos{1, 0}, Pos{2, 0}, Pos{3, 0}), Pos{5, 5}},
		{"origin off board", boardWith(PlayerA, Pos{0, 0}), Pos{-1, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if p, ok := DetectWin(tc.b, tc.last.Column, tc.last.Row); ok {
				t.Errorf("DetectWin(%d, %d) = %v, expected no winner\n%s",
					tc.last.Column, tc.last.Row, p, tc.b.String())
			}
		})
	}
}

func TestDetectWinIgnoresOpponentPieces(t *testing.T) {
	b := boardWith(PlayerA, Pos{0, 0}, Pos{1, 0}, Pos{2, 0})
	b.cells[3][0] = CellB

	if _, ok := DetectWin(b, 3, 0); ok {
		t.Errorf("three A pieces next to a B piece should not win for B\n%s", b.String())
	}
}

func TestFindWinLine(t *testing.T) {
	b := boardWith(PlayerB, Pos{0, 0}, Pos{1, 0}, Pos{2, 0}, Pos{3, 0})

	w, ok := FindWin(b, 2, 0)
	if !ok {
		t.Fatal("FindWin() should report a win")
	}
	if w.Player != PlayerB {
		t.Errorf("Player = %v, expected PlayerB", w.Player)
	}

	expected := []Pos{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	if len(w.Line) != len(expected) {
		t.Fatalf("Line = %v, expected %v", w.Line, expected)
	}
	for i := range expected {
		if w.Line[i] != expected[i] {
			t.Errorf("Line[%d] = %v, expected %v", i, w.Line[i], expected[i])
		}
	}
}

func TestFindWinPrefersVertical(t *testing.T) {
	// The piece at (3, 3) completes both a column and a row.
	b := boardWith(PlayerA,
		Pos{3, 0}, Pos{3, 1}, Pos{3, 2}, Pos{3, 3},
		Pos{0, 3}, Pos{1, 3}, Pos{2, 3},
	)

	w, ok := FindWin(b, 3, 3)
	if !ok {
		t.Fatal("FindWin() should report a win")
	}
	for _, p := range w.Line {
		if p.Column != 3 {
			t.Errorf("expected the vertical line first, got %v", w.Line)
			break
		}
	}
}
