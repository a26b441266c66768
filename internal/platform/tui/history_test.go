package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-connect4/internal/storage"
)

func TestHistoryRows(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)
	results := []storage.Result{
		{ID: 2, Outcome: storage.OutcomeTie, PlayerA: "Purple", PlayerB: "Orange", Moves: 42, DurationSecs: 125, Origin: "local", CreatedAt: created},
		{ID: 1, Outcome: storage.OutcomeB, PlayerA: "Purple", PlayerB: "Orange", Moves: 12, DurationSecs: 30, Origin: "alice", CreatedAt: created},
	}

	rows := HistoryRows(results)
	if len(rows) != 2 {
		t.Fatalf("HistoryRows() returned %d rows, expected 2", len(rows))
	}

	tests := []struct {
		row  int
		col  int
		want string
	}{
		{0, 0, "2"},
		{0, 1, "tie"},
		{0, 2, "Purple vs Orange"},
		{0, 3, "42"},
		{0, 4, "2m5s"},
		{0, 6, "Mar 14 09:26"},
		{1, 1, "Orange"},
		{1, 5, "alice"},
	}
	for _, tc := range tests {
		if got := rows[tc.row][tc.col]; got != tc.want {
			t.Errorf("rows[%d][%d] = %q, expected %q", tc.row, tc.col, got, tc.want)
		}
	}
}

func TestTallyLine(t *testing.T) {
	line := TallyLine(storage.Tally{Games: 5, WinsA: 3, WinsB: 1, Ties: 1})
	expected := "5 games: first player 3, second player 1, ties 1"
	if line != expected {
		t.Errorf("TallyLine() = %q, expected %q", line, expected)
	}
}

func TestHistoryModelEmptyAndQuit(t *testing.T) {
	m := NewHistoryModel(nil, storage.Tally{}, 100, 30)

	if !strings.Contains(m.View(), "No games recorded yet.") {
		t.Error("expected empty-state message")
	}

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should quit the history view")
	}
	if updated.(HistoryModel).View() != "" {
		t.Error("View() should be empty after quitting")
	}
}
