package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/storage"
)

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model listing finished matches.
type HistoryModel struct {
	results  []storage.Result
	tally    storage.Tally
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history model from already loaded results.
func NewHistoryModel(results []storage.Result, tally storage.Tally, width, height int) HistoryModel {
	m := HistoryModel{
		results: results,
		tally:   tally,
		help:    help.New(),
		keys:    DefaultHistoryKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.table.SetRows(HistoryRows(results))
	return m
}

// createTable creates a new table sized to the terminal.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Winner", Width: 14},
		{Title: "Players", Width: 24},
		{Title: "Moves", Width: 6},
		{Title: "Time", Width: 7},
		{Title: "Where", Width: 10},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// HistoryRows converts results to table rows, newest first as given.
func HistoryRows(results []storage.Result) []table.Row {
	rows := make([]table.Row, len(results))
	for i, r := range results {
		winner := r.Winner()
		if winner == "" {
			winner = "tie"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			winner,
			fmt.Sprintf("%s vs %s", r.PlayerA, r.PlayerB),
			fmt.Sprintf("%d", r.Moves),
			formatDuration(r.DurationSecs),
			r.Origin,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// TallyLine summarizes wins and ties.
func TallyLine(t storage.Tally) string {
	return fmt.Sprintf("%d games: first player %d, second player %d, ties %d",
		t.Games, t.WinsA, t.WinsB, t.Ties)
}

func formatDuration(secs int) string {
	return (time.Duration(secs) * time.Second).String()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(HistoryRows(m.results))
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass scrolling and other messages to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("MATCH HISTORY"))
	b.WriteString("\n")
	b.WriteString(TallyLine(m.tally))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.results) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(tableStyle.Render(emptyStyle.Render("No games recorded yet.\nFinish a game to see it here!")))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunHistory loads recent results and shows them in an interactive table.
func RunHistory(store *storage.Store, limit, width, height int) error {
	results, err := store.RecentResults(limit)
	if err != nil {
		return err
	}
	tally, err := store.Tally()
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewHistoryModel(results, tally, width, height),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}
