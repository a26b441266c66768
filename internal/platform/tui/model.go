package tui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/games/connect4"
	"github.com/vovakirdan/tui-connect4/internal/storage"
)

// footerRows is the space reserved below the board for the help view.
const footerRows = 5

// Options configures a game model.
type Options struct {
	Theme  config.Theme
	Store  *storage.Store // nil disables result recording
	Origin string         // "local" or the SSH user name
	Logger *log.Logger    // nil discards logs
}

// Model is the Bubble Tea model for a single hot-seat game.
// It translates keys into column intents for the game and draws the result.
type Model struct {
	game     *connect4.Game
	snap     connect4.Snapshot
	cursor   int
	view     BoardView
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	store    *storage.Store
	origin   string
	logger   *log.Logger
	notice   string
	started  time.Time
	recorded bool // Whether the current game's result has been handled
	quitting bool
}

// NewModel creates a new Bubble Tea model with a fresh game.
func NewModel(opts Options, cfg core.RuntimeConfig) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	origin := opts.Origin
	if origin == "" {
		origin = "local"
	}

	h := help.New()
	h.Width = cfg.ScreenW

	game := connect4.New()
	return Model{
		game:    game,
		snap:    game.Snapshot(),
		cursor:  connect4.Columns / 2,
		view:    BoardView{Theme: opts.Theme},
		screen:  core.NewScreen(cfg.ScreenW, boardScreenHeight(cfg.ScreenH)),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		store:   opts.Store,
		origin:  origin,
		logger:  logger,
		started: time.Now(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, boardScreenHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	intent := m.keys.MapKey(msg)

	switch intent.Action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionLeft:
		m.cursor = core.Clamp(m.cursor-1, 0, connect4.Columns-1)

	case core.ActionRight:
		m.cursor = core.Clamp(m.cursor+1, 0, connect4.Columns-1)

	case core.ActionRestart:
		m.restart()

	case core.ActionDrop:
		column := m.cursor
		if intent.HasColumn() {
			column = intent.Column
		}
		m.drop(column)
	}

	return m, nil
}

// drop dispatches a column to the game. A rejected drop leaves the game
// unchanged and only sets a notice.
func (m *Model) drop(column int) {
	snap, err := m.game.ApplyDrop(column)
	if err != nil {
		m.logger.Debug("drop rejected", "column", column+1, "error", err)
		switch {
		case errors.Is(err, connect4.ErrGameOver):
			m.notice = "Game over. Press r to play again."
		case errors.Is(err, connect4.ErrInvalidMove):
			m.notice = fmt.Sprintf("Column %d is full.", column+1)
		default:
			m.notice = err.Error()
		}
		return
	}

	m.snap = snap
	m.cursor = column
	m.notice = ""

	if snap.Status.IsTerminal() {
		m.logger.Info("game over", "status", snap.Status, "moves", snap.Moves, "origin", m.origin)
		m.recordResult()
	}
}

// restart begins a new game, keeping the cursor where it is.
func (m *Model) restart() {
	m.snap = m.game.Restart()
	m.notice = ""
	m.started = time.Now()
	m.recorded = false
	m.logger.Debug("game restarted", "origin", m.origin)
}

// recordResult saves the finished game once. Failures are logged and ignored.
func (m *Model) recordResult() {
	if m.recorded {
		return
	}
	m.recorded = true

	if m.store == nil {
		return
	}
	outcome, ok := storage.OutcomeOf(m.snap.Status)
	if !ok {
		return
	}

	_, err := m.store.SaveResult(storage.Result{
		Outcome:      outcome,
		PlayerA:      m.view.Theme.NameA,
		PlayerB:      m.view.Theme.NameB,
		Moves:        m.snap.Moves,
		DurationSecs: int(time.Since(m.started).Seconds()),
		Origin:       m.origin,
	})
	if err != nil {
		m.logger.Warn("could not record result", "error", err)
	}
}

// Snapshot returns the state currently shown.
func (m Model) Snapshot() connect4.Snapshot {
	return m.snap
}

// Cursor returns the selected column.
func (m Model) Cursor() int {
	return m.cursor
}

// Notice returns the current one-line message, if any.
func (m Model) Notice() string {
	return m.notice
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.view.Draw(m.screen, m.snap, m.cursor, m.notice)

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		PaddingLeft(2)
	return RenderScreen(m.screen) + "\n\n" + helpStyle.Render(m.help.View(m.keys))
}

// boardScreenHeight returns the rows left for the board above the footer.
func boardScreenHeight(termHeight int) int {
	return core.Max(termHeight-footerRows, 0)
}

// Run starts the Bubble Tea program with a new game.
func Run(opts Options, cfg core.RuntimeConfig) error {
	model := NewModel(opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
