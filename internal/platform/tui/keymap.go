package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-connect4/internal/core"
)

// KeyMap defines the key bindings for a game in progress.
// It doubles as the help.KeyMap rendered in the footer.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Drop    key.Binding
	Column  key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Drop, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Drop, k.Column},
		{k.Restart, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Drop: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "drop"),
		),
		Column: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
			key.WithHelp("1-7", "drop in column"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new game"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to an intent.
// Number keys carry their zero-based column; every other drop targets the cursor.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Intent {
	switch {
	case key.Matches(msg, k.Quit):
		return core.NewIntent(core.ActionQuit)
	case key.Matches(msg, k.Left):
		return core.NewIntent(core.ActionLeft)
	case key.Matches(msg, k.Right):
		return core.NewIntent(core.ActionRight)
	case key.Matches(msg, k.Drop):
		return core.NewIntent(core.ActionDrop)
	case key.Matches(msg, k.Column):
		return core.DropAt(int(msg.String()[0] - '1'))
	case key.Matches(msg, k.Restart):
		return core.NewIntent(core.ActionRestart)
	case key.Matches(msg, k.Help):
		return core.NewIntent(core.ActionHelp)
	}
	return core.NewIntent(core.ActionNone)
}
