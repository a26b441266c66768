package core

// Action represents a semantic player intent, abstracted from physical key
// presses so the dispatcher can be tested without a terminal.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // h, Left arrow - move the column cursor left
	ActionRight          // l, Right arrow - move the column cursor right
	ActionDrop           // Enter, Space, 1-7 - drop a piece
	ActionRestart        // R key - start a new game
	ActionHelp           // ? - toggle the full help view
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDrop:
		return "Drop"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// NoColumn marks an intent that carries no explicit column.
const NoColumn = -1

// Intent is a single dispatched input. Column is set for drops that name
// their column directly (number keys); NoColumn means "at the cursor".
type Intent struct {
	Action Action
	Column int
}

// NewIntent creates an intent without an explicit column.
func NewIntent(a Action) Intent {
	return Intent{Action: a, Column: NoColumn}
}

// DropAt creates a drop intent for a specific column.
func DropAt(column int) Intent {
	return Intent{Action: ActionDrop, Column: column}
}

// HasColumn reports whether the intent names its column.
func (i Intent) HasColumn() bool {
	return i.Column != NoColumn
}
