// Package action defines the interface for UI component actions.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action represents an action from a UI component.
// The ActionType method returns a string identifier for logging.
type Action interface {
	ActionType() string
}

// Msg wraps a UI action with its source component name.
// Popups and forms report results to the dashboard this way.
type Msg struct {
	Source string // Component name: "confirm", "itemform", "restock", ...
	Action Action
}

// Ensure Msg implements tea.Msg (compile-time check).
var _ tea.Msg = Msg{}

// Cmd returns a command that emits a as an action.Msg from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg {
		return Msg{Source: source, Action: a}
	}
}
