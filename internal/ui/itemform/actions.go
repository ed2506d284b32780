package itemform

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sweetshop/internal/sweets"
	"github.com/llehouerou/sweetshop/internal/ui/action"
)

// Source identifies item form actions.
const Source = "itemform"

// Submitted carries a validated form. ID is empty when creating.
type Submitted struct {
	ID    string
	Input sweets.Input
}

// ActionType implements action.Action.
func (Submitted) ActionType() string { return "itemform.submitted" }

// Editing reports whether the submission updates an existing item.
func (s Submitted) Editing() bool { return s.ID != "" }

// Canceled closes the form without a request.
type Canceled struct{}

// ActionType implements action.Action.
func (Canceled) ActionType() string { return "itemform.canceled" }

// ActionCmd emits an item form action.
func ActionCmd(a action.Action) tea.Cmd {
	return action.Cmd(Source, a)
}
