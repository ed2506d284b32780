package restock

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sweetshop/internal/ui/action"
)

// Source identifies restock actions.
const Source = "restock"

// Submitted requests adding Quantity units to the item.
type Submitted struct {
	ItemID   string
	Quantity int
}

// ActionType implements action.Action.
func (Submitted) ActionType() string { return "restock.submitted" }

// Canceled closes the popup without a request.
type Canceled struct{}

// ActionType implements action.Action.
func (Canceled) ActionType() string { return "restock.canceled" }

// ActionCmd emits a restock action.
func ActionCmd(a action.Action) tea.Cmd {
	return action.Cmd(Source, a)
}
