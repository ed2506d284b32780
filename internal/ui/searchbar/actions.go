package searchbar

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sweetshop/internal/sweets"
	"github.com/llehouerou/sweetshop/internal/ui/action"
)

// Source identifies search bar actions.
const Source = "searchbar"

// CriteriaChanged is emitted after every edit that changes a criterion.
type CriteriaChanged struct {
	Criteria sweets.Criteria
}

// ActionType implements action.Action.
func (CriteriaChanged) ActionType() string { return "searchbar.criteria_changed" }

// Leave returns keyboard focus to the grid.
type Leave struct{}

// ActionType implements action.Action.
func (Leave) ActionType() string { return "searchbar.leave" }

// ActionCmd emits a search bar action.
func ActionCmd(a action.Action) tea.Cmd {
	return action.Cmd(Source, a)
}
