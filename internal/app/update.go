package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sweetshop/internal/ui"
	"github.com/llehouerou/sweetshop/internal/ui/action"
	"github.com/llehouerou/sweetshop/internal/ui/toast"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case toast.DismissMsg:
		m.Toast.Update(msg)
		return m, nil

	case ItemsLoadedMsg:
		return m.handleItemsLoaded(msg)

	case SearchResultMsg:
		return m.handleSearchResult(msg)

	case MutationResultMsg:
		return m.handleMutationResult(msg)

	case action.Msg:
		return m.handleAction(msg)
	}

	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.Search.SetSize(msg.Width, ui.SearchBarHeight)
	m.Popups.SetSize(msg.Width, msg.Height)
	m.restoreSelection()
	return m, nil
}
