// Package confirm provides a yes/no confirmation popup component.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sweetshop/internal/ui"
	"github.com/llehouerou/sweetshop/internal/ui/popup"
	"github.com/llehouerou/sweetshop/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(styles.T().Primary)
}

// Model is a yes/no confirmation popup.
type Model struct {
	ui.Base
	title   string
	message string
	context any
	active  bool
}

// New creates a new confirmation model.
func New() Model {
	return Model{}
}

// Show displays the confirmation popup. context is returned untouched in the Result.
func (m *Model) Show(title, message string, context any, width, height int) {
	m.title = title
	m.message = message
	m.context = context
	m.SetSize(width, height)
	m.active = true
}

// Reset clears the confirmation state.
func (m *Model) Reset() {
	m.title = ""
	m.message = ""
	m.context = nil
	m.active = false
}

// Active returns whether the confirmation is currently shown.
func (m Model) Active() bool {
	return m.active
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "enter", "y", "Y":
		return m, m.finish(true)
	case "esc", "n", "N", "q":
		return m, m.finish(false)
	}
	return m, nil
}

func (m *Model) finish(confirmed bool) tea.Cmd {
	m.active = false
	ctx := m.context
	return func() tea.Msg {
		return ActionMsg(Result{Confirmed: confirmed, Context: ctx})
	}
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.active || !m.Sized() {
		return ""
	}

	title := titleStyle().Render(m.title)
	message := styles.T().S().Base.Render(m.message)
	hint := styles.T().S().Subtle.Render("Enter/Y: confirm, Esc/N: cancel")

	return title + "\n\n" + message + "\n\n" + hint
}
