// Package searchbar provides the search and filter form shown above the grid.
package searchbar

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/sweetshop/internal/keymap"
	"github.com/llehouerou/sweetshop/internal/sweets"
	"github.com/llehouerou/sweetshop/internal/ui"
	"github.com/llehouerou/sweetshop/internal/ui/field"
	"github.com/llehouerou/sweetshop/internal/ui/styles"
)

const (
	fieldName = iota
	fieldCategory
	fieldMinPrice
	fieldMaxPrice
	fieldCount
)

// Model is the search form. Values are kept exactly as typed.
type Model struct {
	ui.Base
	fields [fieldCount]field.Field
	focus  int
	keys   *keymap.Resolver
}

// New creates an empty, unfocused search bar.
func New() Model {
	return Model{
		fields: [fieldCount]field.Field{
			field.New("Name", "any", nil),
			field.New("Category", "any", nil),
			field.New("Min $", "0", field.Price),
			field.New("Max $", "∞", field.Price),
		},
		keys: keymap.NewResolver(keymap.ByContext(keymap.ContextSearch)),
	}
}

// Criteria returns the current search criteria.
func (m Model) Criteria() sweets.Criteria {
	return sweets.Criteria{
		Name:     m.fields[fieldName].Value(),
		Category: m.fields[fieldCategory].Value(),
		MinPrice: m.fields[fieldMinPrice].Value(),
		MaxPrice: m.fields[fieldMaxPrice].Value(),
	}
}

// SetFocused focuses the form, resuming on the last edited field.
func (m *Model) SetFocused(focused bool) {
	m.Base.SetFocused(focused)
	for i := range m.fields {
		m.fields[i].Blur()
	}
	if focused {
		m.fields[m.focus].Focus()
	}
}

// SetSize sets the width available to the bar and sizes the inputs.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	inner := width - 2 // border
	per := inner/fieldCount - 13 // label and separator
	for i := range m.fields {
		m.fields[i].SetWidth(per)
	}
}

// Update handles a key while the bar has focus.
func (m *Model) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab":
		m.moveFocus(1)
		return nil
	case "shift+tab":
		m.moveFocus(-1)
		return nil
	}

	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionLeaveSearch:
		return ActionCmd(Leave{})
	case keymap.ActionClearSearch:
		if m.Criteria().IsEmpty() {
			return nil
		}
		for i := range m.fields {
			m.fields[i].SetValue("")
		}
		return ActionCmd(CriteriaChanged{Criteria: m.Criteria()})
	}

	changed, cmd := m.fields[m.focus].Update(msg)
	if changed {
		return tea.Batch(cmd, ActionCmd(CriteriaChanged{Criteria: m.Criteria()}))
	}
	return cmd
}

func (m *Model) moveFocus(delta int) {
	m.fields[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	m.fields[m.focus].Focus()
}

// View renders the bar as one bordered line.
func (m Model) View() string {
	if !m.Sized() {
		return ""
	}

	parts := make([]string, 0, fieldCount)
	for _, f := range m.fields {
		parts = append(parts, f.LabeledView(0))
	}
	inner := m.Width() - 2 // border
	line := strings.Join(parts, styles.T().S().Subtle.Render(" │ "))

	return styles.PanelStyle(m.IsFocused()).
		Width(inner).
		Render(ansi.Truncate(line, inner, "…"))
}
