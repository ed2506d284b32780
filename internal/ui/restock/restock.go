// Package restock provides the popup that asks how many units to add to an item.
package restock

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sweetshop/internal/sweets"
	"github.com/llehouerou/sweetshop/internal/ui"
	"github.com/llehouerou/sweetshop/internal/ui/field"
	"github.com/llehouerou/sweetshop/internal/ui/popup"
	"github.com/llehouerou/sweetshop/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.T().Primary)
}

// Model is the restock popup.
type Model struct {
	ui.Base
	item     sweets.Item
	quantity field.Field
	err      string
}

// New creates a restock popup for item.
func New(item sweets.Item) *Model {
	m := &Model{
		item:     item,
		quantity: field.New("Quantity", "units to add", field.Quantity),
	}
	m.quantity.Focus()
	return m
}

// Item returns the item being restocked.
func (m *Model) Item() sweets.Item {
	return m.item
}

// SetError shows a message under the input, e.g. after a failed request.
func (m *Model) SetError(msg string) {
	m.err = msg
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, ActionCmd(Canceled{})
		case "enter":
			return m, m.submit()
		}
	}

	changed, cmd := m.quantity.Update(msg)
	if changed {
		m.err = ""
	}
	return m, cmd
}

func (m *Model) submit() tea.Cmd {
	n, err := sweets.ParseQuantity(m.quantity.Value())
	if err != nil || n == 0 {
		m.err = "Enter a quantity of at least 1"
		return nil
	}
	m.err = ""
	return ActionCmd(Submitted{ItemID: m.item.ID, Quantity: n})
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.quantity.SetWidth(min(width/2, 20))
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.Sized() {
		return ""
	}

	s := styles.T().S()
	title := titleStyle().Render("Restock " + m.item.Name)
	current := s.Muted.Render(fmt.Sprintf("Currently %d in stock", m.item.Quantity))
	content := title + "\n" + current + "\n\n" + m.quantity.LabeledView(9)
	if m.err != "" {
		content += "\n" + s.Error.Render(m.err)
	}
	return content + "\n\n" + s.Subtle.Render("Enter: add stock, Esc: cancel")
}
