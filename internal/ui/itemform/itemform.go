// Package itemform provides the create and edit popup for catalog items.
package itemform

import (
	"strconv"
	"strings"

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

const (
	fieldName = iota
	fieldCategory
	fieldPrice
	fieldQuantity
	fieldCount
)

const labelWidth = 10

// Model is the create/edit form.
type Model struct {
	ui.Base
	id     string
	fields [fieldCount]field.Field
	focus  int
	err    string
}

// NewCreate returns an empty form for a new item.
func NewCreate() *Model {
	return newModel("")
}

// NewEdit returns a form pre-filled with item.
func NewEdit(item sweets.Item) *Model {
	in := sweets.InputFrom(item)
	m := newModel(item.ID)
	m.fields[fieldName].SetValue(in.Name)
	m.fields[fieldCategory].SetValue(in.Category)
	m.fields[fieldPrice].SetValue(in.Price.StringFixed(2))
	m.fields[fieldQuantity].SetValue(strconv.Itoa(in.Quantity))
	return m
}

func newModel(id string) *Model {
	m := &Model{
		id: id,
		fields: [fieldCount]field.Field{
			field.New("Name", "Chocolate Fudge", nil),
			field.New("Category", "Chocolate", nil),
			field.New("Price", "0.00", field.Price),
			field.New("Quantity", "0", field.Quantity),
		},
	}
	m.fields[fieldName].Focus()
	return m
}

// Editing reports whether the form edits an existing item.
func (m *Model) Editing() bool {
	return m.id != ""
}

// SetError shows a message under the fields, e.g. after a failed request.
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
		case "ctrl+s":
			return m, m.submit()
		case "enter":
			if m.focus == fieldCount-1 {
				return m, m.submit()
			}
			m.setFocus(m.focus + 1)
			return m, nil
		case "tab", "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		}
	}

	changed, cmd := m.fields[m.focus].Update(msg)
	if changed {
		m.err = ""
	}
	return m, cmd
}

func (m *Model) setFocus(i int) {
	m.fields[m.focus].Blur()
	m.focus = i
	m.fields[m.focus].Focus()
}

// Validate returns the form as an Input, or a user-facing message.
func (m *Model) Validate() (sweets.Input, string) {
	name := strings.TrimSpace(m.fields[fieldName].Value())
	if name == "" {
		return sweets.Input{}, "Name is required"
	}
	category := strings.TrimSpace(m.fields[fieldCategory].Value())
	if category == "" {
		return sweets.Input{}, "Category is required"
	}
	price, err := sweets.ParsePrice(m.fields[fieldPrice].Value())
	if err != nil {
		return sweets.Input{}, "Price must be a number like 2.50"
	}
	quantity, err := sweets.ParseQuantity(m.fields[fieldQuantity].Value())
	if err != nil {
		return sweets.Input{}, "Quantity must be a whole number"
	}
	return sweets.Input{Name: name, Category: category, Price: price, Quantity: quantity}, ""
}

func (m *Model) submit() tea.Cmd {
	in, msg := m.Validate()
	if msg != "" {
		m.err = msg
		return nil
	}
	m.err = ""
	return ActionCmd(Submitted{ID: m.id, Input: in})
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	w := min(popup.SizeForm.MaxWidth, width) - labelWidth - 8
	for i := range m.fields {
		m.fields[i].SetWidth(w)
	}
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.Sized() {
		return ""
	}

	s := styles.T().S()
	title := "Add New Sweet"
	if m.Editing() {
		title = "Edit Sweet"
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(styles.T().Primary).Render(title),
		"",
	}
	for _, f := range m.fields {
		lines = append(lines, f.LabeledView(labelWidth))
	}
	if m.err != "" {
		lines = append(lines, "", s.Error.Render(m.err))
	}
	lines = append(lines, "", s.Subtle.Render("Tab: next field, Ctrl+S: save, Esc: cancel"))
	return strings.Join(lines, "\n")
}
