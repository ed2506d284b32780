// Package field wraps bubbles text inputs with a label and a rune filter.
package field

import (
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sweetshop/internal/sweets"
	"github.com/llehouerou/sweetshop/internal/ui/styles"
)

// charLimit caps what the user can type. Pre-filled values may exceed it.
const charLimit = 64

// Filter reports whether candidate, the value after an insertion, may be kept.
type Filter func(candidate string) bool

// Price accepts digits and one decimal point with at most two decimals.
func Price(candidate string) bool {
	return sweets.ValidPriceInput(candidate)
}

// Quantity accepts digits only.
func Quantity(candidate string) bool {
	return sweets.ValidQuantityInput(candidate)
}

// Field is a labeled single-line input.
type Field struct {
	Label  string
	input  textinput.Model
	filter Filter
}

// New creates a blurred field. filter may be nil to accept any text.
func New(label, placeholder string, filter Filter) Field {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = charLimit
	in.Cursor.SetMode(cursor.CursorStatic)
	in.PromptStyle = styles.T().S().Muted
	in.TextStyle = styles.T().S().Base
	in.PlaceholderStyle = styles.T().S().Subtle
	return Field{Label: label, input: in, filter: filter}
}

// Value returns the current text.
func (f Field) Value() string {
	return f.input.Value()
}

// SetValue replaces the text and moves the cursor to the end. The limit is
// raised when s is longer, so existing values are never truncated.
func (f *Field) SetValue(s string) {
	if n := utf8.RuneCountInString(s); n > f.input.CharLimit {
		f.input.CharLimit = n
	}
	f.input.SetValue(s)
	f.input.CursorEnd()
}

// SetWidth sets the visible width of the input.
func (f *Field) SetWidth(w int) {
	f.input.Width = max(w, 1)
}

// Focus gives the field keyboard focus.
func (f *Field) Focus() {
	f.input.Focus()
}

// Blur removes keyboard focus.
func (f *Field) Blur() {
	f.input.Blur()
}

// Focused reports whether the field has focus.
func (f Field) Focused() bool {
	return f.input.Focused()
}

// Update forwards msg to the input, dropping runes the filter rejects.
// Runes are checked where the cursor inserts them.
// changed is true when the value differs afterwards.
func (f *Field) Update(msg tea.Msg) (changed bool, cmd tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyRunes && f.filter != nil {
		current := []rune(f.input.Value())
		pos := min(f.input.Position(), len(current))
		accepted := make([]rune, 0, len(key.Runes))
		for _, r := range key.Runes {
			candidate := make([]rune, 0, len(current)+1)
			candidate = append(candidate, current[:pos]...)
			candidate = append(candidate, r)
			candidate = append(candidate, current[pos:]...)
			if f.filter(string(candidate)) {
				accepted = append(accepted, r)
				current = candidate
				pos++
			}
		}
		if len(accepted) == 0 {
			return false, nil
		}
		key.Runes = accepted
		msg = key
	}

	before := f.input.Value()
	f.input, cmd = f.input.Update(msg)
	return f.input.Value() != before, cmd
}

// View renders the input.
func (f Field) View() string {
	return f.input.View()
}

// LabeledView renders "Label: input", highlighting the label when focused.
func (f Field) LabeledView(labelWidth int) string {
	s := styles.T().S()
	label := s.Muted
	if f.Focused() {
		label = s.Key
	}
	return label.Width(labelWidth).Render(f.Label+":") + " " + f.View()
}
