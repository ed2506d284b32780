// Package toast provides a transient notification line with auto-dismiss.
package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sweetshop/internal/ui/render"
	"github.com/llehouerou/sweetshop/internal/ui/styles"
)

// DefaultDuration is how long a toast stays visible when none is configured.
const DefaultDuration = 3 * time.Second

// Kind distinguishes success from error notifications.
type Kind int

const (
	Success Kind = iota
	Error
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	if k == Error {
		return "error"
	}
	return "success"
}

// Toast is one notification.
type Toast struct {
	ID      int64
	Kind    Kind
	Message string
}

// DismissMsg asks the model to clear the toast with the given ID.
type DismissMsg struct {
	ID int64
}

// Model holds at most one visible toast. Showing a new toast replaces the
// current one, and dismiss timers of replaced toasts are ignored.
type Model struct {
	current  *Toast
	nextID   int64
	duration time.Duration
}

// New creates a toast model. A non-positive duration uses DefaultDuration.
func New(duration time.Duration) Model {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return Model{duration: duration}
}

// Show displays message and returns the command that dismisses it later.
func (m *Model) Show(kind Kind, message string) tea.Cmd {
	m.nextID++
	t := Toast{ID: m.nextID, Kind: kind, Message: message}
	m.current = &t
	return DismissCmd(t.ID, m.duration)
}

// DismissCmd returns a command that emits DismissMsg for id after d.
func DismissCmd(id int64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return DismissMsg{ID: id}
	})
}

// Update clears the current toast when msg is its dismiss message.
func (m *Model) Update(msg tea.Msg) bool {
	d, ok := msg.(DismissMsg)
	if !ok || m.current == nil || m.current.ID != d.ID {
		return false
	}
	m.current = nil
	return true
}

// Current returns the visible toast, if any.
func (m Model) Current() (Toast, bool) {
	if m.current == nil {
		return Toast{}, false
	}
	return *m.current, true
}

// Visible reports whether a toast is shown.
func (m Model) Visible() bool {
	return m.current != nil
}

// Duration returns how long toasts stay visible.
func (m Model) Duration() time.Duration {
	return m.duration
}

// View renders the toast in a bordered box of the given width.
func (m Model) View(width int) string {
	if m.current == nil || width <= 4 {
		return ""
	}

	t := styles.T()
	icon, color := "✓", t.Success
	if m.current.Kind == Error {
		icon, color = "✗", t.Error
	}

	innerWidth := width - 2
	line := lipgloss.NewStyle().Foreground(color).Bold(true).Render(icon) + " " +
		t.S().Base.Render(render.Truncate(m.current.Message, innerWidth-4))

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Width(innerWidth).
		Render(line)
}
