// Package helpbindings provides a scrollable popup listing the key bindings.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sweetshop/internal/keymap"
	"github.com/llehouerou/sweetshop/internal/ui"
	"github.com/llehouerou/sweetshop/internal/ui/popup"
	"github.com/llehouerou/sweetshop/internal/ui/render"
	"github.com/llehouerou/sweetshop/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

var categoryOrder = []string{
	keymap.ContextGlobal,
	keymap.ContextGrid,
	keymap.ContextSearch,
	keymap.ContextAdmin,
}

var categoryLabels = map[string]string{
	keymap.ContextGlobal: "Global",
	keymap.ContextGrid:   "Sweets",
	keymap.ContextSearch: "Search Bar",
	keymap.ContextAdmin:  "Admin",
}

// Model holds the state for the help popup.
type Model struct {
	ui.Base
	bindings     []keymap.Binding
	scrollOffset int
}

// New creates a help popup. Admin bindings are listed only when isAdmin.
func New(isAdmin bool) *Model {
	m := &Model{}
	for _, ctx := range categoryOrder {
		if ctx == keymap.ContextAdmin && !isAdmin {
			continue
		}
		m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
	}
	return m
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.Sized() {
		return ""
	}

	lines := strings.Split(m.buildContent(), "\n")

	// Width from all lines so scrolling does not resize the popup
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}

	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))
	visible := slices.Clone(lines[start:end])
	for i, line := range visible {
		if w := lipgloss.Width(line); w < maxWidth {
			visible[i] = line + strings.Repeat(" ", maxWidth-w)
		}
	}

	t := styles.T()
	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render("Keyboard Shortcuts"))
	sb.WriteString("\n\n")
	sb.WriteString(strings.Join(visible, "\n"))
	sb.WriteString("\n\n")
	sb.WriteString(t.S().Subtle.Render(m.buildFooter()))
	return sb.String()
}

func (m Model) buildContent() string {
	t := styles.T()
	s := t.S()
	header := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)

	maxKeyWidth := 0
	for _, b := range m.bindings {
		maxKeyWidth = max(maxKeyWidth, lipgloss.Width(strings.Join(b.Keys, ", ")))
	}

	var sb strings.Builder
	current := ""
	for _, b := range m.bindings {
		if b.Context != current {
			if current != "" {
				sb.WriteString("\n")
			}
			sb.WriteString(header.Render(categoryLabels[b.Context]))
			sb.WriteString("\n")
			sb.WriteString(s.Subtle.Render(render.Separator(maxKeyWidth + 20)))
			sb.WriteString("\n")
			current = b.Context
		}

		sb.WriteString(s.Key.Render(render.Pad(strings.Join(b.Keys, ", "), maxKeyWidth)))
		sb.WriteString("  ")
		sb.WriteString(s.Base.Render(b.Description))
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func (m Model) buildFooter() string {
	if m.maxScroll() == 0 {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

func (m Model) visibleHeight() int {
	// Title, footer, border and padding
	return max(m.Height()-10, 5)
}

func (m Model) totalLines() int {
	return strings.Count(m.buildContent(), "\n") + 1
}

func (m Model) maxScroll() int {
	return max(m.totalLines()-m.visibleHeight(), 0)
}
