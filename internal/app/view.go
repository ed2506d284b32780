package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/sweetshop/internal/ui"
	"github.com/llehouerou/sweetshop/internal/ui/headerbar"
	"github.com/llehouerou/sweetshop/internal/ui/itemcard"
	"github.com/llehouerou/sweetshop/internal/ui/render"
	"github.com/llehouerou/sweetshop/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	items := m.Items()
	sections := []string{
		headerbar.Render(headerbar.Props{
			Username: m.viewer.Username,
			IsAdmin:  m.viewer.IsAdmin(),
			Count:    len(items),
			Sort:     m.sortLabel(),
		}, m.width),
		m.Search.View(),
		fitHeight(m.renderGrid(), m.gridHeight()),
		fitHeight(m.Toast.View(m.width), ui.ToastHeight),
		m.renderFooter(),
	}

	view := strings.Join(sections, "\n")
	view = m.Popups.RenderOverlay(view)
	return fitHeight(view, m.height)
}

func (m Model) sortLabel() string {
	if m.sortMode == "" {
		return ""
	}
	return m.sortMode.Label()
}

func (m Model) renderGrid() string {
	height := m.gridHeight()
	if height == 0 {
		return ""
	}

	s := styles.T().S()
	items := m.Items()
	if len(items) == 0 {
		var msg string
		switch {
		case m.loading:
			msg = m.Spinner.View() + " " + s.Muted.Render("Loading sweets…")
		case !m.criteria.IsEmpty():
			msg = s.Muted.Render("No sweets match " + m.criteria.Summary())
		default:
			msg = s.Muted.Render("No sweets available")
		}
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	cols, rows := m.gridCols(), m.gridRows()
	start, end := m.grid.VisibleRange(len(items), cols, rows)
	showCursor := !m.Search.IsFocused()
	gap := strings.Repeat(" ", ui.CardGap)

	var lines []string
	for rowStart := start; rowStart < end; rowStart += cols {
		cards := make([]string, 0, 2*cols)
		for i := rowStart; i < min(rowStart+cols, end); i++ {
			if i > rowStart {
				cards = append(cards, gap)
			}
			cards = append(cards, itemcard.Render(itemcard.Props{
				Item:     items[i],
				IsAdmin:  m.viewer.IsAdmin(),
				Selected: showCursor && i == m.grid.Pos(),
				Width:    m.cardWidth,
			}))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	s := styles.T().S()
	hint := func(key, label string) string {
		return s.Key.Render(key) + " " + s.Muted.Render(label)
	}

	hints := []string{hint("/", "search"), hint("b", "buy"), hint("o", "sort")}
	if m.viewer.IsAdmin() {
		hints = append(hints, hint("n", "new"), hint("e", "edit"), hint("d", "delete"), hint("r", "restock"))
	}
	hints = append(hints, hint("?", "help"), hint("q", "quit"))
	if m.Search.IsFocused() {
		hints = []string{hint("tab", "next field"), hint("ctrl+x", "clear"), hint("esc", "back")}
	}

	left := strings.Join(hints, s.Subtle.Render(" · "))
	right := ""
	switch {
	case m.pendingKeys != "":
		right = s.Key.Render(m.pendingKeys + "-")
	case !m.criteria.IsEmpty():
		right = s.Muted.Render("filter: " + m.criteria.Summary())
	}
	return ansi.Truncate(render.Row(left, right, m.width), m.width, "…")
}

// fitHeight pads or cuts s to exactly height lines.
func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
