// Package headerbar renders the dashboard title line.
package headerbar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sweetshop/internal/ui"
	"github.com/llehouerou/sweetshop/internal/ui/render"
	"github.com/llehouerou/sweetshop/internal/ui/styles"
)

// Title is the application title shown at the left of the header.
const Title = "Sweet Shop Dashboard"

// Height is the fixed height of the header (title line and separator).
const Height = ui.HeaderHeight

// Props are the values shown in the header.
type Props struct {
	Username string
	IsAdmin  bool
	Count    int    // number of sweets in the current view
	Sort     string // sort label, empty for server order
}

// Render returns the header for the given width.
func Render(p Props, width int) string {
	if width < 20 {
		return ""
	}

	t := styles.T()
	s := t.S()

	title := styles.ApplyBoldGradient(Title, t.Primary, t.Secondary)
	left := title
	info := fmt.Sprintf("%d sweets", p.Count)
	if p.Count == 1 {
		info = "1 sweet"
	}
	if p.Sort != "" {
		info += " · sorted by " + p.Sort
	}
	left += s.Muted.Render("  " + info)

	right := s.Base.Render("Welcome, " + p.Username)
	if p.IsAdmin {
		right += " " + t.BadgeStyle(t.Warning).Render("Admin")
	}

	if lipgloss.Width(left)+lipgloss.Width(right)+1 > width {
		left = title
	}

	return render.Row(left, right, width) + "\n" + s.Subtle.Render(render.Separator(width))
}
