// Package itemcard renders one catalog item as a grid card.
package itemcard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/sweetshop/internal/sweets"
	"github.com/llehouerou/sweetshop/internal/ui"
	"github.com/llehouerou/sweetshop/internal/ui/render"
	"github.com/llehouerou/sweetshop/internal/ui/styles"
)

// OutOfStockLabel is shown on cards whose quantity is zero.
const OutOfStockLabel = "Out of Stock"

// PlentyStock is the quantity from which the stock label is fully green.
const PlentyStock = 10

// Props are the inputs of Render.
type Props struct {
	Item     sweets.Item
	IsAdmin  bool
	Selected bool
	Width    int
}

// Render draws the card. Every card has the same height so rows line up.
// The purchase control is disabled for items that are out of stock and the
// edit, delete and restock controls only appear for admins.
func Render(p Props) string {
	width := max(p.Width, ui.MinCardWidth)
	inner := width - 4 // border + horizontal padding
	t := styles.T()
	s := t.S()
	item := p.Item
	stock := lipgloss.NewStyle().Foreground(t.StockColor(item.Quantity, PlentyStock))

	lines := make([]string, 0, ui.CardHeight-ui.BorderHeight)
	lines = append(lines,
		s.Title.Render(render.Truncate(item.Name, inner)),
		s.Muted.Render(render.Truncate(item.Category, inner)),
		render.Row(s.Price.Render(item.PriceLabel()), stock.Render(StockLabel(item.Quantity)), inner),
	)

	if item.InStock() {
		lines = append(lines, "")
	} else {
		lines = append(lines, t.BadgeStyle(t.Error).Render(OutOfStockLabel))
	}

	lines = append(lines, control("b", "Purchase", item.InStock()))

	if p.IsAdmin {
		lines = append(lines,
			control("e", "Edit", true)+"  "+control("d", "Delete", true),
			control("r", "Restock", true),
		)
	}

	for len(lines) < ui.CardHeight-ui.BorderHeight {
		lines = append(lines, "")
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, inner, "…")
	}

	return styles.CardStyle(p.Selected, !item.InStock()).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}

// StockLabel formats a quantity as "1,234 in stock".
func StockLabel(quantity int) string {
	return humanize.Comma(int64(quantity)) + " in stock"
}

func control(key, label string, enabled bool) string {
	s := styles.T().S()
	if !enabled {
		return s.Disabled.Render("[-] " + label)
	}
	return s.Key.Render("["+key+"]") + " " + s.Base.Render(label)
}
