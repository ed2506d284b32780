package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the rounded panel style, highlighted when focused.
func PanelStyle(focused bool) lipgloss.Style {
	t := T()
	color := t.Border
	if focused {
		color = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color)
}

// CardStyle returns the item card style. Selected cards use the focus border,
// out of stock cards a dimmed one.
func CardStyle(selected, outOfStock bool) lipgloss.Style {
	t := T()
	color := t.Border
	switch {
	case selected:
		color = t.BorderFocus
	case outOfStock:
		color = t.FgSubtle
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1)
}
