package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyBoldGradient renders bold text with a horizontal color gradient.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) == 1 {
		return lipgloss.NewStyle().Bold(true).Foreground(from).Render(text)
	}

	var b strings.Builder
	last := float64(len(clusters) - 1)
	for i, cluster := range clusters {
		c := Blend(from, to, float64(i)/last)
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(c).Render(cluster))
	}
	return b.String()
}

// Blend mixes from and to in HCL space; t is clamped to [0, 1].
func Blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	switch {
	case t <= 0:
		return from
	case t >= 1:
		return to
	}
	c1, _ := colorful.MakeColor(toColor(from))
	c2, _ := colorful.MakeColor(toColor(to))
	return lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
}

// StockColor shades a stock level from Error (empty) through Warning to
// Success once quantity reaches plenty.
func (t *Theme) StockColor(quantity, plenty int) lipgloss.Color {
	if quantity <= 0 {
		return t.Error
	}
	if plenty <= 1 || quantity >= plenty {
		return t.Success
	}
	ratio := float64(quantity) / float64(plenty)
	if ratio < 0.5 {
		return Blend(t.Error, t.Warning, ratio*2)
	}
	return Blend(t.Warning, t.Success, (ratio-0.5)*2)
}

// toColor converts a hex lipgloss.Color; ANSI palette colors become gray.
func toColor(c lipgloss.Color) color.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		if col, err := colorful.Hex(hex); err == nil {
			return col
		}
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}
