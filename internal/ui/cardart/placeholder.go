package cardart

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/carousel/internal/ui/render"
)

// Placeholder draws a card as a rounded box with its identifier in the
// middle. It is used when no image protocol is available or the asset is
// missing. The result is exactly cols x rows cells, or empty if that is too
// small for a border.
func Placeholder(label string, cols, rows int, border lipgloss.Color) string {
	if cols < 2 || rows < 2 {
		return ""
	}

	innerW, innerH := cols-2, rows-2
	text := ""
	if innerH > 0 && innerW > 0 {
		text = render.Truncate(label, innerW)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Foreground(border).
		Width(innerW).
		Height(innerH).
		MaxHeight(rows).
		Align(lipgloss.Center, lipgloss.Center).
		Render(text)
}
