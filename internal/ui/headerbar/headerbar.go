// internal/ui/headerbar/headerbar.go
package headerbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/render"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = ui.TitleHeight

// Styles
var (
	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Render returns the header bar string for the given width: the screen title
// on the left and the number of cards on the right. The bar only changes when
// the width does, so hosts can prepend image uploads to it.
func Render(title string, cards int, width int) string {
	if width < ui.MinWidth {
		return ""
	}

	right := countStyle.Render(cardCount(cards)) + " "
	room := width - lipgloss.Width(right) - 4
	left := " " + styles.ApplyGradient(render.Truncate(title, room), styles.T().Primary, styles.T().Secondary) +
		separatorStyle.Render(" │")

	row := render.Row(left, right, width)
	if w := lipgloss.Width(row); w < width {
		row += strings.Repeat(" ", width-w)
	}
	return row
}

func cardCount(n int) string {
	if n == 1 {
		return "1 card"
	}
	return fmt.Sprintf("%d cards", n)
}
