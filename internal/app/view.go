// internal/app/view.go
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/carousel/internal/keymap"
	"github.com/llehouerou/carousel/internal/ui/headerbar"
	"github.com/llehouerou/carousel/internal/ui/layout"
	"github.com/llehouerou/carousel/internal/ui/overlay"
	"github.com/llehouerou/carousel/internal/ui/render"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// View renders the screen: title, carousel, footer. Image uploads ride on the
// title line, which rarely changes, and image placements go after the last
// line so they are written once the text is in place.
func (m Model) View() string {
	if m.Quitting {
		return m.cleanup
	}

	width, height := m.Size()
	if width == 0 || height == 0 {
		return ""
	}

	title := m.Carousel.Transmit() + headerbar.Render(m.Screen.Title, m.Carousel.Len(), width)

	body := m.Carousel.View()
	images := m.Carousel.Placements()
	if m.ShowHelp {
		body = m.withHelpPanel(body)
		images = m.Carousel.HidePlacements()
	}

	view := title + "\n" + body + "\n" + m.renderFooter(width)
	return enforceHeight(view, height) + images
}

// withHelpPanel draws the help panel centred over the carousel.
func (m Model) withHelpPanel(body string) string {
	panel := m.HelpPanel.View()
	if panel == "" {
		return body
	}
	width := m.Width()
	lines := strings.Split(body, "\n")
	x := layout.CenterOffset(width, lipgloss.Width(panel))
	y := layout.CenterOffset(len(lines), lipgloss.Height(panel))
	overlay.Place(lines, panel, x, y, width)
	return strings.Join(lines, "\n")
}

// renderFooter shows the current page or the last error on the left and the
// key hints on the right.
func (m Model) renderFooter(width int) string {
	t := styles.T()

	left := ""
	switch {
	case m.ErrorMsg != "":
		left = t.S().Error.Render(render.Truncate(m.ErrorMsg, width/2))
	case m.Page != nil:
		counter := fmt.Sprintf(" %d/%d", m.Page.Index+1, m.Carousel.Len())
		caption := render.Truncate(m.Page.Identifier, width/2-len(counter))
		left = t.S().Caption.Render(caption) + t.S().Subtle.Render(counter)
	}

	hints := m.Help.ShortHelpView(keymap.KeyBindings(keymap.ByContext("global")))
	if lipgloss.Width(left)+lipgloss.Width(hints)+3 > width {
		hints = ""
	}
	return render.Row(" "+left, hints+" ", width)
}

// enforceHeight pads or truncates view to exactly height lines.
func enforceHeight(view string, height int) string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
