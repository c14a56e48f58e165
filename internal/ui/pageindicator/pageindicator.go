// Package pageindicator renders a row of page dots.
package pageindicator

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/llehouerou/carousel/internal/ui/styles"
)

const (
	dot          = "●"
	dotSpacing   = " "
	inactiveFade = 0.8
)

// Model is a page indicator.
type Model struct {
	count              int
	active             int
	hidesForSinglePage bool

	activeColor   lipgloss.Color
	inactiveColor lipgloss.Color
}

// New creates an indicator that hides itself when there is only one page.
func New() Model {
	t := styles.T()
	return Model{
		hidesForSinglePage: true,
		activeColor:        t.FgBase,
		inactiveColor:      Fade(t.FgMuted, t.BgBase, inactiveFade),
	}
}

// SetCount sets the number of pages. The active page is clamped to it.
func (m *Model) SetCount(n int) {
	m.count = max(n, 0)
	m.SetActive(m.active)
}

// Count returns the number of pages.
func (m Model) Count() int {
	return m.count
}

// SetActive sets the highlighted page, clamped to the page range.
func (m *Model) SetActive(i int) {
	if m.count == 0 {
		m.active = 0
		return
	}
	m.active = min(max(i, 0), m.count-1)
}

// Active returns the highlighted page.
func (m Model) Active() int {
	return m.active
}

// SetHidesForSinglePage controls whether a single page shows a dot.
func (m *Model) SetHidesForSinglePage(hide bool) {
	m.hidesForSinglePage = hide
}

// SetColors overrides the dot colours.
func (m *Model) SetColors(active, inactive lipgloss.Color) {
	m.activeColor = active
	m.inactiveColor = inactive
}

// Hidden reports whether the indicator draws nothing.
func (m Model) Hidden() bool {
	return m.count == 0 || (m.count == 1 && m.hidesForSinglePage)
}

// View renders the dots centred in width columns.
func (m Model) View(width int) string {
	if m.Hidden() {
		return ""
	}

	activeStyle := lipgloss.NewStyle().Foreground(m.activeColor)
	inactiveStyle := lipgloss.NewStyle().Foreground(m.inactiveColor)

	dots := make([]string, m.count)
	for i := range dots {
		if i == m.active {
			dots[i] = activeStyle.Render(dot)
		} else {
			dots[i] = inactiveStyle.Render(dot)
		}
	}
	row := strings.Join(dots, dotSpacing)

	if width <= 0 {
		return row
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, row)
}

// Fade blends fg toward bg, keeping alpha of fg's strength. It stands in for
// a translucent colour on terminals that have no alpha.
func Fade(fg, bg lipgloss.Color, alpha float64) lipgloss.Color {
	f, err := colorful.Hex(string(fg))
	if err != nil {
		return fg
	}
	b, err := colorful.Hex(string(bg))
	if err != nil {
		return fg
	}
	return lipgloss.Color(b.BlendRgb(f, alpha).Clamped().Hex())
}
