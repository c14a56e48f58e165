// Package layout provides pure functions for UI dimension calculations.
package layout

// PanelMargin is the number of columns kept free on each side of a centred
// panel.
const PanelMargin = 2

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight int
	FooterHeight int
}

// ContentHeight calculates the available height for the carousel. This is
// the terminal height minus header and footer, never negative.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.FooterHeight
	return max(height, 0)
}

// ContentRow calculates the 1-based row number where the content starts.
func ContentRow(headerHeight int) int {
	return headerHeight + 1
}

// PanelWidth calculates the width of a centred panel: maxWidth, or less when
// the window cannot keep PanelMargin free on both sides.
func PanelWidth(windowWidth, maxWidth int) int {
	return max(min(windowWidth-2*PanelMargin, maxWidth), 0)
}

// CenterOffset returns the offset that centres size within total. It is
// negative when size exceeds total.
func CenterOffset(total, size int) int {
	return (total - size) / 2
}
