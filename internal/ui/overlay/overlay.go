// Package overlay draws layers of styled text onto a fixed-size canvas.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// resetStyle closes any style a cut segment left open.
const resetStyle = "\x1b[m"

// Canvas returns height blank lines of width columns.
func Canvas(width, height int) []string {
	lines := make([]string, max(height, 0))
	blank := strings.Repeat(" ", max(width, 0))
	for i := range lines {
		lines[i] = blank
	}
	return lines
}

// Place draws layer onto base with its top-left cell at column x, row y.
// Parts of the layer outside width columns or the base rows are clipped.
// Unlike a popup overlay, spaces in the layer are opaque.
// This function is ANSI-aware and handles styled text correctly.
func Place(base []string, layer string, x, y, width int) {
	for i, line := range strings.Split(layer, "\n") {
		row := y + i
		if row < 0 || row >= len(base) {
			continue
		}

		lineWidth := ansi.StringWidth(line)
		start := max(x, 0)
		end := min(x+lineWidth, width)
		if start >= end {
			continue
		}

		segment := ansi.Cut(line, start-x, end-x)
		if strings.Contains(segment, "\x1b") {
			segment += resetStyle
		}

		baseLine := base[row]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		result := ansi.Cut(baseLine, 0, start) + segment
		if end < width {
			result += ansi.Cut(baseLine, end, width)
		}
		base[row] = result
	}
}

// Clear blanks a rectangle of the canvas.
func Clear(base []string, x, y, cols, rows, width int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	blank := strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", cols)+"\n", rows), "\n")
	Place(base, blank, x, y, width)
}
