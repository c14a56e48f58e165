package styles

import (
	"hash/fnv"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// CardColor returns a stable muted background color for an identifier. It
// fills cards that have no image.
func CardColor(identifier string) lipgloss.Color {
	h := fnv.New32a()
	_, _ = h.Write([]byte(identifier))
	hue := float64(h.Sum32() % 360)
	return lipgloss.Color(colorful.Hcl(hue, 0.35, 0.45).Clamped().Hex())
}
