package carouselview

import (
	"image"
	"math"
	"sort"
	"strings"

	"github.com/llehouerou/carousel/internal/carousel"
	"github.com/llehouerou/carousel/internal/ui/cardart"
	"github.com/llehouerou/carousel/internal/ui/overlay"
	"github.com/llehouerou/carousel/internal/ui/render"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

const tooSmallMessage = "terminal too small"

// cardBox is a card's drawn rectangle in cells, relative to the component's
// top-left. It may extend past the edges.
type cardBox struct {
	card       carousel.Card
	col, row   int
	cols, rows int
}

// clip returns the visible part of the box in a width x height area.
func (b cardBox) clip(width, height int) image.Rectangle {
	r := image.Rect(b.col, b.row, b.col+b.cols, b.row+b.rows)
	return r.Intersect(image.Rect(0, 0, width, height))
}

// boxes returns the cards intersecting the component in render order.
func (m Model) boxes() []cardBox {
	width, height := m.Size()
	cellW, cellH := m.surface.CellWidth(), m.surface.CellHeight()
	size := m.engine.CardSize()
	offset := m.surface.Offset()

	var out []cardBox
	for _, idx := range m.engine.RenderOrder() {
		c := m.engine.Card(idx)
		drawn := size * c.Scale
		b := cardBox{
			card: c,
			col:  int(math.Round((c.Center - drawn/2 - offset) / cellW)),
			row:  int(math.Round((size - drawn) / 2 / cellH)),
			cols: max(int(math.Round(drawn/cellW)), 1),
			rows: max(int(math.Round(drawn/cellH)), 1),
		}
		if b.clip(width, height).Empty() {
			continue
		}
		out = append(out, b)
	}
	return out
}

// canDrawCards reports whether a card is at least one cell tall.
func (m Model) canDrawCards() bool {
	return m.engine.CardSize() >= m.surface.CellHeight()
}

// indicatorRow is the row of the page indicator, centred in the reserved
// strip below the cards.
func (m Model) indicatorRow() int {
	_, height := m.Size()
	row := int((m.engine.CardSize() + carousel.ReservedStripHeight/2) / m.surface.CellHeight())
	return min(max(row, 0), height-1)
}

// View renders the cards and the page indicator. Cards shown as terminal
// images leave their area blank; see Placements.
func (m Model) View() string {
	width, height := m.Size()
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := overlay.Canvas(width, height)
	if m.engine.Len() == 0 {
		return strings.Join(lines, "\n")
	}
	if !m.canDrawCards() {
		msg := styles.T().S().Muted.Render(render.Center(tooSmallMessage, width))
		overlay.Place(lines, msg, 0, height/2, width)
		return strings.Join(lines, "\n")
	}

	for _, b := range m.boxes() {
		if _, ok := m.placement(b); ok {
			overlay.Clear(lines, b.col, b.row, b.cols, b.rows, width)
			continue
		}
		color := styles.CardColor(b.card.Identifier)
		overlay.Place(lines, cardart.Placeholder(b.card.Identifier, b.cols, b.rows, color), b.col, b.row, width)
	}

	if !m.indicator.Hidden() {
		overlay.Place(lines, m.indicator.View(width), 0, m.indicatorRow(), width)
	}
	return strings.Join(lines, "\n")
}

// placement returns where card b's image goes, or false if the card has no
// image or the protocol cannot draw it clipped.
func (m Model) placement(b cardBox) (cardart.Placement, bool) {
	if !m.art.Has(b.card.Index) {
		return cardart.Placement{}, false
	}

	width, height := m.Size()
	visible := b.clip(width, height)
	clipped := visible != image.Rect(b.col, b.row, b.col+b.cols, b.row+b.rows)
	if clipped && !m.art.CanCrop() {
		return cardart.Placement{}, false
	}

	p := cardart.Placement{
		Row:  m.originRow + visible.Min.Y,
		Col:  m.originCol + visible.Min.X,
		Cols: visible.Dx(),
		Rows: visible.Dy(),
		Z:    b.card.Z,
	}
	if clipped {
		px := m.art.ImageSize(b.card.Index)
		p.Crop = image.Rect(
			px.X*(visible.Min.X-b.col)/b.cols,
			px.Y*(visible.Min.Y-b.row)/b.rows,
			px.X*(visible.Max.X-b.col)/b.cols,
			px.Y*(visible.Max.Y-b.row)/b.rows,
		)
	}
	return p, true
}

// Placements returns the terminal commands that show card images at their
// current positions and hide the others. Append it after the full view.
func (m Model) Placements() string {
	if !m.art.Enabled() || m.disposed || m.engine.Len() == 0 {
		return ""
	}

	shown := make(map[int]bool)
	var sb strings.Builder
	if m.canDrawCards() {
		for _, b := range m.boxes() {
			p, ok := m.placement(b)
			if !ok {
				continue
			}
			sb.WriteString(m.art.Place(b.card.Index, p))
			shown[b.card.Index] = true
		}
	}
	for i := range m.identifiers {
		if !shown[i] {
			sb.WriteString(m.art.Hide(i))
		}
	}
	return sb.String()
}

// HidePlacements returns the commands that hide every card image, for hosts
// drawing over the carousel.
func (m Model) HidePlacements() string {
	if !m.art.Enabled() || m.disposed {
		return ""
	}
	var sb strings.Builder
	for i := range m.identifiers {
		sb.WriteString(m.art.Hide(i))
	}
	return sb.String()
}

// Transmit returns the commands that upload card images to the terminal.
// Prepend it to a line of the full view that rarely changes, so the images
// are not sent again on every frame.
func (m Model) Transmit() string {
	if len(m.transmit) == 0 {
		return ""
	}
	indices := make([]int, 0, len(m.transmit))
	for i := range m.transmit {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	var sb strings.Builder
	for _, i := range indices {
		sb.WriteString(m.transmit[i])
	}
	return sb.String()
}
