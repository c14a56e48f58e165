// Package carousel implements the layout and scroll physics of a horizontally
// paging card carousel.
//
// The engine is driven by a host scroll surface through the Observer interface:
// the surface reports every offset change and asks for a corrected target when
// a drag is released. The engine answers with snap targets and keeps a scale
// factor and z-index per card for the renderer.
//
// All coordinates are in the surface's content space. The surface centre is
// taken as half the container width, so a card is centred in the viewport when
// offset = card.Center - width/2.
package carousel

import (
	"math"
	"slices"
)

const (
	// ReservedStripHeight is the vertical space below the cards kept for the
	// page indicator and the scale overflow of the focused card.
	ReservedStripHeight = 70.0

	// MaxScaleBoost is the extra scale applied to a card sitting exactly at the
	// surface centre.
	MaxScaleBoost = 0.2

	// CornerRadius is the rounding radius of a card's clip region.
	CornerRadius = 20.0
)

// Observer receives scroll surface events.
type Observer interface {
	// OnOffsetChanged is called on every change of the content offset.
	OnOffsetChanged(offset float64)

	// OnDragWillEnd is called when a drag is released. The returned offset
	// replaces the surface's own deceleration target.
	OnDragWillEnd(velocity Velocity, proposedTarget float64) float64
}

// Velocity is the fling velocity reported when a drag is released, in content
// points per second. Positive X moves toward later cards.
type Velocity struct {
	X, Y float64
}

// Card is one tile of the carousel.
type Card struct {
	Index      int
	Identifier string
	Center     float64 // horizontal centre in content space
	Scale      float64
	Z          int // render order, higher is drawn later
}

// Compile-time check that Engine implements Observer.
var _ Observer = (*Engine)(nil)

// Engine owns card geometry, the current page index and per-card scale.
//
// The container height must exceed ReservedStripHeight when there is at least
// one card; a non-positive card size is a caller error and is not checked.
type Engine struct {
	cards   []Card
	width   float64
	height  float64
	size    float64
	current int
	offset  float64
	zTop    int
}

// New lays out one card per identifier for a container of the given size.
func New(identifiers []string, width, height float64) *Engine {
	e := &Engine{
		cards: make([]Card, len(identifiers)),
	}
	for i, id := range identifiers {
		e.cards[i] = Card{Index: i, Identifier: id, Scale: 1, Z: i}
	}
	e.zTop = len(identifiers) - 1
	e.Layout(width, height)
	return e
}

// Layout recomputes the card size and card centres for new container bounds.
// Scales are reset; the current index is kept.
func (e *Engine) Layout(width, height float64) {
	e.width = width
	e.height = height
	e.size = height - ReservedStripHeight
	for i := range e.cards {
		e.cards[i].Center = float64(i)*e.size + e.size/2
		e.cards[i].Scale = 1
	}
}

// Len returns the number of cards.
func (e *Engine) Len() int {
	return len(e.cards)
}

// CardSize returns the edge length of a square card.
func (e *Engine) CardSize() float64 {
	return e.size
}

// ContentWidth returns the total width of the laid out cards.
func (e *Engine) ContentWidth() float64 {
	return float64(len(e.cards)) * e.size
}

// Inset returns the leading and trailing inset the surface needs so that the
// first and last cards can be centred.
func (e *Engine) Inset() float64 {
	if len(e.cards) == 0 {
		return 0
	}
	return e.size
}

// Width returns the container width used for layout.
func (e *Engine) Width() float64 {
	return e.width
}

// Height returns the container height used for layout.
func (e *Engine) Height() float64 {
	return e.height
}

// CurrentIndex returns the committed page index.
func (e *Engine) CurrentIndex() int {
	return e.current
}

// Offset returns the last offset reported through OnOffsetChanged.
func (e *Engine) Offset() float64 {
	return e.offset
}

// InitialIndex returns the card that initial centering selects: the middle
// card, or the one just past the middle for an even count.
func (e *Engine) InitialIndex() int {
	return len(e.cards) / 2
}

// OffsetForIndex returns the offset that centres card k in the viewport.
func (e *Engine) OffsetForIndex(k int) float64 {
	return float64(k)*e.size - (e.width-e.size)/2
}

// CenterInitial selects the initial card, runs one scale pass at its offset
// and returns that offset. It reports false when there are no cards.
func (e *Engine) CenterInitial() (float64, bool) {
	if len(e.cards) == 0 {
		return 0, false
	}
	e.current = e.InitialIndex()
	offset := e.OffsetForIndex(e.current)
	e.OnOffsetChanged(offset)
	return offset, true
}

// Card returns a copy of card i.
func (e *Engine) Card(i int) Card {
	return e.cards[i]
}

// Cards returns a snapshot of all cards in index order.
func (e *Engine) Cards() []Card {
	out := make([]Card, len(e.cards))
	copy(out, e.cards)
	return out
}

// OnOffsetChanged recomputes every card's scale for the given offset and
// brings the card under the surface centre to the front.
func (e *Engine) OnOffsetChanged(offset float64) {
	e.offset = offset
	if len(e.cards) == 0 {
		return
	}

	centerX := e.width/2 + offset
	threshold := e.size / 2
	var front []int
	for i := range e.cards {
		c := &e.cards[i]
		distance := math.Abs(centerX - c.Center)
		if distance > threshold {
			c.Scale = 1
			continue
		}
		normalized := distance / threshold
		c.Scale = 1 + MaxScaleBoost*(1-normalized)
		front = append(front, i)
	}
	e.bringToFront(front)
}

// bringToFront raises the given cards above all others, the last one ending
// on top. Cards already stacked on top in that order keep their z-index so
// repeated passes over the same offset are stable.
func (e *Engine) bringToFront(indices []int) {
	if len(indices) == 0 {
		return
	}
	order := e.RenderOrder()
	top := order[len(order)-min(len(indices), len(order)):]
	if slices.Equal(top, indices) {
		return
	}
	for _, i := range indices {
		e.zTop++
		e.cards[i].Z = e.zTop
	}
}

// OnDragWillEnd commits a new current index from the release velocity and
// returns the offset that centres it.
//
// A positive velocity advances one card, a negative one goes back one card.
// With zero velocity the card whose centre lies within half a card of the
// surface centre is chosen; if none does, the index is left unchanged.
// The proposed target is ignored except when there are no cards.
func (e *Engine) OnDragWillEnd(velocity Velocity, proposedTarget float64) float64 {
	n := len(e.cards)
	if n == 0 {
		return proposedTarget
	}

	switch {
	case velocity.X > 0:
		e.current = min(e.current+1, n-1)
	case velocity.X < 0:
		e.current = max(e.current-1, 0)
	default:
		centerX := e.width/2 + e.offset
		threshold := e.size / 2
		for _, c := range e.cards {
			if math.Abs(centerX-c.Center) <= threshold {
				e.current = clamp(int(math.Floor(centerX/e.size)), n-1)
			}
		}
	}

	return e.OffsetForIndex(e.current)
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
