// Package carouselview provides the carousel component: a row of image cards
// that pages horizontally, scales the centred card and snaps to a card when a
// drag, wheel or key scroll ends.
package carouselview

import (
	"sync/atomic"
	"time"

	"github.com/llehouerou/carousel/internal/carousel"
	"github.com/llehouerou/carousel/internal/keymap"
	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/cardart"
	"github.com/llehouerou/carousel/internal/ui/pageindicator"
	"github.com/llehouerou/carousel/internal/ui/scrollsurface"
)

const (
	// DefaultSettleDelay is how long after construction the initial card is
	// centred, leaving the host time to report its final size.
	DefaultSettleDelay = 100 * time.Millisecond

	defaultCellW = 8
	defaultCellH = 16
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Options configures a carousel.
type Options struct {
	// SettleDelay overrides DefaultSettleDelay when positive.
	SettleDelay time.Duration

	// Art draws card images. Nil draws every card as a text box.
	Art *cardart.Renderer

	// CellWidth and CellHeight are the pixel size of a terminal cell, used to
	// keep cards square. Zero means 8x16.
	CellWidth, CellHeight int
}

// Model is the carousel component.
type Model struct {
	ui.Base
	identifiers []string

	engine    *carousel.Engine
	surface   *scrollsurface.Surface
	pager     *pager
	indicator pageindicator.Model
	art       *cardart.Renderer
	keys      *keymap.Resolver

	settleDelay time.Duration
	id          int
	settleTag   int
	centred     bool
	disposed    bool

	loadGen  int
	transmit map[int]string // per-card image upload commands

	originRow, originCol int
}

// New creates a carousel showing one card per identifier in a width x height
// cell area. The initial card is centred once Init's timer fires.
func New(identifiers []string, width, height int, opts Options) Model {
	cellW, cellH := opts.CellWidth, opts.CellHeight
	if cellW <= 0 || cellH <= 0 {
		cellW, cellH = defaultCellW, defaultCellH
	}
	delay := opts.SettleDelay
	if delay <= 0 {
		delay = DefaultSettleDelay
	}

	ids := append([]string(nil), identifiers...)
	engine := carousel.New(ids, float64(width*cellW), float64(height*cellH))
	p := &pager{engine: engine}
	surface := scrollsurface.New(p, cellW, cellH)
	surface.SetViewport(width, height)
	surface.SetContent(engine.ContentWidth(), engine.Inset())

	indicator := pageindicator.New()
	indicator.SetCount(len(ids))

	m := Model{
		identifiers: ids,
		engine:      engine,
		surface:     surface,
		pager:       p,
		indicator:   indicator,
		art:         opts.Art,
		keys:        keymap.NewResolver(keymap.ByContext("carousel")),
		settleDelay: delay,
		id:          nextID(),
		transmit:    make(map[int]string),
		originRow:   1,
		originCol:   1,
	}
	m.Base.SetSize(width, height)
	return m
}

// pager is the surface observer. It forwards to the engine and remembers that
// a release committed a page.
type pager struct {
	engine    *carousel.Engine
	committed bool
}

func (p *pager) OnOffsetChanged(offset float64) {
	p.engine.OnOffsetChanged(offset)
}

func (p *pager) OnDragWillEnd(v carousel.Velocity, proposed float64) float64 {
	target := p.engine.OnDragWillEnd(v, proposed)
	p.committed = true
	return target
}

// Identifiers returns the card identifiers in order.
func (m Model) Identifiers() []string {
	return m.identifiers
}

// Len returns the number of cards.
func (m Model) Len() int {
	return len(m.identifiers)
}

// CurrentIndex returns the committed page.
func (m Model) CurrentIndex() int {
	return m.engine.CurrentIndex()
}

// Offset returns the surface's content offset in points.
func (m Model) Offset() float64 {
	return m.surface.Offset()
}

// Centred reports whether the initial centering has run.
func (m Model) Centred() bool {
	return m.centred
}

// Indicator returns the page indicator state.
func (m Model) Indicator() pageindicator.Model {
	return m.indicator
}

// Engine exposes card geometry for inspection.
func (m Model) Engine() *carousel.Engine {
	return m.engine
}

// SetOrigin sets the 1-based terminal position of the component's top-left
// cell. Mouse events and image placements are translated with it.
func (m *Model) SetOrigin(row, col int) {
	m.originRow = max(row, 1)
	m.originCol = max(col, 1)
}

// Origin returns the position set by SetOrigin.
func (m Model) Origin() (row, col int) {
	return m.originRow, m.originCol
}
