package carouselview

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/carousel"
	"github.com/llehouerou/carousel/internal/keymap"
	"github.com/llehouerou/carousel/internal/ui/cardart"
	"github.com/llehouerou/carousel/internal/ui/scrollsurface"
)

// SettleMsg triggers the deferred initial centering.
type SettleMsg struct {
	id  int
	tag int
}

// CardLoadedMsg delivers a card image prepared off the UI goroutine.
type CardLoadedMsg struct {
	id     int
	gen    int
	result cardart.Processed
}

// Init schedules the initial centering and starts loading card images.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.settleCmd(), m.loadCmd())
}

// Update handles messages for the carousel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.engine == nil {
		panic("carouselview: use New")
	}
	if m.disposed {
		return m, nil
	}

	switch msg := msg.(type) {
	case SettleMsg:
		if msg.id != m.id || msg.tag != m.settleTag || m.centred {
			return m, nil
		}
		return m, m.centre()

	case scrollsurface.FrameMsg, scrollsurface.WheelIdleMsg:
		return m, m.afterScroll(m.surface.Update(msg))

	case CardLoadedMsg:
		return m, m.handleLoaded(msg)

	case tea.WindowSizeMsg:
		return m, m.Resize(msg.Width, msg.Height)

	case tea.MouseMsg:
		if !m.IsFocused() {
			return m, nil
		}
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		if !m.IsFocused() {
			return m, nil
		}
		return m, m.handleKey(msg)
	}

	return m, nil
}

// Resize lays the cards out for a new cell area. Before the initial
// centering, the centering timer is restarted; after it, the current card
// stays centred.
func (m *Model) Resize(width, height int) tea.Cmd {
	if m.engine == nil {
		panic("carouselview: use New")
	}
	if m.disposed {
		return nil
	}
	if w, h := m.Size(); w == width && h == height {
		return nil
	}
	m.Base.SetSize(width, height)

	cellW, cellH := m.surface.CellWidth(), m.surface.CellHeight()
	m.engine.Layout(float64(width)*cellW, float64(height)*cellH)
	m.surface.SetViewport(width, height)
	m.surface.SetContent(m.engine.ContentWidth(), m.engine.Inset())
	m.loadGen++

	if !m.centred {
		m.settleTag++
		return tea.Batch(m.settleCmd(), m.loadCmd())
	}

	m.surface.Cancel()
	offset := m.engine.OffsetForIndex(m.engine.CurrentIndex())
	m.surface.SetOffset(offset)
	// Layout reset the scales; SetOffset only notifies on change.
	m.engine.OnOffsetChanged(offset)
	return m.loadCmd()
}

// Dispose cancels pending timers and animations and returns the terminal
// commands that free the card images. The model ignores messages afterwards.
func (m *Model) Dispose() string {
	if m.engine == nil || m.disposed {
		return ""
	}
	m.disposed = true
	m.settleTag++
	m.surface.Cancel()
	clear(m.transmit)
	return m.art.Clear()
}

// Disposed reports whether Dispose was called.
func (m Model) Disposed() bool {
	return m.disposed
}

func (m Model) settleCmd() tea.Cmd {
	id, tag := m.id, m.settleTag
	return tea.Tick(m.settleDelay, func(time.Time) tea.Msg {
		return SettleMsg{id: id, tag: tag}
	})
}

// centre runs the deferred initial centering.
func (m *Model) centre() tea.Cmd {
	m.centred = true
	offset, ok := m.engine.CenterInitial()
	if !ok {
		return nil
	}
	m.surface.SetOffset(offset)
	return m.commitPage()
}

// afterScroll publishes a page committed by the surface during cmd's step.
func (m *Model) afterScroll(cmd tea.Cmd) tea.Cmd {
	if !m.pager.committed {
		return cmd
	}
	m.pager.committed = false
	return tea.Batch(cmd, m.commitPage())
}

// commitPage syncs the indicator with the engine and reports the page.
func (m *Model) commitPage() tea.Cmd {
	if m.engine.Len() == 0 {
		return nil
	}
	idx := m.engine.CurrentIndex()
	m.indicator.SetActive(idx)
	changed := PageChanged{Index: idx, Identifier: m.identifiers[idx]}
	return func() tea.Msg {
		return ActionMsg(changed)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	n := m.engine.Len()
	if n == 0 {
		return nil
	}

	var cmd tea.Cmd
	switch m.keys.Resolve(msg) {
	case keymap.ActionPrevPage:
		cmd = m.surface.Fling(carousel.Velocity{X: -1})
	case keymap.ActionNextPage:
		cmd = m.surface.Fling(carousel.Velocity{X: 1})
	case keymap.ActionFirstPage:
		cmd = m.surface.JumpTo(m.engine.OffsetForIndex(0))
	case keymap.ActionLastPage:
		cmd = m.surface.JumpTo(m.engine.OffsetForIndex(n - 1))
	default:
		return nil
	}
	return m.afterScroll(cmd)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	local := msg
	local.X = msg.X - (m.originCol - 1)
	local.Y = msg.Y - (m.originRow - 1)

	// Drags keep tracking outside the component; everything else must start
	// inside it.
	if !m.surface.Dragging() {
		w, h := m.Size()
		if local.X < 0 || local.X >= w || local.Y < 0 || local.Y >= h {
			return nil
		}
	}

	_, cmd := m.surface.HandleMouse(local)
	return m.afterScroll(cmd)
}

// imagePixelSize is the pixel edge of a card image: large enough for the
// focused card at full scale.
func (m Model) imagePixelSize() int {
	return int(math.Ceil(m.engine.CardSize() * (1 + carousel.MaxScaleBoost)))
}

// loadCmd prepares every card image in the background.
func (m Model) loadCmd() tea.Cmd {
	if !m.art.Enabled() || m.engine.CardSize() <= 0 {
		return nil
	}

	art, id, gen := m.art, m.id, m.loadGen
	size := m.imagePixelSize()
	radius := carousel.CornerRadius * (1 + carousel.MaxScaleBoost)

	cmds := make([]tea.Cmd, len(m.identifiers))
	for i, ident := range m.identifiers {
		cmds[i] = func() tea.Msg {
			return CardLoadedMsg{id: id, gen: gen, result: art.Process(i, ident, size, size, radius)}
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleLoaded(msg CardLoadedMsg) tea.Cmd {
	if msg.id != m.id || msg.gen != m.loadGen {
		return nil
	}

	p := msg.result
	m.transmit[p.Index] = m.art.Apply(p)
	if p.Err == nil {
		return nil
	}
	failed := CardLoadFailed{Index: p.Index, Identifier: p.Identifier, Err: p.Err}
	return func() tea.Msg {
		return ActionMsg(failed)
	}
}
