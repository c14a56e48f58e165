// Package scrollsurface provides a horizontal scroll surface for Bubble Tea
// components. It tracks a content offset in points, turns mouse drags, wheel
// events and keyboard flings into offset changes, and lets an observer replace
// the deceleration target when a drag is released.
package scrollsurface

import (
	"math"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/llehouerou/carousel/internal/carousel"
)

const (
	// FrameRate is the number of animation frames per second while settling.
	FrameRate = 60

	// WheelIdle is how long the wheel must be still before it counts as a
	// release.
	WheelIdle = 150 * time.Millisecond

	// DecelerationRate is the per-millisecond velocity decay used to project
	// the natural target of a fling.
	DecelerationRate = 0.99

	// settleEpsilon is the distance below which the animation snaps to its
	// target.
	settleEpsilon = 0.5

	springFrequency = 8.0
	springDamping   = 1.0
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FrameMsg advances a settling animation.
type FrameMsg struct {
	id  int
	tag int
}

// WheelIdleMsg reports that wheel scrolling stopped.
type WheelIdleMsg struct {
	id  int
	tag int
}

// Surface is a horizontally scrollable viewport over content laid out in
// points. One terminal column spans CellWidth points.
type Surface struct {
	observer carousel.Observer

	offset    float64
	hasOffset bool

	cellW, cellH float64
	viewportW    float64
	viewportH    float64
	contentW     float64
	inset        float64

	dragging bool
	lastCol  int
	tracker  velocityTracker

	spring    harmonica.Spring
	target    float64
	velocity  float64
	animating bool

	id       int
	tag      int
	wheelTag int

	now func() time.Time
}

// New creates a surface reporting to observer. cellW and cellH are the pixel
// dimensions of a terminal cell.
func New(observer carousel.Observer, cellW, cellH int) *Surface {
	return &Surface{
		observer: observer,
		cellW:    float64(max(cellW, 1)),
		cellH:    float64(max(cellH, 1)),
		spring:   harmonica.NewSpring(harmonica.FPS(FrameRate), springFrequency, springDamping),
		id:       nextID(),
		now:      time.Now,
	}
}

// CellWidth returns the width of a terminal column in points.
func (s *Surface) CellWidth() float64 {
	return s.cellW
}

// CellHeight returns the height of a terminal row in points.
func (s *Surface) CellHeight() float64 {
	return s.cellH
}

// SetViewport sets the visible area in terminal cells.
func (s *Surface) SetViewport(cols, rows int) {
	s.viewportW = float64(cols) * s.cellW
	s.viewportH = float64(rows) * s.cellH
}

// ViewportSize returns the visible area in points.
func (s *Surface) ViewportSize() (width, height float64) {
	return s.viewportW, s.viewportH
}

// SetContent sets the content width and the inset kept before the first and
// after the last point of content.
func (s *Surface) SetContent(width, inset float64) {
	s.contentW = width
	s.inset = inset
}

// ContentWidth returns the content width in points.
func (s *Surface) ContentWidth() float64 {
	return s.contentW
}

// Inset returns the leading and trailing inset in points.
func (s *Surface) Inset() float64 {
	return s.inset
}

// Extents returns the range a user drag can move the offset within.
func (s *Surface) Extents() (minOffset, maxOffset float64) {
	minOffset = -s.inset
	maxOffset = s.contentW + s.inset - s.viewportW
	if maxOffset < minOffset {
		maxOffset = minOffset
	}
	return minOffset, maxOffset
}

// Offset returns the current content offset.
func (s *Surface) Offset() float64 {
	return s.offset
}

// SetOffset moves the surface without animation and stops any settling in
// progress. The observer is notified when the offset changes.
func (s *Surface) SetOffset(x float64) {
	s.stopAnimation()
	s.setOffset(x)
}

func (s *Surface) setOffset(x float64) {
	if s.hasOffset && x == s.offset {
		return
	}
	s.offset = x
	s.hasOffset = true
	if s.observer != nil {
		s.observer.OnOffsetChanged(x)
	}
}

// ColumnOf converts a content coordinate to a viewport column. The result can
// be negative or beyond the viewport width.
func (s *Surface) ColumnOf(x float64) float64 {
	return (x - s.offset) / s.cellW
}

// Dragging reports whether a drag is in progress.
func (s *Surface) Dragging() bool {
	return s.dragging
}

// Settling reports whether the surface is animating toward a snap target.
func (s *Surface) Settling() bool {
	return s.animating
}

// Target returns the offset the surface is settling toward.
func (s *Surface) Target() float64 {
	return s.target
}

// BeginDrag starts a drag with the pointer at the given column.
func (s *Surface) BeginDrag(col int) {
	s.stopAnimation()
	s.dragging = true
	s.lastCol = col
	s.tracker.reset()
	s.tracker.add(s.now(), s.offset)
}

// DragTo moves the content with the pointer. Moving the pointer left advances
// the offset.
func (s *Surface) DragTo(col int) {
	if !s.dragging {
		return
	}
	delta := float64(s.lastCol-col) * s.cellW
	s.lastCol = col
	s.applyUserOffset(delta)
	s.tracker.add(s.now(), s.offset)
}

// EndDrag releases the drag and starts settling toward the observer's
// target.
func (s *Surface) EndDrag() tea.Cmd {
	if !s.dragging {
		return nil
	}
	s.dragging = false
	v := s.tracker.velocity(s.now())
	return s.release(carousel.Velocity{X: v})
}

// Fling releases with the given velocity without moving the content first.
func (s *Surface) Fling(v carousel.Velocity) tea.Cmd {
	s.dragging = false
	return s.release(v)
}

// JumpTo moves the surface to x and releases there with no velocity, so the
// observer commits whatever lies under the surface centre.
func (s *Surface) JumpTo(x float64) tea.Cmd {
	s.dragging = false
	s.SetOffset(x)
	return s.release(carousel.Velocity{})
}

// Wheel scrolls by delta points. A release with zero velocity follows once
// the wheel has been idle for WheelIdle.
func (s *Surface) Wheel(delta float64) tea.Cmd {
	if s.dragging {
		return nil
	}
	s.stopAnimation()
	s.applyUserOffset(delta)
	s.wheelTag++
	id, tag := s.id, s.wheelTag
	return tea.Tick(WheelIdle, func(time.Time) tea.Msg {
		return WheelIdleMsg{id: id, tag: tag}
	})
}

// Cancel stops any settling and invalidates pending timers.
func (s *Surface) Cancel() {
	s.stopAnimation()
	s.wheelTag++
	s.dragging = false
}

// Update handles animation frames and wheel idle timers.
func (s *Surface) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case FrameMsg:
		if msg.id != s.id || msg.tag != s.tag || !s.animating {
			return nil
		}
		return s.step()
	case WheelIdleMsg:
		if msg.id != s.id || msg.tag != s.wheelTag || s.dragging {
			return nil
		}
		return s.release(carousel.Velocity{})
	}
	return nil
}

// applyUserOffset moves the offset by delta, clamped to the drag extents.
// Snap targets of edge cards can lie outside the extents on wide viewports;
// an offset already out there may move back in but never further out.
func (s *Surface) applyUserOffset(delta float64) {
	lo, hi := s.Extents()
	lo = min(lo, s.offset)
	hi = max(hi, s.offset)
	s.setOffset(clampFloat(s.offset+delta, lo, hi))
}

// project returns where a fling would come to rest on its own.
func (s *Surface) project(v float64) float64 {
	perMs := v / 1000
	return s.offset + perMs*DecelerationRate/(1-DecelerationRate)
}

func (s *Surface) release(v carousel.Velocity) tea.Cmd {
	target := s.project(v.X)
	if s.observer != nil {
		target = s.observer.OnDragWillEnd(v, target)
	}
	return s.animateTo(target)
}

func (s *Surface) animateTo(target float64) tea.Cmd {
	s.target = target
	if math.Abs(target-s.offset) < settleEpsilon {
		s.stopAnimation()
		s.setOffset(target)
		return nil
	}
	s.animating = true
	s.velocity = 0
	s.tag++
	return s.frame()
}

func (s *Surface) step() tea.Cmd {
	offset, velocity := s.spring.Update(s.offset, s.velocity, s.target)
	s.velocity = velocity
	if math.Abs(s.target-offset) < settleEpsilon && math.Abs(velocity) < settleEpsilon {
		s.animating = false
		s.setOffset(s.target)
		return nil
	}
	s.setOffset(offset)
	return s.frame()
}

func (s *Surface) frame() tea.Cmd {
	id, tag := s.id, s.tag
	return tea.Tick(time.Second/FrameRate, func(time.Time) tea.Msg {
		return FrameMsg{id: id, tag: tag}
	})
}

func (s *Surface) stopAnimation() {
	if s.animating {
		s.tag++
	}
	s.animating = false
	s.velocity = 0
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
