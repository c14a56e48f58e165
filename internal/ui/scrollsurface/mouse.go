package scrollsurface

import tea "github.com/charmbracelet/bubbletea"

// WheelStep is the number of columns one wheel notch scrolls.
const WheelStep = 2

// HandleMouse routes a mouse event to the surface. X is taken relative to the
// surface's left edge. Returns true if the event was consumed.
func (s *Surface) HandleMouse(msg tea.MouseMsg) (bool, tea.Cmd) {
	step := WheelStep * s.cellW

	switch msg.Button {
	case tea.MouseButtonWheelRight:
		return true, s.Wheel(step)
	case tea.MouseButtonWheelLeft:
		return true, s.Wheel(-step)
	case tea.MouseButtonWheelDown:
		return true, s.Wheel(step)
	case tea.MouseButtonWheelUp:
		return true, s.Wheel(-step)
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return false, nil
		}
		s.BeginDrag(msg.X)
		return true, nil
	case tea.MouseActionMotion:
		if !s.dragging {
			return false, nil
		}
		s.DragTo(msg.X)
		return true, nil
	case tea.MouseActionRelease:
		if !s.dragging {
			return false, nil
		}
		s.DragTo(msg.X)
		return true, s.EndDrag()
	}
	return false, nil
}
