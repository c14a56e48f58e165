// Package action defines the interface for UI component actions.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is something a UI component reports to its host, such as a newly
// committed carousel page. ActionType names it for logging.
type Action interface {
	ActionType() string
}

// Msg wraps a UI action with its source component name.
// This is the standard way for UI components to communicate with the host.
type Msg struct {
	Source string // Component name: "carouselview", "helpbindings"
	Action Action
}

// Ensure Msg implements tea.Msg (compile-time check).
var _ tea.Msg = Msg{}

// String describes the action for log lines.
func (m Msg) String() string {
	if m.Action == nil {
		return m.Source
	}
	return m.Source + ": " + m.Action.ActionType()
}
