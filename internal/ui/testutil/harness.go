package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/ui/action"
)

// Component is a Bubble Tea component whose Update returns its own type.
type Component[M any] interface {
	Update(msg tea.Msg) (M, tea.Cmd)
	View() string
}

// Harness drives a component for testing: it feeds messages, runs the
// resulting commands and collects the actions the component emits.
type Harness[M Component[M]] struct {
	model   M
	actions []action.Msg
}

// NewHarness wraps a component.
func NewHarness[M Component[M]](m M) *Harness[M] {
	return &Harness[M]{model: m}
}

// Model returns the current component state.
func (h *Harness[M]) Model() M {
	return h.model
}

// SetModel replaces the component state, for calls made outside Update.
func (h *Harness[M]) SetModel(m M) {
	h.model = m
}

// View returns the component's rendered content.
func (h *Harness[M]) View() string {
	return h.model.View()
}

// ViewContains checks if the view contains the given substring.
func (h *Harness[M]) ViewContains(substr string) bool {
	return ContainsLine(StripANSI(h.View()), substr)
}

// Send delivers one message and returns the resulting command.
func (h *Harness[M]) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	return cmd
}

// SendKey simulates typing a rune key.
func (h *Harness[M]) SendKey(key string) tea.Cmd {
	return h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a special key (arrows, home, end, etc.).
func (h *Harness[M]) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.Send(tea.KeyMsg{Type: keyType})
}

// Run executes cmd and feeds every message it produces back into the
// component until no command is left or maxSteps messages were delivered.
// Action messages are collected instead of delivered. Timer commands block
// for their real duration. Returns the number of messages delivered.
func (h *Harness[M]) Run(cmd tea.Cmd, maxSteps int) int {
	queue := []tea.Cmd{cmd}
	steps := 0
	for len(queue) > 0 && steps < maxSteps {
		next := queue[0]
		queue = queue[1:]
		for _, msg := range Flatten(next) {
			if a, ok := msg.(action.Msg); ok {
				h.actions = append(h.actions, a)
				continue
			}
			steps++
			if c := h.Send(msg); c != nil {
				queue = append(queue, c)
			}
		}
	}
	return steps
}

// Actions returns the actions collected by Run.
func (h *Harness[M]) Actions() []action.Msg {
	return h.actions
}

// ClearActions forgets collected actions.
func (h *Harness[M]) ClearActions() {
	h.actions = nil
}

// ExecuteCmd runs a command and returns the resulting message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// Flatten runs cmd and returns its messages, expanding batches.
func Flatten(cmd tea.Cmd) []tea.Msg {
	msg := ExecuteCmd(cmd)
	if msg == nil {
		return nil
	}
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, Flatten(c)...)
	}
	return out
}
