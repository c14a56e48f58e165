package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Resolver maps key messages to actions.
type Resolver struct {
	actions  []Action
	bindings []key.Binding
	byAction map[Action][]string // action -> keys (for help/documentation)
}

// NewResolver creates a resolver from bindings. When a key is bound twice the
// first binding wins.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		r.actions = append(r.actions, b.Action)
		r.bindings = append(r.bindings, b.KeyBinding())
		r.byAction[b.Action] = dedupe(append(r.byAction[b.Action], b.Keys...))
	}
	return r
}

// Resolve returns the action for a key message, or empty string if not bound.
func (r *Resolver) Resolve(msg tea.KeyMsg) Action {
	for i, b := range r.bindings {
		if key.Matches(msg, b) {
			return r.actions[i]
		}
	}
	return ""
}

// KeysFor returns the keys bound to an action.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// dedupe removes duplicate strings from a slice.
func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
