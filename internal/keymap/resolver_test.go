//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(All)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"?", ActionHelp},
		{"left", ActionPrevPage},
		{"h", ActionPrevPage},
		{"right", ActionNextPage},
		{"l", ActionNextPage},
		{"home", ActionFirstPage},
		{"g", ActionFirstPage},
		{"end", ActionLastPage},
		{"G", ActionLastPage},
		{"x", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := r.Resolve(keyMsg(tt.key)); got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}

func TestResolver_FirstBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionQuit, []string{"q"}, "quit", "global"},
		{ActionHelp, []string{"q"}, "help", "global"},
	})

	if got := r.Resolve(keyMsg("q")); got != ActionQuit {
		t.Errorf("Resolve(q) = %q, want %q", got, ActionQuit)
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionPrevPage, []string{"left", "h"}, "previous", "carousel"},
		{ActionPrevPage, []string{"h", "b"}, "previous", "other"},
	})

	got := r.KeysFor(ActionPrevPage)
	want := []string{"left", "h", "b"}
	if !slices.Equal(got, want) {
		t.Errorf("KeysFor() = %v, want %v", got, want)
	}
	if r.KeysFor(ActionQuit) != nil {
		t.Error("KeysFor() for unbound action should be nil")
	}
}

func TestResolver_EmptyBindings(t *testing.T) {
	r := NewResolver(nil)

	if got := r.Resolve(keyMsg("q")); got != "" {
		t.Errorf("Resolve() = %q, want empty", got)
	}
}

func TestDedupe(t *testing.T) {
	got := dedupe([]string{"a", "b", "a", "c", "b"})
	if !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("dedupe() = %v", got)
	}
}
