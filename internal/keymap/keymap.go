package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "carousel"
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "quit", "global"},
	{ActionHelp, []string{"?"}, "help", "global"},

	// Carousel
	{ActionPrevPage, []string{"left", "h"}, "previous", "carousel"},
	{ActionNextPage, []string{"right", "l"}, "next", "carousel"},
	{ActionFirstPage, []string{"home", "g"}, "first", "carousel"},
	{ActionLastPage, []string{"end", "G"}, "last", "carousel"},
}

// ByContext returns the bindings of a context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// KeyBinding converts b for use with bubbles/key and bubbles/help. The help
// key shows the first key only.
func (b Binding) KeyBinding() key.Binding {
	helpKey := ""
	if len(b.Keys) > 0 {
		helpKey = displayKey(b.Keys[0])
	}
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(helpKey, b.Description),
	)
}

// KeyBindings converts bindings for bubbles/help.
func KeyBindings(bindings []Binding) []key.Binding {
	out := make([]key.Binding, len(bindings))
	for i, b := range bindings {
		out[i] = b.KeyBinding()
	}
	return out
}

func displayKey(k string) string {
	switch k {
	case "left":
		return "←"
	case "right":
		return "→"
	}
	return k
}
