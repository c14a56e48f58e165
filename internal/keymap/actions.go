// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Carousel actions
	ActionPrevPage  Action = "prev_page"
	ActionNextPage  Action = "next_page"
	ActionFirstPage Action = "first_page"
	ActionLastPage  Action = "last_page"
)
