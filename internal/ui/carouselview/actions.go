package carouselview

import (
	"github.com/llehouerou/carousel/internal/ui/action"
)

// PageChanged reports a newly committed page.
type PageChanged struct {
	Index      int
	Identifier string
}

// ActionType implements action.Action.
func (a PageChanged) ActionType() string { return "carouselview.page_changed" }

// CardLoadFailed reports a card whose image could not be loaded. The card is
// drawn as a text box instead.
type CardLoadFailed struct {
	Index      int
	Identifier string
	Err        error
}

// ActionType implements action.Action.
func (a CardLoadFailed) ActionType() string { return "carouselview.card_load_failed" }

// ActionMsg creates an action.Msg for a carouselview action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "carouselview", Action: a}
}
