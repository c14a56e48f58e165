package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pageTurned struct{}

func (pageTurned) ActionType() string { return "test.page_turned" }

func TestMsg_String(t *testing.T) {
	assert.Equal(t, "carouselview: test.page_turned", Msg{Source: "carouselview", Action: pageTurned{}}.String())
	assert.Equal(t, "helpbindings", Msg{Source: "helpbindings"}.String())
}
