package helpbindings

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/carousel/internal/ui/action"
	"github.com/llehouerou/carousel/internal/ui/testutil"
)

// newTestHelp shows both contexts in a panel that fits 4 of the 11 content
// lines.
func newTestHelp(height int) *testutil.Harness[Model] {
	m := New()
	m.SetContexts([]string{"global", "carousel"})
	m.SetSize(40, height)
	return testutil.NewHarness(m)
}

func assertClosed(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	msg, ok := testutil.ExecuteCmd(cmd).(action.Msg)
	require.True(t, ok, "expected action.Msg")
	assert.IsType(t, Close{}, msg.Action)
}

func TestHelpBindings_Close(t *testing.T) {
	for _, key := range []string{"q", "?"} {
		t.Run(key, func(t *testing.T) {
			h := newTestHelp(10)
			assertClosed(t, h.SendKey(key))
		})
	}

	t.Run("esc", func(t *testing.T) {
		h := newTestHelp(10)
		assertClosed(t, h.SendSpecialKey(tea.KeyEsc))
	})
}

func TestHelpBindings_Scroll(t *testing.T) {
	h := newTestHelp(10)

	h.SendKey("j")
	h.SendSpecialKey(tea.KeyDown)
	assert.Equal(t, 2, h.Model().scrollOffset)

	h.SendKey("k")
	assert.Equal(t, 1, h.Model().scrollOffset)
}

func TestHelpBindings_ScrollBounded(t *testing.T) {
	h := newTestHelp(10)

	h.SendSpecialKey(tea.KeyUp)
	assert.Equal(t, 0, h.Model().scrollOffset)

	for range 20 {
		h.SendKey("j")
	}
	assert.Equal(t, 7, h.Model().scrollOffset)
}

func TestHelpBindings_NoScrollWhenEverythingFits(t *testing.T) {
	h := newTestHelp(40)

	h.SendKey("j")

	assert.Equal(t, 0, h.Model().scrollOffset)
	assert.True(t, h.ViewContains("?/esc close"))
	assert.False(t, h.ViewContains("j/k scroll"))
}

func TestHelpBindings_ViewShowsCategoriesInOrder(t *testing.T) {
	m := New()
	m.SetContexts([]string{"carousel", "global"})
	m.SetSize(40, 40)

	view := testutil.StripANSI(m.View())

	assert.Contains(t, view, "Help")
	g, c := strings.Index(view, "Global"), strings.Index(view, "Carousel")
	require.NotEqual(t, -1, g)
	require.NotEqual(t, -1, c)
	assert.Less(t, g, c)
	assert.Contains(t, view, "left, h")
	assert.Contains(t, view, "previous")
}

func TestHelpBindings_ViewFitsSize(t *testing.T) {
	h := newTestHelp(10)

	lines := testutil.SplitLines(h.View())

	assert.LessOrEqual(t, len(lines), 10)
	for _, line := range lines {
		assert.LessOrEqual(t, lipgloss.Width(line), 40)
	}
	assert.True(t, h.ViewContains("j/k scroll"))
}

func TestHelpBindings_EmptyViewWhenNoSize(t *testing.T) {
	m := New()
	m.SetContexts([]string{"global"})

	assert.Empty(t, m.View())
}

func TestHelpBindings_SetContextsResetsScroll(t *testing.T) {
	h := newTestHelp(10)
	h.SendKey("j")
	require.Equal(t, 1, h.Model().scrollOffset)

	m := h.Model()
	m.SetContexts([]string{"global"})

	assert.Equal(t, 0, m.scrollOffset)
}
