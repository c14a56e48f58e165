package headerbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/carousel/internal/ui/testutil"
)

func TestRender_TooNarrow(t *testing.T) {
	assert.Empty(t, Render("Home", 4, 10))
}

func TestRender_TitleAndCount(t *testing.T) {
	got := Render("Home", 4, 40)

	plain := testutil.StripANSI(got)
	assert.Equal(t, 40, lipgloss.Width(got))
	assert.True(t, strings.HasPrefix(plain, " Home │"))
	assert.True(t, strings.HasSuffix(plain, "4 cards "))
}

func TestRender_SingularCount(t *testing.T) {
	got := testutil.StripANSI(Render("Home", 1, 40))

	assert.True(t, strings.HasSuffix(got, " 1 card "))
}

func TestRender_TruncatesLongTitle(t *testing.T) {
	got := Render(strings.Repeat("x", 80), 4, 30)

	assert.Contains(t, testutil.StripANSI(got), "…")
	assert.Equal(t, 30, lipgloss.Width(got))
}
