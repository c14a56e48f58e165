package carouselview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/carousel/internal/ui/cardart"
	"github.com/llehouerou/carousel/internal/ui/testutil"
)

// fakeProtocol renders readable commands instead of escape sequences.
type fakeProtocol struct {
	scales bool
}

func (f fakeProtocol) Prepare(_ image.Image, id uint32) (string, error) {
	if !f.scales {
		return "", nil
	}
	return fmt.Sprintf("[tx %d]", id), nil
}

func (f fakeProtocol) Place(id uint32, p cardart.Placement) string {
	return fmt.Sprintf("[place %d r%d c%d %dx%d z%d crop%v]", id, p.Row, p.Col, p.Cols, p.Rows, p.Z, p.Crop)
}

func (f fakeProtocol) Hide(id uint32) string   { return fmt.Sprintf("[hide %d]", id) }
func (f fakeProtocol) Delete(id uint32) string { return fmt.Sprintf("[del %d]", id) }
func (f fakeProtocol) ScalesOnPlace() bool     { return f.scales }

func (f fakeProtocol) TargetPixelSize(cols, rows int) (int, int) {
	return cols * 10, rows * 10
}

// assetDir writes a small PNG for each identifier.
func assetDir(t *testing.T, ids ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, id := range ids {
		img := image.NewRGBA(image.Rect(0, 0, 16, 16))
		for y := range 16 {
			for x := range 16 {
				img.Set(x, y, color.RGBA{R: 200, G: 40, B: 90, A: 255})
			}
		}
		f, err := os.Create(filepath.Join(dir, id+".png"))
		require.NoError(t, err)
		require.NoError(t, png.Encode(f, img))
		require.NoError(t, f.Close())
	}
	return dir
}

func withArt(t *testing.T, scales bool) *testutil.Harness[Model] {
	t.Helper()
	dir := assetDir(t, "image1", "image2", "image3", "image4")
	art := cardart.NewRenderer(fakeProtocol{scales: scales}, cardart.Resolver{Dir: dir}, nil)
	h := testutil.NewHarness(newTestModel(testIDs, Options{Art: art}))
	h.Run(h.Model().Init(), 50)
	require.True(t, h.Model().Centred())
	return h
}

func TestView_TextCards(t *testing.T) {
	h := centred(t, testIDs, Options{})

	view := testutil.StripANSI(h.View())
	lines := strings.Split(view, "\n")

	require.Len(t, lines, 32)
	for i, line := range lines {
		assert.Equal(t, 60, testutil.MeasureWidth(line), "line %d", i)
	}
	// Centred card and its two neighbours are visible, the outer ones are not.
	assert.True(t, testutil.ContainsLine(view, "image2"))
	assert.True(t, testutil.ContainsLine(view, "image3"))
	assert.True(t, testutil.ContainsLine(view, "image4"))
	assert.False(t, testutil.ContainsLine(view, "image1"))
	assert.False(t, testutil.ContainsLine(view, "image5"))

	row := testutil.LineIndex(view, "●")
	assert.Equal(t, 28, row)
	assert.Equal(t, 5, strings.Count(lines[row], "●"))
}

func TestView_FocusedCardDrawnOnTop(t *testing.T) {
	h := centred(t, testIDs, Options{})

	lines := strings.Split(testutil.StripANSI(h.View()), "\n")

	// Card 2 spans columns 15..44 and rows -3..26 at scale 1.2. Its left
	// border covers card 1's right part.
	assert.Equal(t, "│", string([]rune(lines[10])[15]))
	assert.Equal(t, "│", string([]rune(lines[10])[44]))
}

func TestView_TooSmall(t *testing.T) {
	m := New(testIDs, 60, 7, Options{CellWidth: 10, CellHeight: 10})

	view := testutil.StripANSI(m.View())

	assert.True(t, testutil.ContainsLine(view, "terminal too small"))
	assert.Empty(t, m.Placements())
}

func TestView_ZeroSize(t *testing.T) {
	m := New(testIDs, 0, 0, Options{})

	assert.Empty(t, m.View())
}

func TestPlacements_NoArt(t *testing.T) {
	h := centred(t, testIDs, Options{})

	assert.Empty(t, h.Model().Placements())
	assert.Empty(t, h.Model().Transmit())
}

func TestArt_LoadsAndPlacesVisibleCards(t *testing.T) {
	h := withArt(t, true)
	m := h.Model()

	assert.Equal(t, 4, strings.Count(m.Transmit(), "[tx "))

	var failed []CardLoadFailed
	for _, a := range h.Actions() {
		if f, ok := a.Action.(CardLoadFailed); ok {
			failed = append(failed, f)
		}
	}
	require.Len(t, failed, 1)
	assert.Equal(t, "image5", failed[0].Identifier)
	assert.ErrorIs(t, failed[0].Err, cardart.ErrNotFound)

	placements := m.Placements()
	assert.Equal(t, 3, strings.Count(placements, "[place "))
	// Card 2 pokes 3 rows above the top edge and is cropped there.
	assert.Contains(t, placements, "r1 c16 30x27")
	assert.Contains(t, placements, "crop(0,30)-(300,300)")
	// Card 0 is off screen.
	assert.Contains(t, placements, "[hide ")

	// Cards shown as images leave their cells blank.
	assert.False(t, h.ViewContains("image3"))
}

func TestArt_ClippedCardsFallBackWithoutCrop(t *testing.T) {
	h := withArt(t, false)

	assert.Empty(t, h.Model().Placements())
	assert.True(t, h.ViewContains("image3"))
}

func TestArt_HidePlacements(t *testing.T) {
	h := withArt(t, true)

	out := h.Model().HidePlacements()

	assert.Equal(t, 4, strings.Count(out, "[hide "))
	assert.NotContains(t, out, "[place ")
}

func TestArt_DisposeFreesImages(t *testing.T) {
	h := withArt(t, true)
	m := h.Model()

	out := m.Dispose()

	assert.Equal(t, 4, strings.Count(out, "[del "))
	assert.Empty(t, m.Placements())
	assert.Empty(t, m.Transmit())
}

func TestArt_StaleLoadIgnored(t *testing.T) {
	dir := assetDir(t, "image1")
	art := cardart.NewRenderer(fakeProtocol{scales: true}, cardart.Resolver{Dir: dir}, nil)
	m := newTestModel([]string{"image1"}, Options{Art: art})
	stale := CardLoadedMsg{id: m.id, gen: m.loadGen, result: art.Process(0, "image1", 30, 30, 2)}

	_ = m.Resize(50, 32)
	m, _ = m.Update(stale)

	assert.False(t, art.Has(0))
}
