package cardart

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"
	"os"
	"sync"
	"sync/atomic"

	"github.com/nfnt/resize"
)

var nextImageID uint32

func getNextImageID() uint32 {
	return atomic.AddUint32(&nextImageID, 1)
}

// Processed is a card image shaped off the UI goroutine, ready to Apply.
type Processed struct {
	Index      int
	Identifier string
	Image      *image.NRGBA
	Err        error
}

type cardImage struct {
	id  uint32
	img *image.NRGBA

	// encoding at the last placed cell size, for protocols that cannot scale
	sizedAt image.Point
	sizedID uint32
}

// Renderer keeps the terminal images of a carousel's cards.
type Renderer struct {
	mu       sync.Mutex
	protocol ImageProtocol
	resolver Resolver
	cache    *Cache
	cards    map[int]*cardImage
}

// NewRenderer creates a renderer. A nil protocol disables images; a nil cache
// disables disk caching.
func NewRenderer(protocol ImageProtocol, resolver Resolver, cache *Cache) *Renderer {
	return &Renderer{
		protocol: protocol,
		resolver: resolver,
		cache:    cache,
		cards:    make(map[int]*cardImage),
	}
}

// Enabled reports whether images can be shown at all.
func (r *Renderer) Enabled() bool {
	return r != nil && r.protocol != nil
}

// PixelSize returns the pixel size of an image spanning the given cells.
func (r *Renderer) PixelSize(cols, rows int) (int, int) {
	if !r.Enabled() {
		return cols * defaultCellW, rows * defaultCellH
	}
	return r.protocol.TargetPixelSize(cols, rows)
}

// Process loads identifier and shapes it to width x height pixels with
// rounded corners. It touches no renderer state besides the disk cache and
// is safe to run in a tea.Cmd.
func (r *Renderer) Process(index int, identifier string, width, height int, radius float64) Processed {
	p := Processed{Index: index, Identifier: identifier}

	path, err := r.resolver.Resolve(identifier)
	if err != nil {
		p.Err = err
		return p
	}
	info, err := os.Stat(path)
	if err != nil {
		p.Err = err
		return p
	}

	if data := r.cache.Get(path, info.ModTime(), width, height); data != nil {
		if img, err := png.Decode(bytes.NewReader(data)); err == nil {
			p.Image = toNRGBA(img)
			return p
		}
	}

	img, err := r.resolver.Decode(path)
	if err != nil {
		p.Err = err
		return p
	}
	p.Image = Shape(img, width, height, radius)

	var buf bytes.Buffer
	if err := png.Encode(&buf, p.Image); err == nil {
		_ = r.cache.Put(path, info.ModTime(), width, height, buf.Bytes()) //nolint:errcheck // cache is best-effort
	}
	return p
}

// Apply registers a processed image for its card. It returns the terminal
// commands to write once: deletion of the card's previous image and the
// transmission of the new one.
func (r *Renderer) Apply(p Processed) string {
	if !r.Enabled() {
		return ""
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.dropLocked(p.Index)
	if p.Err != nil || p.Image == nil {
		return out
	}

	card := &cardImage{img: p.Image}
	if r.protocol.ScalesOnPlace() {
		card.id = getNextImageID()
		cmd, err := r.protocol.Prepare(p.Image, card.id)
		if err != nil {
			return out
		}
		out += cmd
	}
	r.cards[p.Index] = card
	return out
}

// Has reports whether card index has an image.
func (r *Renderer) Has(index int) bool {
	if !r.Enabled() {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.cards[index]
	return ok
}

// ImageSize returns the pixel size of card index's image.
func (r *Renderer) ImageSize(index int) image.Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	card, ok := r.cards[index]
	if !ok {
		return image.Point{}
	}
	return card.img.Bounds().Size()
}

// CanCrop reports whether partially visible cards can be drawn.
func (r *Renderer) CanCrop() bool {
	return r.Enabled() && r.protocol.ScalesOnPlace()
}

// Place returns the command that shows card index at p.
func (r *Renderer) Place(index int, p Placement) string {
	if !r.Enabled() {
		return ""
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	card, ok := r.cards[index]
	if !ok || p.Cols <= 0 || p.Rows <= 0 {
		return ""
	}

	if r.protocol.ScalesOnPlace() {
		return r.protocol.Place(card.id, p)
	}

	size := image.Point{X: p.Cols, Y: p.Rows}
	if card.sizedID != 0 && card.sizedAt == size {
		return r.protocol.Place(card.sizedID, p)
	}

	// Only the current size is kept; a scaling card would otherwise leave an
	// encoding behind for every size it passed through.
	var out string
	if card.sizedID != 0 {
		out = r.protocol.Delete(card.sizedID)
		card.sizedID = 0
	}
	w, h := r.protocol.TargetPixelSize(p.Cols, p.Rows)
	scaled := resize.Resize(uint(max(w, 1)), uint(max(h, 1)), card.img, resize.Bilinear) //nolint:gosec // small positive sizes
	id := getNextImageID()
	if _, err := r.protocol.Prepare(scaled, id); err != nil {
		return out
	}
	card.sizedID, card.sizedAt = id, size
	return out + r.protocol.Place(id, p)
}

// Hide returns the command that removes card index from the screen. It is
// safe to send for a card that is not shown.
func (r *Renderer) Hide(index int) string {
	if !r.Enabled() {
		return ""
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	card, ok := r.cards[index]
	if !ok || card.id == 0 {
		return ""
	}
	return r.protocol.Hide(card.id)
}

// Clear frees every card image and returns the commands to do so.
func (r *Renderer) Clear() string {
	if !r.Enabled() {
		return ""
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var out string
	for index := range r.cards {
		out += r.dropLocked(index)
	}
	return out
}

func (r *Renderer) dropLocked(index int) string {
	card, ok := r.cards[index]
	if !ok {
		return ""
	}
	delete(r.cards, index)

	var out string
	if card.id != 0 {
		out += r.protocol.Delete(card.id)
	}
	if card.sizedID != 0 {
		out += r.protocol.Delete(card.sizedID)
	}
	return out
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	out := image.NewNRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}
