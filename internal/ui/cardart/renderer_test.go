package cardart

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeProtocol records calls and returns readable commands.
type fakeProtocol struct {
	scales   bool
	prepared map[uint32]image.Point
	deleted  []uint32
}

func newFakeProtocol(scales bool) *fakeProtocol {
	return &fakeProtocol{scales: scales, prepared: make(map[uint32]image.Point)}
}

func (f *fakeProtocol) Prepare(img image.Image, id uint32) (string, error) {
	f.prepared[id] = img.Bounds().Size()
	if !f.scales {
		return "", nil
	}
	return fmt.Sprintf("[tx %d]", id), nil
}

func (f *fakeProtocol) Place(id uint32, p Placement) string {
	return fmt.Sprintf("[place %d %dx%d z%d]", id, p.Cols, p.Rows, p.Z)
}

func (f *fakeProtocol) Hide(id uint32) string {
	return fmt.Sprintf("[hide %d]", id)
}

func (f *fakeProtocol) Delete(id uint32) string {
	f.deleted = append(f.deleted, id)
	return fmt.Sprintf("[del %d]", id)
}

func (f *fakeProtocol) ScalesOnPlace() bool { return f.scales }

func (f *fakeProtocol) TargetPixelSize(cols, rows int) (int, int) {
	return cols * 8, rows * 16
}

func testImage(w, h int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, w, h))
}

func TestRenderer_NilProtocolDisabled(t *testing.T) {
	r := NewRenderer(nil, Resolver{}, nil)

	if r.Enabled() {
		t.Error("renderer without protocol should be disabled")
	}
	if out := r.Apply(Processed{Index: 0, Image: testImage(8, 8)}); out != "" {
		t.Errorf("Apply() = %q, want empty", out)
	}
	if r.Has(0) {
		t.Error("disabled renderer should hold no images")
	}
	if out := r.Place(0, Placement{Cols: 1, Rows: 1}); out != "" {
		t.Errorf("Place() = %q, want empty", out)
	}
	if w, h := r.PixelSize(2, 1); w != 16 || h != 16 {
		t.Errorf("PixelSize() = %dx%d, want default cell size", w, h)
	}
}

func TestRenderer_ApplyTransmitsOnce(t *testing.T) {
	proto := newFakeProtocol(true)
	r := NewRenderer(proto, Resolver{}, nil)

	out := r.Apply(Processed{Index: 2, Image: testImage(96, 96)})

	if !strings.HasPrefix(out, "[tx ") {
		t.Errorf("Apply() = %q, want transmit", out)
	}
	if !r.Has(2) {
		t.Fatal("card 2 should have an image")
	}
	if got := r.ImageSize(2); got != (image.Point{X: 96, Y: 96}) {
		t.Errorf("ImageSize() = %v", got)
	}

	first := r.Place(2, Placement{Cols: 10, Rows: 5, Z: 3})
	second := r.Place(2, Placement{Cols: 12, Rows: 6, Z: 4})
	if !strings.Contains(first, "10x5 z3") || !strings.Contains(second, "12x6 z4") {
		t.Errorf("placements = %q, %q", first, second)
	}
	if len(proto.prepared) != 1 {
		t.Errorf("scaling protocol prepared %d images, want 1", len(proto.prepared))
	}
}

func TestRenderer_ApplyReplacesPrevious(t *testing.T) {
	proto := newFakeProtocol(true)
	r := NewRenderer(proto, Resolver{}, nil)
	_ = r.Apply(Processed{Index: 0, Image: testImage(8, 8)})

	out := r.Apply(Processed{Index: 0, Image: testImage(16, 16)})

	if !strings.HasPrefix(out, "[del ") {
		t.Errorf("Apply() = %q, want previous image deleted first", out)
	}
	if len(proto.deleted) != 1 {
		t.Errorf("deleted = %v, want one image", proto.deleted)
	}
}

func TestRenderer_ApplyErrorDropsImage(t *testing.T) {
	r := NewRenderer(newFakeProtocol(true), Resolver{}, nil)
	_ = r.Apply(Processed{Index: 1, Image: testImage(8, 8)})

	_ = r.Apply(Processed{Index: 1, Err: errors.New("gone")})

	if r.Has(1) {
		t.Error("failed reload should leave the card without an image")
	}
}

func TestRenderer_NonScalingPreparesPerSize(t *testing.T) {
	proto := newFakeProtocol(false)
	r := NewRenderer(proto, Resolver{}, nil)

	if out := r.Apply(Processed{Index: 0, Image: testImage(96, 96)}); out != "" {
		t.Errorf("Apply() = %q, want nothing to send", out)
	}
	if r.CanCrop() {
		t.Error("non-scaling protocol cannot crop")
	}

	_ = r.Place(0, Placement{Cols: 10, Rows: 5})
	_ = r.Place(0, Placement{Cols: 10, Rows: 5})
	_ = r.Place(0, Placement{Cols: 12, Rows: 6})

	if len(proto.prepared) != 2 {
		t.Fatalf("prepared %d sizes, want 2", len(proto.prepared))
	}
	for _, size := range proto.prepared {
		if size != (image.Point{X: 80, Y: 80}) && size != (image.Point{X: 96, Y: 96}) {
			t.Errorf("unexpected prepared size %v", size)
		}
	}

	if len(proto.deleted) != 1 {
		t.Errorf("placing at a new size deleted %d encodings, want 1", len(proto.deleted))
	}

	_ = r.Clear()
	if len(proto.deleted) != 2 {
		t.Errorf("Clear() deleted %d images in total, want 2", len(proto.deleted))
	}
}

func TestRenderer_NonScalingKeepsOnlyCurrentSize(t *testing.T) {
	proto := newFakeProtocol(false)
	r := NewRenderer(proto, Resolver{}, nil)
	_ = r.Apply(Processed{Index: 0, Image: testImage(96, 96)})

	for cols := 10; cols < 20; cols++ {
		_ = r.Place(0, Placement{Cols: cols, Rows: cols / 2})
	}

	if live := len(proto.prepared) - len(proto.deleted); live != 1 {
		t.Errorf("%d encodings alive after scaling, want 1", live)
	}
	if len(proto.prepared) != 10 {
		t.Errorf("prepared %d sizes, want 10", len(proto.prepared))
	}
}

func TestRenderer_Process_DecodesResolvedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.png")
	if err := os.WriteFile(path, []byte("nope"), 0o600); err != nil {
		t.Fatal(err)
	}
	r := NewRenderer(newFakeProtocol(true), Resolver{Dir: dir}, nil)

	p := r.Process(0, "broken", 8, 8, 0)

	if p.Err == nil || !strings.Contains(p.Err.Error(), path) {
		t.Errorf("Process() error = %v, want decode error for %s", p.Err, path)
	}
}

func TestRenderer_Hide(t *testing.T) {
	r := NewRenderer(newFakeProtocol(true), Resolver{}, nil)

	if out := r.Hide(0); out != "" {
		t.Errorf("Hide() without image = %q, want empty", out)
	}
	_ = r.Apply(Processed{Index: 0, Image: testImage(8, 8)})
	first := r.Hide(0)
	if !strings.HasPrefix(first, "[hide ") {
		t.Errorf("Hide() = %q, want hide command", first)
	}
	if second := r.Hide(0); second != first {
		t.Errorf("Hide() should be repeatable, got %q then %q", first, second)
	}
}

func TestRenderer_Clear(t *testing.T) {
	proto := newFakeProtocol(true)
	r := NewRenderer(proto, Resolver{}, nil)
	_ = r.Apply(Processed{Index: 0, Image: testImage(8, 8)})
	_ = r.Apply(Processed{Index: 1, Image: testImage(8, 8)})

	out := r.Clear()

	if strings.Count(out, "[del ") != 2 {
		t.Errorf("Clear() = %q, want two deletions", out)
	}
	if r.Has(0) || r.Has(1) {
		t.Error("Clear() should drop every card")
	}
}

func TestRenderer_Process(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "image1.png"), 40, 20)
	cache, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRenderer(newFakeProtocol(true), Resolver{Dir: dir}, cache)

	p := r.Process(3, "image1", 32, 32, 4)
	if p.Err != nil {
		t.Fatalf("Process() error: %v", p.Err)
	}
	if p.Index != 3 || p.Identifier != "image1" {
		t.Errorf("Process() = index %d id %q", p.Index, p.Identifier)
	}
	if p.Image.Bounds() != image.Rect(0, 0, 32, 32) {
		t.Errorf("bounds = %v, want 32x32", p.Image.Bounds())
	}
	if p.Image.NRGBAAt(0, 0).A != 0 {
		t.Error("corner should be transparent")
	}

	cached := r.Process(3, "image1", 32, 32, 4)
	if cached.Err != nil || cached.Image.Bounds() != p.Image.Bounds() {
		t.Errorf("cached Process() = %v, %v", cached.Image.Bounds(), cached.Err)
	}
}

func TestRenderer_Process_Missing(t *testing.T) {
	r := NewRenderer(newFakeProtocol(true), Resolver{Dir: t.TempDir()}, nil)

	p := r.Process(0, "nope", 8, 8, 0)

	if !errors.Is(p.Err, ErrNotFound) {
		t.Errorf("Process() error = %v, want ErrNotFound", p.Err)
	}
}
