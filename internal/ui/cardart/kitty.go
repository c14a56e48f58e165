package cardart

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
)

// Kitty graphics protocol escape sequences
const (
	escStart = "\x1b_G"
	escEnd   = "\x1b\\"

	// chunkSize is the largest base64 payload per escape sequence.
	chunkSize = 4096
)

// KittyProtocol implements ImageProtocol with the Kitty graphics protocol.
// Every image has a single placement (p=1) so placing it again moves it.
type KittyProtocol struct {
	cellW, cellH int
}

// NewKittyProtocol creates a Kitty protocol using the terminal's cell size.
func NewKittyProtocol() *KittyProtocol {
	w, h := CellSize()
	return &KittyProtocol{cellW: w, cellH: h}
}

func (k *KittyProtocol) Prepare(img image.Image, id uint32) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return TransmitPNG(buf.Bytes(), id), nil
}

func (k *KittyProtocol) Place(id uint32, p Placement) string {
	return PlaceImage(id, p)
}

func (k *KittyProtocol) Hide(id uint32) string {
	// d=i: delete placements of the image, keep its data
	return fmt.Sprintf("%sa=d,d=i,i=%d,q=2;%s", escStart, id, escEnd)
}

func (k *KittyProtocol) Delete(id uint32) string {
	// d=I: delete placements and free the image data
	return fmt.Sprintf("%sa=d,d=I,i=%d,q=2;%s", escStart, id, escEnd)
}

func (k *KittyProtocol) ScalesOnPlace() bool {
	return true
}

func (k *KittyProtocol) TargetPixelSize(widthCells, heightCells int) (pixelWidth, pixelHeight int) {
	cw, ch := k.cellW, k.cellH
	if cw <= 0 || ch <= 0 {
		cw, ch = defaultCellW, defaultCellH
	}
	return widthCells * cw, heightCells * ch
}

// TransmitPNG returns the escape sequences that upload PNG data under id
// without displaying it (a=t). Large payloads are split into chunks.
func TransmitPNG(pngData []byte, id uint32) string {
	encoded := base64.StdEncoding.EncodeToString(pngData)

	var sb strings.Builder
	for i := 0; i < len(encoded) || i == 0; i += chunkSize {
		end := min(i+chunkSize, len(encoded))
		more := 0
		if end < len(encoded) {
			more = 1
		}

		sb.WriteString(escStart)
		if i == 0 {
			// f=100: PNG, q=2: suppress responses
			fmt.Fprintf(&sb, "a=t,f=100,i=%d,q=2,m=%d;", id, more)
		} else {
			fmt.Fprintf(&sb, "m=%d;", more)
		}
		sb.WriteString(encoded[i:end])
		sb.WriteString(escEnd)
	}
	return sb.String()
}

// PlaceImage returns the escape sequence that displays a transmitted image.
// The cursor is saved and restored around the placement and C=1 keeps the
// terminal from moving it.
func PlaceImage(id uint32, p Placement) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\x1b[s\x1b[%d;%dH", p.Row, p.Col)
	fmt.Fprintf(&sb, "%sa=p,i=%d,p=1,c=%d,r=%d,z=%d,C=1,q=2", escStart, id, p.Cols, p.Rows, p.Z)
	if !p.Crop.Empty() {
		fmt.Fprintf(&sb, ",x=%d,y=%d,w=%d,h=%d", p.Crop.Min.X, p.Crop.Min.Y, p.Crop.Dx(), p.Crop.Dy())
	}
	sb.WriteString(";" + escEnd)
	sb.WriteString("\x1b[u")
	return sb.String()
}
