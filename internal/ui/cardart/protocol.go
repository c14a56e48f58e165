// Package cardart renders carousel card images in the terminal using the
// Kitty or Sixel graphics protocols.
package cardart

import "image"

// Placement positions a prepared image on screen.
type Placement struct {
	Row, Col   int // 1-based terminal coordinates of the top-left cell
	Cols, Rows int // displayed size in cells
	Z          int // stacking order, higher draws on top

	// Crop selects the visible part of the source image in pixels. The zero
	// rectangle shows the whole image.
	Crop image.Rectangle
}

// ImageProtocol abstracts the terminal image display protocol (Kitty or Sixel).
type ImageProtocol interface {
	// Prepare encodes the image and returns any one-time terminal command.
	// Kitty: transmits to terminal memory, returns escape sequences.
	// Sixel: encodes and caches internally, returns empty string.
	Prepare(img image.Image, id uint32) (string, error)

	// Place returns the escape sequence that displays image id.
	Place(id uint32, p Placement) string

	// Hide removes the image from the screen but keeps it prepared.
	Hide(id uint32) string

	// Delete frees the image.
	Delete(id uint32) string

	// ScalesOnPlace reports whether one prepared image can be shown at any
	// cell size. Sixel images are drawn at their encoded pixel size.
	ScalesOnPlace() bool

	// TargetPixelSize returns the pixel size of an image filling the given
	// number of cells.
	TargetPixelSize(widthCells, heightCells int) (pixelWidth, pixelHeight int)
}
