package cardart

import (
	"image"
	"image/draw"
	"math"

	"github.com/nfnt/resize"
)

// Shape scales img to fill a width x height box, crops the overflow evenly
// from both sides and rounds the corners with the given radius in pixels.
func Shape(img image.Image, width, height int, radius float64) *image.NRGBA {
	filled := Fill(img, width, height)
	RoundCorners(filled, radius)
	return filled
}

// Fill scales img so it covers width x height and crops it centred.
func Fill(img image.Image, width, height int) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	b := img.Bounds()
	if width <= 0 || height <= 0 || b.Empty() {
		return out
	}

	scale := math.Max(float64(width)/float64(b.Dx()), float64(height)/float64(b.Dy()))
	sw := uint(math.Ceil(float64(b.Dx()) * scale)) //nolint:gosec // bounded by the card size
	sh := uint(math.Ceil(float64(b.Dy()) * scale)) //nolint:gosec // bounded by the card size
	scaled := resize.Resize(sw, sh, img, resize.Lanczos3)

	sb := scaled.Bounds()
	origin := image.Point{
		X: sb.Min.X + (sb.Dx()-width)/2,
		Y: sb.Min.Y + (sb.Dy()-height)/2,
	}
	draw.Draw(out, out.Bounds(), scaled, origin, draw.Src)
	return out
}

// RoundCorners makes the pixels outside rounded corners transparent. Edge
// pixels get partial alpha for a smooth outline.
func RoundCorners(img *image.NRGBA, radius float64) {
	b := img.Bounds()
	r := math.Min(radius, math.Min(float64(b.Dx()), float64(b.Dy()))/2)
	if r <= 0 {
		return
	}

	ri := int(math.Ceil(r))
	for y := 0; y < ri; y++ {
		for x := 0; x < ri; x++ {
			// Distance from the pixel centre to the corner circle's centre.
			dx := r - (float64(x) + 0.5)
			dy := r - (float64(y) + 0.5)
			coverage := r - math.Hypot(dx, dy) + 0.5
			if coverage >= 1 {
				continue
			}
			coverage = math.Max(coverage, 0)

			for _, p := range []image.Point{
				{b.Min.X + x, b.Min.Y + y},
				{b.Max.X - 1 - x, b.Min.Y + y},
				{b.Min.X + x, b.Max.Y - 1 - y},
				{b.Max.X - 1 - x, b.Max.Y - 1 - y},
			} {
				c := img.NRGBAAt(p.X, p.Y)
				c.A = uint8(float64(c.A) * coverage)
				img.SetNRGBA(p.X, p.Y, c)
			}
		}
	}
}
