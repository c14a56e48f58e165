package cardart

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder for card images
	_ "image/png"  // PNG decoder for card images
	"os"
	"path/filepath"
)

// ErrNotFound is returned when no asset file matches an identifier.
var ErrNotFound = errors.New("card image not found")

// assetExtensions are tried in order after the bare identifier.
var assetExtensions = []string{".png", ".jpg", ".jpeg"}

// Resolver maps card identifiers to image files in a directory.
type Resolver struct {
	Dir string
}

// Resolve returns the path of the asset for identifier.
func (r Resolver) Resolve(identifier string) (string, error) {
	if identifier == "" || filepath.Base(identifier) != identifier {
		return "", fmt.Errorf("%w: invalid identifier %q", ErrNotFound, identifier)
	}

	candidates := []string{identifier}
	for _, ext := range assetExtensions {
		candidates = append(candidates, identifier+ext)
	}
	for _, name := range candidates {
		path := filepath.Join(r.Dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s in %s", ErrNotFound, identifier, r.Dir)
}

// Decode decodes the image file at path, as returned by Resolve.
func (r Resolver) Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
