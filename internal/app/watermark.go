package app

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/bft-labs/logostamp/internal/domain"
)

// Watermark is the overlay shared by every file of a batch. It is read-only
// after loading; the compositor only reads from it.
type Watermark struct {
	Name  string
	Path  string
	Image image.Image
}

// LoadWatermark decodes the watermark image at path.
func LoadWatermark(name, path string) (*Watermark, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrWatermarkUnreadable, path, err)
	}
	b := img.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return nil, fmt.Errorf("%w: %s: empty image", domain.ErrWatermarkUnreadable, path)
	}
	return &Watermark{Name: name, Path: path, Image: img}, nil
}
