package app

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/bft-labs/logostamp/internal/domain"
)

// applyTransform returns a zero-origin NRGBA copy of img with t applied.
func applyTransform(img image.Image, t domain.Transform) *image.NRGBA {
	switch t {
	case domain.TransformFlipH:
		return imaging.FlipH(img)
	case domain.TransformFlipV:
		return imaging.FlipV(img)
	case domain.TransformRotate90:
		return imaging.Rotate90(img)
	case domain.TransformRotate180:
		return imaging.Rotate180(img)
	case domain.TransformRotate270:
		return imaging.Rotate270(img)
	case domain.TransformTranspose:
		return imaging.Transpose(img)
	case domain.TransformTransverse:
		return imaging.Transverse(img)
	default:
		return imaging.Clone(img)
	}
}
