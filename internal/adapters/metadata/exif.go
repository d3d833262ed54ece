// Package metadata reads orientation facts from encoded images with goexif.
package metadata

import (
	"bytes"

	"github.com/rwcarlsen/goexif/exif"

	"github.com/bft-labs/logostamp/internal/domain"
)

// ExifReader implements ports.MetadataReader.
type ExifReader struct{}

// NewExifReader creates a reader.
func NewExifReader() *ExifReader {
	return &ExifReader{}
}

// Read returns the orientation tag and EXIF pixel dimensions found in data.
// Files without EXIF (PNG, GIF, stripped JPEG) yield a zero Metadata.
func (ExifReader) Read(data []byte) domain.Metadata {
	var md domain.Metadata

	x, err := exif.Decode(bytes.NewReader(data))
	if x == nil || (err != nil && exif.IsCriticalError(err)) {
		return md
	}

	if v, ok := intTag(x, exif.Orientation); ok {
		md.HasOrientation = true
		md.Orientation = domain.ParseOrientation(v)
	}
	if w, ok := intTag(x, exif.PixelXDimension); ok {
		if h, ok := intTag(x, exif.PixelYDimension); ok && w > 0 && h > 0 {
			md.PixelWidth, md.PixelHeight = w, h
		}
	}
	return md
}

func intTag(x *exif.Exif, name exif.FieldName) (int, bool) {
	tag, err := x.Get(name)
	if err != nil || tag == nil || tag.Count == 0 {
		return 0, false
	}
	v, err := tag.Int(0)
	if err != nil {
		return 0, false
	}
	return v, true
}
