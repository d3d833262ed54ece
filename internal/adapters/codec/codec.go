// Package codec decodes source images and encodes composited output in the
// source's container format with the configured quality and DPI.
package codec

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"

	"github.com/bft-labs/logostamp/internal/domain"
)

// Defaults applied when Options leave a field zero.
const (
	DefaultQuality = 95
	DefaultDPI     = 96
)

// Options configures the encoder.
type Options struct {
	// Quality is the JPEG quality, 1..100. Ignored for PNG and GIF.
	Quality int

	// DPI is written as JFIF density for JPEG and as pHYs for PNG. GIF has no field for it.
	DPI int

	// KeepExif copies the source's EXIF APP1 segment into JPEG output.
	KeepExif bool
}

// Codec implements ports.ImageCodec.
type Codec struct {
	opts Options
}

// New creates a codec.
func New(opts Options) *Codec {
	if opts.Quality <= 0 {
		opts.Quality = DefaultQuality
	}
	if opts.DPI <= 0 {
		opts.DPI = DefaultDPI
	}
	return &Codec{opts: opts}
}

// Decode returns the image and its container format name.
func (c *Codec) Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", domain.ErrDecode, err)
	}
	if _, ok := formats[format]; !ok {
		return nil, "", fmt.Errorf("%w: unsupported format %q", domain.ErrDecode, format)
	}
	return img, format, nil
}

var formats = map[string]imaging.Format{
	"jpeg": imaging.JPEG,
	"png":  imaging.PNG,
	"gif":  imaging.GIF,
}

// Encode writes img in format and stamps DPI into the container metadata.
func (c *Codec) Encode(img image.Image, format string, src []byte) ([]byte, error) {
	f, ok := formats[format]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported format %q", domain.ErrEncode, format)
	}

	opts := []imaging.EncodeOption{imaging.JPEGQuality(c.opts.Quality)}
	if f == imaging.GIF {
		opts = append(opts, gifOptions(src)...)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, f, opts...); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEncode, err)
	}
	out := buf.Bytes()

	var err error
	switch f {
	case imaging.JPEG:
		var exif []byte
		if c.opts.KeepExif {
			exif = exifSegment(src)
		}
		out, err = stampJPEG(out, c.opts.DPI, exif)
	case imaging.PNG:
		out, err = stampPNG(out, c.opts.DPI)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEncode, err)
	}
	return out, nil
}

// gifOptions maps the composite onto the source's global palette without
// dithering, so untouched pixels keep their exact index colour. Only the
// first frame of an animated GIF survives decoding.
func gifOptions(src []byte) []imaging.EncodeOption {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(src))
	if err != nil {
		return nil
	}
	pal, ok := cfg.ColorModel.(color.Palette)
	if !ok || len(pal) == 0 {
		return nil
	}
	return []imaging.EncodeOption{
		imaging.GIFNumColors(len(pal)),
		imaging.GIFQuantizer(sourcePalette(pal)),
		imaging.GIFDrawer(draw.Src),
	}
}

// sourcePalette is a draw.Quantizer that always answers with a fixed palette.
type sourcePalette color.Palette

func (q sourcePalette) Quantize(p color.Palette, _ image.Image) color.Palette {
	return append(p[:0], q...)
}
