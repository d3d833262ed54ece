// Package testutil builds in-memory image fixtures for tests.
package testutil

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"
)

// Solid returns a w x h image filled with c.
func Solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

// PNG encodes img as PNG.
func PNG(t testing.TB, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// GIF encodes img as GIF.
func GIF(t testing.TB, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := gif.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode gif: %v", err)
	}
	return buf.Bytes()
}

// JPEG encodes img as a baseline JPEG and, when app1 is not nil, splices the
// segment in right after SOI.
func JPEG(t testing.TB, img image.Image, app1 []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	data := buf.Bytes()
	if app1 == nil {
		return data
	}
	out := make([]byte, 0, len(data)+len(app1))
	out = append(out, data[:2]...)
	out = append(out, app1...)
	out = append(out, data[2:]...)
	return out
}

// Exif describes the tags written by ExifSegment. Zero fields are omitted.
type Exif struct {
	Orientation uint16
	PixelWidth  uint32
	PixelHeight uint32
}

const (
	tiffShort = 3
	tiffLong  = 4
)

type ifdEntry struct {
	tag   uint16
	typ   uint16
	value uint32
}

// ExifSegment returns a complete little-endian APP1 segment (marker included).
func ExifSegment(x Exif) []byte {
	var ifd0 []ifdEntry
	if x.Orientation != 0 {
		ifd0 = append(ifd0, ifdEntry{0x0112, tiffShort, uint32(x.Orientation)})
	}
	var sub []ifdEntry
	if x.PixelWidth != 0 || x.PixelHeight != 0 {
		sub = []ifdEntry{
			{0xA002, tiffLong, x.PixelWidth},
			{0xA003, tiffLong, x.PixelHeight},
		}
		// pointer value is patched once the IFD0 size is known
		ifd0 = append(ifd0, ifdEntry{0x8769, tiffLong, 0})
	}

	ifd0Size := 2 + 12*len(ifd0) + 4
	if len(sub) > 0 {
		ifd0[len(ifd0)-1].value = uint32(8 + ifd0Size)
	}

	var tiff bytes.Buffer
	le := binary.LittleEndian
	tiff.WriteString("II")
	binary.Write(&tiff, le, uint16(42))
	binary.Write(&tiff, le, uint32(8))
	writeIFD(&tiff, ifd0)
	if len(sub) > 0 {
		writeIFD(&tiff, sub)
	}

	payload := append([]byte("Exif\x00\x00"), tiff.Bytes()...)
	seg := []byte{0xFF, 0xE1, 0, 0}
	binary.BigEndian.PutUint16(seg[2:], uint16(len(payload)+2))
	return append(seg, payload...)
}

func writeIFD(buf *bytes.Buffer, entries []ifdEntry) {
	le := binary.LittleEndian
	binary.Write(buf, le, uint16(len(entries)))
	for _, e := range entries {
		binary.Write(buf, le, e.tag)
		binary.Write(buf, le, e.typ)
		binary.Write(buf, le, uint32(1))
		if e.typ == tiffShort {
			binary.Write(buf, le, uint16(e.value))
			binary.Write(buf, le, uint16(0))
		} else {
			binary.Write(buf, le, e.value)
		}
	}
	binary.Write(buf, le, uint32(0))
}
