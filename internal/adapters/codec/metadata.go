package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"math"
)

const (
	markerPrefix = 0xFF
	markerSOI    = 0xD8
	markerEOI    = 0xD9
	markerSOS    = 0xDA
	markerAPP0   = 0xE0
	markerAPP1   = 0xE1
)

var (
	errNotJPEG = errors.New("output is not a JPEG stream")
	errNotPNG  = errors.New("output is not a PNG stream")

	pngSignature = []byte("\x89PNG\r\n\x1a\n")
	exifHeader   = []byte("Exif\x00\x00")
	jfifHeader   = []byte("JFIF\x00")
)

// jfifSegment builds an APP0 JFIF 1.01 segment with density in dots per inch.
func jfifSegment(dpi int) []byte {
	seg := make([]byte, 18)
	seg[0], seg[1] = markerPrefix, markerAPP0
	binary.BigEndian.PutUint16(seg[2:], 16)
	copy(seg[4:], jfifHeader)
	seg[9], seg[10] = 1, 1 // version 1.01
	seg[11] = 1            // units: dots per inch
	binary.BigEndian.PutUint16(seg[12:], uint16(dpi))
	binary.BigEndian.PutUint16(seg[14:], uint16(dpi))
	// no thumbnail
	return seg
}

// stampJPEG inserts JFIF density and an optional EXIF segment after SOI,
// replacing a JFIF segment the encoder may already have written.
func stampJPEG(data []byte, dpi int, exif []byte) ([]byte, error) {
	if len(data) < 4 || data[0] != markerPrefix || data[1] != markerSOI {
		return nil, errNotJPEG
	}
	rest := data[2:]
	if len(rest) >= 4+len(jfifHeader) && rest[0] == markerPrefix && rest[1] == markerAPP0 &&
		bytes.Equal(rest[4:4+len(jfifHeader)], jfifHeader) {
		n := int(binary.BigEndian.Uint16(rest[2:]))
		if 2+n > len(rest) {
			return nil, errNotJPEG
		}
		rest = rest[2+n:]
	}

	jfif := jfifSegment(dpi)
	out := make([]byte, 0, 2+len(jfif)+len(exif)+len(rest))
	out = append(out, markerPrefix, markerSOI)
	out = append(out, jfif...)
	out = append(out, exif...)
	out = append(out, rest...)
	return out, nil
}

// exifSegment returns a copy of the first EXIF APP1 segment of a JPEG stream,
// marker and length included, or nil when there is none.
func exifSegment(src []byte) []byte {
	if len(src) < 4 || src[0] != markerPrefix || src[1] != markerSOI {
		return nil
	}
	i := 2
	for i+4 <= len(src) {
		if src[i] != markerPrefix {
			return nil
		}
		marker := src[i+1]
		if marker == markerPrefix {
			// fill byte
			i++
			continue
		}
		if marker == markerSOS || marker == markerEOI {
			return nil
		}
		if marker == 0x01 || (marker >= 0xD0 && marker <= 0xD7) {
			i += 2
			continue
		}
		n := int(binary.BigEndian.Uint16(src[i+2:]))
		end := i + 2 + n
		if n < 2 || end > len(src) {
			return nil
		}
		if marker == markerAPP1 && bytes.HasPrefix(src[i+4:end], exifHeader) {
			return append([]byte(nil), src[i:end]...)
		}
		i = end
	}
	return nil
}

// pixelsPerMetre converts dots per inch to the pHYs unit.
func pixelsPerMetre(dpi int) uint32 {
	return uint32(math.Round(float64(dpi) / 0.0254))
}

// stampPNG inserts a pHYs chunk right after IHDR, replacing an existing one.
func stampPNG(data []byte, dpi int) ([]byte, error) {
	if !bytes.HasPrefix(data, pngSignature) {
		return nil, errNotPNG
	}

	var (
		out      bytes.Buffer
		inserted bool
	)
	out.Write(pngSignature)
	i := len(pngSignature)
	for i+12 <= len(data) {
		n := int(binary.BigEndian.Uint32(data[i:]))
		end := i + 12 + n
		if n < 0 || end > len(data) {
			return nil, errNotPNG
		}
		typ := string(data[i+4 : i+8])
		if typ != "pHYs" {
			out.Write(data[i:end])
		}
		if typ == "IHDR" && !inserted {
			out.Write(physChunk(dpi))
			inserted = true
		}
		i = end
	}
	if !inserted {
		return nil, errNotPNG
	}
	return out.Bytes(), nil
}

func physChunk(dpi int) []byte {
	ppm := pixelsPerMetre(dpi)
	chunk := make([]byte, 4+4+9+4)
	binary.BigEndian.PutUint32(chunk[0:], 9)
	copy(chunk[4:], "pHYs")
	binary.BigEndian.PutUint32(chunk[8:], ppm)
	binary.BigEndian.PutUint32(chunk[12:], ppm)
	chunk[16] = 1 // unit: metre
	binary.BigEndian.PutUint32(chunk[17:], crc32.ChecksumIEEE(chunk[4:17]))
	return chunk
}
