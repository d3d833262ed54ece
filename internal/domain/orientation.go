package domain

import "fmt"

// Orientation is the EXIF orientation tag (0x0112). Valid values are 1 through 8.
type Orientation int

// EXIF orientation values.
const (
	OrientationNormal     Orientation = 1
	OrientationMirrorH    Orientation = 2
	OrientationRotate180  Orientation = 3
	OrientationMirrorV    Orientation = 4
	OrientationTranspose  Orientation = 5
	OrientationRotate90CW Orientation = 6
	OrientationTransverse Orientation = 7
	OrientationRotate90CC Orientation = 8
)

// ParseOrientation converts a raw tag value. Anything outside 1..8 is normal.
func ParseOrientation(v int) Orientation {
	if v < 1 || v > 8 {
		return OrientationNormal
	}
	return Orientation(v)
}

// Valid reports whether o is a defined EXIF orientation.
func (o Orientation) Valid() bool {
	return o >= OrientationNormal && o <= OrientationRotate90CC
}

// Metadata is what the metadata reader learned about a source image.
// A zero Metadata means "nothing known" and resolves to an upright image.
type Metadata struct {
	// Orientation is the EXIF orientation tag; only meaningful when HasOrientation is set.
	Orientation    Orientation
	HasOrientation bool

	// PixelWidth and PixelHeight are the EXIF PixelXDimension/PixelYDimension
	// values, or zero when absent.
	PixelWidth  int
	PixelHeight int
}

// Transform is a lossless rotation or flip that maps stored pixels to display orientation.
type Transform int

const (
	TransformNone Transform = iota
	TransformFlipH
	TransformFlipV
	// TransformRotate90 turns the image 90 degrees counter-clockwise.
	TransformRotate90
	TransformRotate180
	// TransformRotate270 turns the image 270 degrees counter-clockwise.
	TransformRotate270
	TransformTranspose
	TransformTransverse
)

// String returns the transform name.
func (t Transform) String() string {
	switch t {
	case TransformNone:
		return "none"
	case TransformFlipH:
		return "flip-h"
	case TransformFlipV:
		return "flip-v"
	case TransformRotate90:
		return "rotate-90"
	case TransformRotate180:
		return "rotate-180"
	case TransformRotate270:
		return "rotate-270"
	case TransformTranspose:
		return "transpose"
	case TransformTransverse:
		return "transverse"
	default:
		return fmt.Sprintf("Transform(%d)", int(t))
	}
}

// Inverse returns the transform that undoes t.
func (t Transform) Inverse() Transform {
	switch t {
	case TransformRotate90:
		return TransformRotate270
	case TransformRotate270:
		return TransformRotate90
	default:
		// flips, transposes and the half turn are their own inverse
		return t
	}
}

// SwapsAxes reports whether t exchanges width and height.
func (t Transform) SwapsAxes() bool {
	switch t {
	case TransformRotate90, TransformRotate270, TransformTranspose, TransformTransverse:
		return true
	}
	return false
}

// displayTransform maps an EXIF orientation to the transform that shows the image upright.
func displayTransform(o Orientation) Transform {
	switch o {
	case OrientationMirrorH:
		return TransformFlipH
	case OrientationRotate180:
		return TransformRotate180
	case OrientationMirrorV:
		return TransformFlipV
	case OrientationTranspose:
		return TransformTranspose
	case OrientationRotate90CW:
		return TransformRotate270
	case OrientationTransverse:
		return TransformTransverse
	case OrientationRotate90CC:
		return TransformRotate90
	default:
		return TransformNone
	}
}

// DefaultRotatedTags is the set of orientation tags that select the rotated width ratio.
var DefaultRotatedTags = []Orientation{OrientationRotate180, OrientationRotate90CW, OrientationRotate90CC}

// RotationPolicy decides which images count as rotated.
type RotationPolicy struct {
	RotatedTags []Orientation
}

// DefaultRotationPolicy returns the policy with DefaultRotatedTags.
func DefaultRotationPolicy() RotationPolicy {
	return RotationPolicy{RotatedTags: append([]Orientation(nil), DefaultRotatedTags...)}
}

// NewRotationPolicy builds a policy from raw tag values.
func NewRotationPolicy(tags []int) (RotationPolicy, error) {
	if len(tags) == 0 {
		return RotationPolicy{}, fmt.Errorf("%w: rotated tag set is empty", ErrInvalidConfig)
	}
	p := RotationPolicy{RotatedTags: make([]Orientation, 0, len(tags))}
	for _, v := range tags {
		o := Orientation(v)
		if !o.Valid() {
			return RotationPolicy{}, fmt.Errorf("%w: rotated tag %d outside 1..8", ErrInvalidConfig, v)
		}
		p.RotatedTags = append(p.RotatedTags, o)
	}
	return p, nil
}

// Includes reports whether o is one of the rotated tags.
func (p RotationPolicy) Includes(o Orientation) bool {
	for _, t := range p.RotatedTags {
		if t == o {
			return true
		}
	}
	return false
}

// Resolution is the orientation decision for one image.
type Resolution struct {
	// Rotated selects the 0.5 width ratio.
	Rotated bool

	// Transform brings the decoded pixels to display orientation.
	Transform Transform

	// Source records which rule decided: "tag", "geometry" or "none".
	Source string
}

// Resolve decides whether the decoded image of size width x height is rotated.
//
// When an orientation tag is present it is authoritative. Otherwise the EXIF
// pixel dimensions are compared with the decoded ones: a swapped, non-square
// pair means the pixels were stored rotated by a quarter turn. Resolve never fails.
func (p RotationPolicy) Resolve(md Metadata, width, height int) Resolution {
	if md.HasOrientation {
		o := ParseOrientation(int(md.Orientation))
		return Resolution{
			Rotated:   p.Includes(o),
			Transform: displayTransform(o),
			Source:    "tag",
		}
	}
	if md.PixelWidth > 0 && md.PixelHeight > 0 && width != height &&
		md.PixelWidth == height && md.PixelHeight == width {
		return Resolution{Rotated: true, Transform: TransformRotate90, Source: "geometry"}
	}
	return Resolution{Transform: TransformNone, Source: "none"}
}

// Width ratios applied to the display-oriented base width.
const (
	RatioUpright = 0.3
	RatioRotated = 0.5
)

// EffectiveWidth returns the target watermark width for a base of the given width.
func EffectiveWidth(width int, rotated bool) int {
	if rotated {
		return int(float64(width) * RatioRotated)
	}
	return int(float64(width) * RatioUpright)
}
