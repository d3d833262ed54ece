package app

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/bft-labs/logostamp/internal/domain"
	"github.com/bft-labs/logostamp/internal/testutil"
)

var (
	baseColor = color.NRGBA{R: 30, G: 60, B: 90, A: 255}
	markColor = color.NRGBA{R: 250, G: 200, B: 10, A: 255}
)

func nrgbaAt(img *image.NRGBA, x, y int) color.NRGBA {
	return img.NRGBAAt(x, y)
}

// checkBox asserts that pixels inside box are want and all others are base.
func checkBox(t *testing.T, img *image.NRGBA, box image.Rectangle, want, base color.NRGBA) {
	t.Helper()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			got := nrgbaAt(img, x, y)
			exp := base
			if image.Pt(x, y).In(box) {
				exp = want
			}
			if got != exp {
				t.Fatalf("pixel (%d,%d) = %v, want %v (box %v)", x, y, got, exp, box)
			}
		}
	}
}

func TestCompositor_ReferenceLayout(t *testing.T) {
	c := NewCompositor(domain.DefaultRotationPolicy(), domain.DefaultMargin)
	base := testutil.Solid(1000, 800, baseColor)
	wm := testutil.Solid(100, 50, markColor)

	got := c.Apply(base, domain.Metadata{}, wm)

	want := domain.PlacementPlan{
		EffectiveWidth: 1000, EffectiveHeight: 800,
		ScaledWidth: 300, ScaledHeight: 150,
		XOffset: 670, YOffset: 620,
	}
	if got.Plan != want {
		t.Errorf("Plan = %+v, want %+v", got.Plan, want)
	}
	if got.Resolution.Rotated {
		t.Error("Rotated = true, want false")
	}
	if got.Skipped {
		t.Error("Skipped = true, want false")
	}
	checkBox(t, got.Image, image.Rect(670, 620, 970, 770), markColor, baseColor)
}

func TestCompositor_TransparentWatermarkLeavesBase(t *testing.T) {
	c := NewCompositor(domain.DefaultRotationPolicy(), domain.DefaultMargin)
	base := testutil.Solid(400, 300, baseColor)
	wm := testutil.Solid(40, 20, color.NRGBA{R: 255, G: 0, B: 0, A: 0})

	got := c.Apply(base, domain.Metadata{}, wm)
	checkBox(t, got.Image, image.Rectangle{}, baseColor, baseColor)
}

func TestCompositor_PartialAlpha(t *testing.T) {
	c := NewCompositor(domain.DefaultRotationPolicy(), domain.DefaultMargin)
	base := testutil.Solid(400, 300, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	wm := testutil.Solid(40, 20, color.NRGBA{R: 0, G: 0, B: 0, A: 128})

	got := c.Apply(base, domain.Metadata{}, wm)
	p := got.Plan
	px := nrgbaAt(got.Image, p.XOffset+p.ScaledWidth/2, p.YOffset+p.ScaledHeight/2)

	want := 200 * (1 - 128.0/255)
	if math.Abs(float64(px.R)-want) > 1 {
		t.Errorf("blended R = %d, want %.1f +/- 1", px.R, want)
	}
	if px.A != 255 {
		t.Errorf("blended A = %d, want 255", px.A)
	}
}

func TestCompositor_RotatedByTag(t *testing.T) {
	c := NewCompositor(domain.DefaultRotationPolicy(), domain.DefaultMargin)
	// stored landscape, displayed portrait
	base := testutil.Solid(1000, 800, baseColor)
	wm := testutil.Solid(100, 50, markColor)

	got := c.Apply(base, domain.Metadata{Orientation: domain.OrientationRotate90CW, HasOrientation: true}, wm)

	if !got.Resolution.Rotated {
		t.Fatal("Rotated = false, want true")
	}
	if got.Image.Bounds() != base.Bounds() {
		t.Fatalf("output bounds = %v, want stored %v", got.Image.Bounds(), base.Bounds())
	}
	want := domain.PlacementPlan{
		EffectiveWidth: 800, EffectiveHeight: 1000,
		ScaledWidth: 400, ScaledHeight: 200,
		XOffset: 376, YOffset: 776,
	}
	if got.Plan != want {
		t.Errorf("Plan = %+v, want %+v", got.Plan, want)
	}

	// view it the way a viewer honouring tag 6 would
	display := imaging.Rotate270(got.Image)
	checkBox(t, display, image.Rect(376, 776, 776, 976), markColor, baseColor)
}

func TestCompositor_RotatedByGeometry(t *testing.T) {
	c := NewCompositor(domain.DefaultRotationPolicy(), domain.DefaultMargin)
	base := testutil.Solid(1000, 800, baseColor)
	wm := testutil.Solid(100, 50, markColor)

	got := c.Apply(base, domain.Metadata{PixelWidth: 800, PixelHeight: 1000}, wm)

	if !got.Resolution.Rotated || got.Resolution.Source != "geometry" {
		t.Fatalf("Resolution = %+v, want rotated by geometry", got.Resolution)
	}
	if got.Image.Bounds() != base.Bounds() {
		t.Fatalf("output bounds = %v, want %v", got.Image.Bounds(), base.Bounds())
	}
	display := imaging.Rotate90(got.Image)
	checkBox(t, display, image.Rect(376, 776, 776, 976), markColor, baseColor)
}

func TestCompositor_HalfTurn(t *testing.T) {
	c := NewCompositor(domain.DefaultRotationPolicy(), domain.DefaultMargin)
	base := testutil.Solid(1000, 800, baseColor)
	wm := testutil.Solid(100, 50, markColor)

	got := c.Apply(base, domain.Metadata{Orientation: domain.OrientationRotate180, HasOrientation: true}, wm)

	// rotated ratio on the unchanged width
	if got.Plan.ScaledWidth != 500 || got.Plan.ScaledHeight != 250 {
		t.Errorf("scaled = %dx%d, want 500x250", got.Plan.ScaledWidth, got.Plan.ScaledHeight)
	}
	// bottom-right on screen is top-left in storage
	display := imaging.Rotate180(got.Image)
	x, y := got.Plan.XOffset, got.Plan.YOffset
	checkBox(t, display, image.Rect(x, y, x+500, y+250), markColor, baseColor)
}

func TestCompositor_NegativeOffsetClips(t *testing.T) {
	c := NewCompositor(domain.DefaultRotationPolicy(), domain.DefaultMargin)
	base := testutil.Solid(1000, 100, baseColor)
	wm := testutil.Solid(100, 100, markColor)

	got := c.Apply(base, domain.Metadata{}, wm)
	if got.Plan.YOffset != -230 {
		t.Fatalf("YOffset = %d, want -230", got.Plan.YOffset)
	}
	checkBox(t, got.Image, image.Rect(670, 0, 970, 70), markColor, baseColor)
}

func TestCompositor_DegenerateSkips(t *testing.T) {
	c := NewCompositor(domain.DefaultRotationPolicy(), domain.DefaultMargin)
	base := testutil.Solid(3, 3, baseColor)
	wm := testutil.Solid(100, 50, markColor)

	got := c.Apply(base, domain.Metadata{}, wm)
	if !got.Skipped {
		t.Fatal("Skipped = false, want true")
	}
	checkBox(t, got.Image, image.Rectangle{}, baseColor, baseColor)
}

func TestCompositor_DoesNotMutateWatermark(t *testing.T) {
	c := NewCompositor(domain.DefaultRotationPolicy(), domain.DefaultMargin)
	wm := testutil.Solid(100, 50, markColor)
	before := append([]uint8(nil), wm.Pix...)

	c.Apply(testutil.Solid(600, 400, baseColor), domain.Metadata{}, wm)
	c.Apply(testutil.Solid(200, 900, baseColor), domain.Metadata{Orientation: 8, HasOrientation: true}, wm)

	for i := range before {
		if wm.Pix[i] != before[i] {
			t.Fatalf("watermark byte %d changed", i)
		}
	}
}

func TestCompositor_NonZeroOriginBase(t *testing.T) {
	c := NewCompositor(domain.DefaultRotationPolicy(), domain.DefaultMargin)
	full := testutil.Solid(1100, 900, baseColor)
	base := full.SubImage(image.Rect(100, 100, 1100, 900))
	wm := testutil.Solid(100, 50, markColor)

	got := c.Apply(base, domain.Metadata{}, wm)
	if got.Image.Bounds() != image.Rect(0, 0, 1000, 800) {
		t.Fatalf("bounds = %v, want zero-origin 1000x800", got.Image.Bounds())
	}
	checkBox(t, got.Image, image.Rect(670, 620, 970, 770), markColor, baseColor)
}
