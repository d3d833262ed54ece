package app

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"

	"github.com/bft-labs/logostamp/internal/domain"
)

// Composite is the outcome of stamping one image.
type Composite struct {
	// Image is in the source's stored orientation, ready to encode.
	Image *image.NRGBA

	Resolution domain.Resolution
	Plan       domain.PlacementPlan

	// Skipped is set when the plan was degenerate and the base was left untouched.
	Skipped bool
}

// Compositor places a watermark in the bottom-right corner of base images.
// It is stateless and safe to reuse across files.
type Compositor struct {
	policy domain.RotationPolicy
	margin float64
}

// NewCompositor creates a compositor.
func NewCompositor(policy domain.RotationPolicy, margin float64) *Compositor {
	if len(policy.RotatedTags) == 0 {
		policy = domain.DefaultRotationPolicy()
	}
	return &Compositor{policy: policy, margin: margin}
}

// Apply stamps wm onto base.
//
// The base is first brought to display orientation so the watermark lands in
// the corner a viewer sees as bottom-right. After compositing the inverse
// transform restores the stored orientation, so the source's EXIF tag still
// describes the output pixels. wm is never modified.
func (c *Compositor) Apply(base image.Image, md domain.Metadata, wm image.Image) Composite {
	b := base.Bounds()
	res := c.policy.Resolve(md, b.Dx(), b.Dy())

	display := applyTransform(base, res.Transform)
	db := display.Bounds()
	wb := wm.Bounds()
	plan := domain.Plan(db.Dx(), db.Dy(), wb.Dx(), wb.Dy(), res.Rotated, c.margin)

	out := Composite{Resolution: res, Plan: plan}
	stamped := display
	if plan.Degenerate() {
		out.Skipped = true
	} else {
		scaled := resize.Resize(uint(plan.ScaledWidth), uint(plan.ScaledHeight), wm, resize.Bilinear)
		// straight alpha over the base; pixels outside the box are copied as-is
		// and a negative offset clips the watermark
		stamped = imaging.Overlay(display, scaled, image.Pt(plan.XOffset, plan.YOffset), 1.0)
	}

	if res.Transform == domain.TransformNone {
		out.Image = stamped
	} else {
		out.Image = applyTransform(stamped, res.Transform.Inverse())
	}
	return out
}
