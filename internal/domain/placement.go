package domain

import "math"

// DefaultMargin is the inset from the bottom-right corner as a fraction of the base width.
const DefaultMargin = 0.03

// PlacementPlan describes where and how large the watermark is drawn.
// All values are in display-oriented base image pixels.
type PlacementPlan struct {
	// EffectiveWidth and EffectiveHeight are the base size after orientation
	// normalisation; the offsets are relative to that frame.
	EffectiveWidth  int `json:"effective_width"`
	EffectiveHeight int `json:"effective_height"`
	ScaledWidth     int `json:"scaled_width"`
	ScaledHeight    int `json:"scaled_height"`
	XOffset         int `json:"x_offset"`
	YOffset         int `json:"y_offset"`
}

// Plan computes the placement of a wmWidth x wmHeight watermark on a
// baseWidth x baseHeight image.
//
// The vertical inset is margin*baseWidth, not margin*baseHeight. Existing
// outputs depend on it, so both offsets use the width.
func Plan(baseWidth, baseHeight, wmWidth, wmHeight int, rotated bool, margin float64) PlacementPlan {
	sw := EffectiveWidth(baseWidth, rotated)
	sh := 0
	if wmWidth > 0 {
		sh = int(float64(sw) / float64(wmWidth) * float64(wmHeight))
	}
	inset := margin * float64(baseWidth)
	return PlacementPlan{
		EffectiveWidth:  baseWidth,
		EffectiveHeight: baseHeight,
		ScaledWidth:     sw,
		ScaledHeight:    sh,
		XOffset:         int(math.Floor(float64(baseWidth) - float64(sw) - inset)),
		YOffset:         int(math.Floor(float64(baseHeight) - float64(sh) - inset)),
	}
}

// Degenerate reports whether the scaled watermark has no pixels to draw.
func (p PlacementPlan) Degenerate() bool {
	return p.ScaledWidth < 1 || p.ScaledHeight < 1
}

// Clipped reports whether part of the watermark falls outside the base image.
func (p PlacementPlan) Clipped() bool {
	return p.XOffset < 0 || p.YOffset < 0 ||
		p.XOffset+p.ScaledWidth > p.EffectiveWidth ||
		p.YOffset+p.ScaledHeight > p.EffectiveHeight
}
