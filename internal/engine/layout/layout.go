// Package layout sizes the hero plane so it fills a page-constrained region
// of the viewport regardless of window size.
package layout

import (
	gomath "math"

	"github.com/Faultbox/hoverwave/pkg/math"
)

// AspectRatio is the plane's height / width.
const AspectRatio = 9.0 / 16.0

// pixelsPerSegment is the mesh density: one grid cell per 10 pixels.
const pixelsPerSegment = 10

// Metrics are the page constants the plane is laid out against.
type Metrics struct {
	PageWidth     float32 // Reference content width in pixels
	Padding       float32 // Horizontal page padding in pixels
	VerticalInset float32 // Vertical space reserved above/below the plane
}

// DefaultMetrics returns the standard page metrics.
func DefaultMetrics() Metrics {
	return Metrics{
		PageWidth:     940,
		Padding:       20,
		VerticalInset: 136,
	}
}

// Frustum reports the visible world-space size of the camera's view at a
// given depth.
type Frustum interface {
	VisibleAtDepth(depth float32) (width, height float32)
}

// Plane describes the plane for one viewport size. Geometry and material are
// both built from the same Plane, so they always agree on the pixel size.
type Plane struct {
	PixelWidth  float32
	PixelHeight float32
	WorldWidth  float32
	WorldHeight float32
	SegmentsX   int
	SegmentsY   int

	// Ratio letterboxes texture sampling to the plane's aspect.
	Ratio math.Vec2
}

// PixelSize returns the plane's on-screen size in pixels for a viewport.
// Narrow viewports fall back to the viewport width minus padding, and tall
// planes are shrunk to fit the height left over by the vertical inset.
func PixelSize(m Metrics, width, height float32) (pw, ph float32) {
	if width <= m.PageWidth+2*m.Padding {
		pw = width - 2*m.Padding
	} else {
		pw = m.PageWidth
	}
	ph = pw * AspectRatio

	if limit := height - m.VerticalInset; ph > limit {
		pw *= limit / ph
		ph = limit
	}

	// Degenerate windows (smaller than the padding or inset) still get a
	// drawable plane.
	if pw < 1 || ph < 1 {
		pw, ph = 1, AspectRatio
	}
	return pw, ph
}

// Compute lays the plane out for a width x height viewport seen through f.
func Compute(m Metrics, width, height float32, f Frustum) Plane {
	pw, ph := PixelSize(m, width, height)
	visibleWidth, visibleHeight := f.VisibleAtDepth(0)

	return Plane{
		PixelWidth:  pw,
		PixelHeight: ph,
		WorldWidth:  pw * visibleWidth / width,
		WorldHeight: ph * visibleHeight / height,
		SegmentsX:   segments(pw),
		SegmentsY:   segments(ph),
		Ratio:       textureRatio(visibleWidth),
	}
}

// TargetZ is the depth the plane's corners travel to, derived from the
// camera depth and the plane's pixel width.
func TargetZ(cameraZ, pixelWidth float32) float32 {
	v := 300 / pixelWidth
	return cameraZ - cameraZ/v
}

// segments rounds half up, never below 1.
func segments(px float32) int {
	n := int(gomath.Floor(float64(px)/pixelsPerSegment + 0.5))
	if n < 1 {
		return 1
	}
	return n
}

// textureRatio is computed against half the visible width at the fixed
// plane aspect, so it does not change with the viewport.
func textureRatio(visibleWidth float32) math.Vec2 {
	pw := visibleWidth / 2
	ph := pw * AspectRatio
	if pw == 0 {
		return math.Vec2{X: 1, Y: 1}
	}
	return math.Vec2{
		X: min(pw/ph/2, 1),
		Y: min(ph/pw/0.5, 1),
	}
}
