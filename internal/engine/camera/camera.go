// Package camera provides the perspective camera the hero plane is viewed
// through.
package camera

import (
	gomath "math"

	"github.com/Faultbox/hoverwave/pkg/math"
)

// PerspectiveCamera sits on the +Z axis looking at the origin.
type PerspectiveCamera struct {
	FOV    float32 // Vertical field of view in degrees
	Aspect float32 // Width / height
	Near   float32
	Far    float32

	// Distance is the camera's z position.
	Distance float32
}

// NewPerspectiveCamera creates a camera with the given vertical FOV (degrees)
// placed distance units in front of the origin.
func NewPerspectiveCamera(fov, aspect, near, far, distance float32) *PerspectiveCamera {
	return &PerspectiveCamera{
		FOV:      fov,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
		Distance: distance,
	}
}

// Position returns the camera position in world space.
func (c *PerspectiveCamera) Position() math.Vec3 {
	return math.Vec3{X: 0, Y: 0, Z: c.Distance}
}

// SetAspect updates the aspect ratio after a viewport resize.
func (c *PerspectiveCamera) SetAspect(width, height float32) {
	if height <= 0 {
		return
	}
	c.Aspect = width / height
}

// ViewMatrix returns the view matrix for this camera.
func (c *PerspectiveCamera) ViewMatrix() math.Mat4 {
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(c.Position(), math.Vec3{}, up)
}

// ProjectionMatrix returns the perspective projection matrix.
func (c *PerspectiveCamera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.fovRadians(), c.Aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *PerspectiveCamera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// VisibleAtDepth returns the world-space width and height visible at the
// given depth. Depths in front of the camera are measured from it.
func (c *PerspectiveCamera) VisibleAtDepth(depth float32) (width, height float32) {
	if depth < c.Distance {
		depth -= c.Distance
	} else {
		depth += c.Distance
	}

	height = 2 * float32(gomath.Tan(float64(c.fovRadians())/2)) * float32(gomath.Abs(float64(depth)))
	width = height * c.Aspect
	return width, height
}

func (c *PerspectiveCamera) fovRadians() float32 {
	return c.FOV * gomath.Pi / 180
}
