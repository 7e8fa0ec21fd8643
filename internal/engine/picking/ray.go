// Package picking provides ray casting against flat, unrotated quads.
package picking

import (
	gomath "math"

	"github.com/Faultbox/hoverwave/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// Quad is an axis-aligned rectangle in a plane of constant Z, described the
// way a mesh is placed: local size, then scaled and translated.
type Quad struct {
	Width, Height float32 // Local size before scaling
	Position      math.Vec3
	Scale         math.Vec2
}

// Hit is a ray/quad intersection.
type Hit struct {
	Point math.Vec3 // World-space intersection
	UV    math.Vec2 // (0,0) bottom-left, (1,1) top-right
	T     float32   // Distance along the ray
}

// ScreenToNDC converts pixel coordinates (origin top-left, Y down) to
// normalized device coordinates in [-1, 1] with Y up.
func ScreenToNDC(screenX, screenY, viewportW, viewportH float32) math.Vec2 {
	return math.Vec2{
		X: screenX/viewportW*2 - 1,
		Y: -screenY/viewportH*2 + 1,
	}
}

// FromNDC builds a world-space ray through the given NDC position.
// invViewProj is the inverse of the view-projection matrix.
func FromNDC(ndc math.Vec2, invViewProj math.Mat4) Ray {
	nearWorld := invViewProj.Unproject(math.Vec3{X: ndc.X, Y: ndc.Y, Z: -1})
	farWorld := invViewProj.Unproject(math.Vec3{X: ndc.X, Y: ndc.Y, Z: 1})

	return Ray{
		Origin:    nearWorld,
		Direction: farWorld.Sub(nearWorld).Normalize(),
	}
}

// IntersectPlaneZ intersects the ray with the plane z = planeZ.
func (r Ray) IntersectPlaneZ(planeZ float32) (p math.Vec3, t float32, ok bool) {
	if gomath.Abs(float64(r.Direction.Z)) < 1e-6 {
		return math.Vec3{}, 0, false // Ray parallel to plane
	}

	t = (planeZ - r.Origin.Z) / r.Direction.Z
	if t < 0 {
		return math.Vec3{}, 0, false // Intersection behind ray origin
	}

	return r.Origin.Add(r.Direction.Scale(t)), t, true
}

// IntersectQuad tests the ray against q. Edges count as inside.
func (r Ray) IntersectQuad(q Quad) (Hit, bool) {
	if q.Width <= 0 || q.Height <= 0 || q.Scale.X == 0 || q.Scale.Y == 0 {
		return Hit{}, false
	}

	p, t, ok := r.IntersectPlaneZ(q.Position.Z)
	if !ok {
		return Hit{}, false
	}

	lx := (p.X - q.Position.X) / q.Scale.X
	ly := (p.Y - q.Position.Y) / q.Scale.Y
	if gomath.Abs(float64(lx)) > float64(q.Width/2) || gomath.Abs(float64(ly)) > float64(q.Height/2) {
		return Hit{}, false
	}

	return Hit{
		Point: p,
		UV:    math.Vec2{X: lx/q.Width + 0.5, Y: ly/q.Height + 0.5},
		T:     t,
	}, true
}
