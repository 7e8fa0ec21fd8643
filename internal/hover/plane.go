package hover

import (
	"github.com/Faultbox/hoverwave/internal/engine/layout"
	"github.com/Faultbox/hoverwave/internal/engine/picking"
	"github.com/Faultbox/hoverwave/internal/engine/tween"
	"github.com/Faultbox/hoverwave/pkg/math"
)

// PlaneID identifies one plane instance. Every resize creates a plane with
// a new ID; zero means no plane.
type PlaneID uint64

// Plane is the hover mesh for one viewport size: its layout, its material
// values and its animated transform.
type Plane struct {
	ID       PlaneID
	Layout   layout.Plane
	Uniforms Uniforms

	position tween.Vec2
	scale    tween.Vec2
	hover    tween.Float
}

func newPlane(id PlaneID, lp layout.Plane) *Plane {
	return &Plane{
		ID:       id,
		Layout:   lp,
		Uniforms: Uniforms{Ratio: lp.Ratio},
		position: tween.NewVec2(math.Vec2{}),
		scale:    tween.NewVec2(math.Vec2{X: 1, Y: 1}),
		hover:    tween.NewFloat(0),
	}
}

// Advance moves the plane's animations forward by dt seconds.
func (p *Plane) Advance(dt float32) {
	p.position.Advance(dt)
	p.scale.Advance(dt)
	p.Uniforms.Hover = p.hover.Advance(dt)
}

// Position returns the plane's translation.
func (p *Plane) Position() math.Vec3 {
	v := p.position.Value()
	return math.Vec3{X: v.X, Y: v.Y, Z: 0}
}

// Scale returns the plane's scale. Z is never animated.
func (p *Plane) Scale() math.Vec3 {
	v := p.scale.Value()
	return math.Vec3{X: v.X, Y: v.Y, Z: 1}
}

// Hover returns the current hover amount.
func (p *Plane) Hover() float32 { return p.hover.Value() }

// ModelMatrix returns the plane's model transform.
func (p *Plane) ModelMatrix() math.Mat4 {
	return math.TranslateScale(p.Position(), p.Scale())
}

// Quad returns the plane's pickable rectangle.
func (p *Plane) Quad() picking.Quad {
	return picking.Quad{
		Width:    p.Layout.WorldWidth,
		Height:   p.Layout.WorldHeight,
		Position: p.Position(),
		Scale:    p.Scale().XY(),
	}
}

// Settled reports whether no animation is running.
func (p *Plane) Settled() bool {
	return p.position.Done() && p.scale.Done() && p.hover.Done()
}
