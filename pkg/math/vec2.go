// Package math provides the small float32 vector and matrix set used by the
// renderer. Matrices are column-major to match OpenGL.
package math

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}
