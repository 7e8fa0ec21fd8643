// Package shaders holds the GLSL sources of the hover plane.
package shaders

import _ "embed"

// PlaneVertex displaces the plane toward the viewer around the pointer.
//
//go:embed plane.vert
var PlaneVertex string

// PlaneFragment cross-fades the base and hover images through the
// displacement map.
//
//go:embed plane.frag
var PlaneFragment string
