package renderer

import "github.com/go-gl/gl/v4.1-core/gl"

// Capability is one glEnable/glDisable switch.
type Capability struct {
	Cap uint32
	On  bool
}

// DefaultState is the state New leaves the context in: depth testing on,
// face culling off so planes are visible from both sides, and blending on.
var DefaultState = []Capability{
	{Cap: gl.DEPTH_TEST, On: true},
	{Cap: gl.CULL_FACE, On: false},
	{Cap: gl.BLEND, On: true},
}

// Apply sets each capability in order.
func Apply(caps ...Capability) {
	for _, c := range caps {
		if c.On {
			gl.Enable(c.Cap)
		} else {
			gl.Disable(c.Cap)
		}
	}
}
