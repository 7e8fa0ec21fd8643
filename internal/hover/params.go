// Package hover implements the hover-displacement plane: its layout, the
// uniforms that drive its shaders, the pointer interaction that animates it,
// and the scene that renders it.
//
// The package is split so everything except Renderer and Scene runs without
// a GL context: State owns the plane, the camera, the controller and the
// bridge, and can be driven and inspected from tests.
package hover

import "github.com/Faultbox/hoverwave/internal/config"

// Params are the live-tunable effect settings. They are copied into the
// uniforms every frame without smoothing and are not validated here; the
// panel clamps what it writes.
type Params struct {
	Amplitude float32 // Wave height
	Effect    float32 // Displacement strength of the cross-fade
	Radius    float32 // Wave falloff radius in UV units
	Speed     float32 // Wave spatial frequency
}

// DefaultParams returns the stock effect settings.
func DefaultParams() Params {
	return Params{Amplitude: 4.0, Effect: 0.2, Radius: 0.4, Speed: 0.4}
}

// ParamsFromConfig converts the effect section of the config.
func ParamsFromConfig(c config.EffectConfig) Params {
	return Params{
		Amplitude: c.Amplitude,
		Effect:    c.Effect,
		Radius:    c.Radius,
		Speed:     c.Speed,
	}
}
