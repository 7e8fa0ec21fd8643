package hover

import "github.com/Faultbox/hoverwave/internal/engine/layout"

// TimeStep is how much the time uniform advances per rendered frame.
const TimeStep = 0.05

// Bridge copies per-frame state into a plane's uniforms. It owns the frame
// counter, so time keeps increasing when the plane is rebuilt.
type Bridge struct {
	frames uint64
}

// Tick advances time by one frame and refreshes the derived and tunable
// uniforms. It runs every frame whether or not anything changed.
func (b *Bridge) Tick(u *Uniforms, p Params, cameraZ, pixelWidth float32) {
	b.frames++
	u.Time = b.Time()
	u.TargetZ = layout.TargetZ(cameraZ, pixelWidth)

	u.Amplitude = p.Amplitude
	u.EffectFactor = p.Effect
	u.HoverRadius = p.Radius
	u.Speed = p.Speed
}

// Frames returns the number of ticks so far.
func (b *Bridge) Frames() uint64 { return b.frames }

// Time returns the current value of the time uniform.
func (b *Bridge) Time() float32 {
	return float32(float64(b.frames) * TimeStep)
}
