package hover

import (
	"errors"

	"github.com/Faultbox/hoverwave/internal/engine/shader"
	"github.com/Faultbox/hoverwave/pkg/math"
)

// Uniform names shared with the plane shaders.
const (
	UniformAmplitude    = "amplitude"
	UniformCorners      = "corners"
	UniformEffectFactor = "effectFactor"
	UniformHover        = "hover"
	UniformHoverRadius  = "hoverRadius"
	UniformIntersect    = "intersect"
	UniformRatio        = "ratio"
	UniformSpeed        = "speed"
	UniformStartZ       = "startZ"
	UniformTargetZ      = "targetZ"
	UniformTime         = "time"

	UniformDisplacement = "u_disp"
	UniformBaseTexture  = "u_texture"
	UniformHoverTexture = "u_texture2"

	UniformModel      = "modelMatrix"
	UniformView       = "viewMatrix"
	UniformProjection = "projectionMatrix"
)

// Texture units the samplers are bound to.
const (
	unitBase         = 0
	unitHover        = 1
	unitDisplacement = 2
)

// UniformDescriptors lists every uniform of the plane program with its type.
// The program build checks the shaders against this table.
func UniformDescriptors() []shader.Uniform {
	return []shader.Uniform{
		{Name: UniformAmplitude, Kind: shader.Float},
		{Name: UniformCorners, Kind: shader.Vec4},
		{Name: UniformEffectFactor, Kind: shader.Float},
		{Name: UniformHover, Kind: shader.Float},
		{Name: UniformHoverRadius, Kind: shader.Float},
		{Name: UniformIntersect, Kind: shader.Vec2},
		{Name: UniformRatio, Kind: shader.Vec2},
		{Name: UniformSpeed, Kind: shader.Float},
		{Name: UniformStartZ, Kind: shader.Float},
		{Name: UniformTargetZ, Kind: shader.Float},
		{Name: UniformTime, Kind: shader.Float},
		{Name: UniformDisplacement, Kind: shader.Sampler2D},
		{Name: UniformBaseTexture, Kind: shader.Sampler2D},
		{Name: UniformHoverTexture, Kind: shader.Sampler2D},
		{Name: UniformModel, Kind: shader.Mat4},
		{Name: UniformView, Kind: shader.Mat4},
		{Name: UniformProjection, Kind: shader.Mat4},
	}
}

// Uniforms is the value set of one plane's material.
type Uniforms struct {
	Amplitude    float32
	Corners      math.Vec4
	EffectFactor float32
	Hover        float32 // 0 at rest, 1 fully hovered
	HoverRadius  float32
	Intersect    math.Vec2 // Pointer position in UV space
	Ratio        math.Vec2
	Speed        float32
	StartZ       float32
	TargetZ      float32
	Time         float32
}

// UniformSetter receives uniform values. *shader.Program implements it.
type UniformSetter interface {
	SetFloat(name string, v float32) error
	SetVec2(name string, v math.Vec2) error
	SetVec4(name string, v math.Vec4) error
}

// Apply pushes every value to s and reports all failures together.
func (u *Uniforms) Apply(s UniformSetter) error {
	return errors.Join(
		s.SetFloat(UniformAmplitude, u.Amplitude),
		s.SetVec4(UniformCorners, u.Corners),
		s.SetFloat(UniformEffectFactor, u.EffectFactor),
		s.SetFloat(UniformHover, u.Hover),
		s.SetFloat(UniformHoverRadius, u.HoverRadius),
		s.SetVec2(UniformIntersect, u.Intersect),
		s.SetVec2(UniformRatio, u.Ratio),
		s.SetFloat(UniformSpeed, u.Speed),
		s.SetFloat(UniformStartZ, u.StartZ),
		s.SetFloat(UniformTargetZ, u.TargetZ),
		s.SetFloat(UniformTime, u.Time),
	)
}
