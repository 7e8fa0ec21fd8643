package hover

import (
	"errors"
	"testing"

	"github.com/Faultbox/hoverwave/internal/engine/shader"
	"github.com/Faultbox/hoverwave/pkg/math"
)

// recorder captures uniform writes by name.
type recorder struct {
	floats map[string]float32
	vec2s  map[string]math.Vec2
	vec4s  map[string]math.Vec4
	fail   string
}

func newRecorder() *recorder {
	return &recorder{
		floats: map[string]float32{},
		vec2s:  map[string]math.Vec2{},
		vec4s:  map[string]math.Vec4{},
	}
}

func (r *recorder) SetFloat(name string, v float32) error {
	if name == r.fail {
		return errors.New("boom")
	}
	r.floats[name] = v
	return nil
}

func (r *recorder) SetVec2(name string, v math.Vec2) error {
	r.vec2s[name] = v
	return nil
}

func (r *recorder) SetVec4(name string, v math.Vec4) error {
	r.vec4s[name] = v
	return nil
}

func TestUniformsApply(t *testing.T) {
	u := Uniforms{
		Amplitude:    4,
		Corners:      math.Vec4{1, 2, 3, 4},
		EffectFactor: 0.2,
		Hover:        0.5,
		HoverRadius:  0.4,
		Intersect:    math.Vec2{X: 0.5, Y: 0.25},
		Ratio:        math.Vec2{X: 0.8889, Y: 1},
		Speed:        0.4,
		StartZ:       0,
		TargetZ:      -106.6,
		Time:         1.5,
	}

	r := newRecorder()
	if err := u.Apply(r); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	floats := map[string]float32{
		UniformAmplitude:    4,
		UniformEffectFactor: 0.2,
		UniformHover:        0.5,
		UniformHoverRadius:  0.4,
		UniformSpeed:        0.4,
		UniformStartZ:       0,
		UniformTargetZ:      -106.6,
		UniformTime:         1.5,
	}
	for name, want := range floats {
		if got, ok := r.floats[name]; !ok || got != want {
			t.Errorf("%s = %v (set %v), want %v", name, got, ok, want)
		}
	}
	if r.vec2s[UniformIntersect] != u.Intersect || r.vec2s[UniformRatio] != u.Ratio {
		t.Errorf("vec2 uniforms = %+v", r.vec2s)
	}
	if r.vec4s[UniformCorners] != u.Corners {
		t.Errorf("corners = %v", r.vec4s[UniformCorners])
	}
}

func TestUniformsApplyReportsFailure(t *testing.T) {
	r := newRecorder()
	r.fail = UniformHover

	var u Uniforms
	if err := u.Apply(r); err == nil {
		t.Fatal("expected error")
	}
	// Other uniforms are still written
	if _, ok := r.floats[UniformTime]; !ok {
		t.Error("time not written after an earlier failure")
	}
}

func TestUniformDescriptorsCoverApply(t *testing.T) {
	kinds := map[string]shader.Kind{}
	for _, d := range UniformDescriptors() {
		if _, dup := kinds[d.Name]; dup {
			t.Fatalf("duplicate descriptor %q", d.Name)
		}
		kinds[d.Name] = d.Kind
	}

	r := newRecorder()
	var u Uniforms
	if err := u.Apply(r); err != nil {
		t.Fatal(err)
	}
	for name := range r.floats {
		if kinds[name] != shader.Float {
			t.Errorf("%s written as float, declared %v", name, kinds[name])
		}
	}
	for name := range r.vec2s {
		if kinds[name] != shader.Vec2 {
			t.Errorf("%s written as vec2, declared %v", name, kinds[name])
		}
	}
	for name := range r.vec4s {
		if kinds[name] != shader.Vec4 {
			t.Errorf("%s written as vec4, declared %v", name, kinds[name])
		}
	}

	for _, name := range []string{UniformDisplacement, UniformBaseTexture, UniformHoverTexture} {
		if kinds[name] != shader.Sampler2D {
			t.Errorf("%s declared %v, want sampler2D", name, kinds[name])
		}
	}
}
