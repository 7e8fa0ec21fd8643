package shader

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/hoverwave/pkg/math"
)

// Kind is the GLSL type of a uniform.
type Kind int

const (
	Float Kind = iota
	Vec2
	Vec3
	Vec4
	Mat4
	Sampler2D
)

func (k Kind) String() string {
	switch k {
	case Float:
		return "float"
	case Vec2:
		return "vec2"
	case Vec3:
		return "vec3"
	case Vec4:
		return "vec4"
	case Mat4:
		return "mat4"
	case Sampler2D:
		return "sampler2D"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// kindFromGL maps an active uniform type reported by the driver to a Kind.
func kindFromGL(t uint32) (Kind, bool) {
	switch t {
	case gl.FLOAT:
		return Float, true
	case gl.FLOAT_VEC2:
		return Vec2, true
	case gl.FLOAT_VEC3:
		return Vec3, true
	case gl.FLOAT_VEC4:
		return Vec4, true
	case gl.FLOAT_MAT4:
		return Mat4, true
	case gl.SAMPLER_2D:
		return Sampler2D, true
	}
	return 0, false
}

// Uniform declares a uniform the program is expected to expose.
type Uniform struct {
	Name string
	Kind Kind
}

// ErrUnknownUniform is returned when setting a uniform that was not declared.
var ErrUnknownUniform = errors.New("unknown uniform")

// ErrKindMismatch is returned when a uniform is set or declared with the
// wrong type.
var ErrKindMismatch = errors.New("uniform kind mismatch")

type slot struct {
	kind     Kind
	location int32 // -1 when the compiler optimized the uniform out
}

// Program is a linked shader program with a declared, type-checked set of
// uniforms.
type Program struct {
	id    uint32
	slots map[string]slot

	// Inactive lists declared uniforms the driver reported as unused.
	Inactive []string
}

// Build compiles and links a program and checks the declared uniforms
// against the program's active uniforms. A declared uniform whose type
// disagrees with the source is an error; one the compiler removed is
// recorded in Inactive and silently ignored by the setters.
func Build(vertexSrc, fragmentSrc string, uniforms []Uniform) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}

	active := activeUniforms(id)
	inactive, err := checkUniforms(uniforms, active)
	if err != nil {
		gl.DeleteProgram(id)
		return nil, err
	}

	p := &Program{
		id:       id,
		slots:    make(map[string]slot, len(uniforms)),
		Inactive: inactive,
	}
	for _, u := range uniforms {
		p.slots[u.Name] = slot{kind: u.Kind, location: GetUniform(id, u.Name)}
	}
	return p, nil
}

// activeUniforms queries the linked program for its active uniforms.
// Types the renderer never uses are skipped.
func activeUniforms(program uint32) map[string]Kind {
	var count, maxLen int32
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORMS, &count)
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)
	if maxLen < 1 {
		maxLen = 1
	}

	active := make(map[string]Kind, count)
	buf := make([]uint8, maxLen)
	for i := int32(0); i < count; i++ {
		var length, size int32
		var xtype uint32
		gl.GetActiveUniform(program, uint32(i), maxLen, &length, &size, &xtype, &buf[0])

		kind, ok := kindFromGL(xtype)
		if !ok {
			continue
		}
		name := strings.TrimSuffix(string(buf[:length]), "[0]")
		active[name] = kind
	}
	return active
}

// checkUniforms compares declared uniforms with what the program exposes.
func checkUniforms(declared []Uniform, active map[string]Kind) (inactive []string, err error) {
	seen := make(map[string]bool, len(declared))
	for _, u := range declared {
		if seen[u.Name] {
			return nil, fmt.Errorf("uniform %q declared twice", u.Name)
		}
		seen[u.Name] = true

		got, ok := active[u.Name]
		if !ok {
			inactive = append(inactive, u.Name)
			continue
		}
		if got != u.Kind {
			return nil, fmt.Errorf("%w: %q declared %s, shader has %s", ErrKindMismatch, u.Name, u.Kind, got)
		}
	}
	sort.Strings(inactive)
	return inactive, nil
}

// ID returns the OpenGL program ID.
func (p *Program) ID() uint32 { return p.id }

// Use makes the program current.
func (p *Program) Use() { gl.UseProgram(p.id) }

func (p *Program) lookup(name string, kind Kind) (int32, error) {
	s, ok := p.slots[name]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownUniform, name)
	}
	if s.kind != kind {
		return -1, fmt.Errorf("%w: %q is %s, set as %s", ErrKindMismatch, name, s.kind, kind)
	}
	return s.location, nil
}

// SetFloat sets a float uniform. The program must be in use.
func (p *Program) SetFloat(name string, v float32) error {
	loc, err := p.lookup(name, Float)
	if err != nil {
		return err
	}
	if loc >= 0 {
		gl.Uniform1f(loc, v)
	}
	return nil
}

// SetVec2 sets a vec2 uniform.
func (p *Program) SetVec2(name string, v math.Vec2) error {
	loc, err := p.lookup(name, Vec2)
	if err != nil {
		return err
	}
	if loc >= 0 {
		gl.Uniform2f(loc, v.X, v.Y)
	}
	return nil
}

// SetVec4 sets a vec4 uniform.
func (p *Program) SetVec4(name string, v math.Vec4) error {
	loc, err := p.lookup(name, Vec4)
	if err != nil {
		return err
	}
	if loc >= 0 {
		gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
	}
	return nil
}

// SetMat4 sets a mat4 uniform.
func (p *Program) SetMat4(name string, m math.Mat4) error {
	loc, err := p.lookup(name, Mat4)
	if err != nil {
		return err
	}
	if loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, m.Ptr())
	}
	return nil
}

// SetSampler binds a sampler2D uniform to a texture unit.
func (p *Program) SetSampler(name string, unit int32) error {
	loc, err := p.lookup(name, Sampler2D)
	if err != nil {
		return err
	}
	if loc >= 0 {
		gl.Uniform1i(loc, unit)
	}
	return nil
}

// Destroy deletes the program.
func (p *Program) Destroy() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
