package hover

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/hoverwave/internal/engine/camera"
	"github.com/Faultbox/hoverwave/internal/engine/mesh"
	"github.com/Faultbox/hoverwave/internal/engine/renderer"
	"github.com/Faultbox/hoverwave/internal/engine/shader"
	"github.com/Faultbox/hoverwave/internal/engine/texture"
	"github.com/Faultbox/hoverwave/internal/hover/shaders"
	"github.com/Faultbox/hoverwave/internal/logger"
)

// Textures are the three images the plane samples.
type Textures struct {
	Base         *texture.Texture
	Hover        *texture.Texture
	Displacement *texture.Texture
}

// Destroy releases all three textures.
func (t Textures) Destroy() {
	for _, tex := range []*texture.Texture{t.Base, t.Hover, t.Displacement} {
		if tex != nil {
			tex.Destroy()
		}
	}
}

// The context may be shared with a UI backend that changes these.
var planeDrawState = []renderer.Capability{
	{Cap: gl.DEPTH_TEST, On: true},
	{Cap: gl.CULL_FACE, On: false},
	{Cap: gl.SCISSOR_TEST, On: false},
	{Cap: gl.BLEND, On: true},
}

// Blending is only for the plane; later copies must overwrite.
var planeRestoreState = []renderer.Capability{
	{Cap: gl.BLEND, On: false},
}

// Renderer draws a Plane with the hover program. It keeps the GPU mesh in
// step with the plane's identity.
type Renderer struct {
	program  *shader.Program
	textures Textures

	mesh      *mesh.Mesh
	meshPlane PlaneID

	log *zap.Logger
}

// NewRenderer builds the plane program. Must be called on the GL thread.
// The renderer takes ownership of textures.
func NewRenderer(textures Textures) (*Renderer, error) {
	program, err := shader.Build(shaders.PlaneVertex, shaders.PlaneFragment, UniformDescriptors())
	if err != nil {
		return nil, fmt.Errorf("building plane program: %w", err)
	}

	r := &Renderer{
		program:  program,
		textures: textures,
		log:      logger.Named("hover"),
	}
	if len(program.Inactive) > 0 {
		r.log.Debug("uniforms optimized out", zap.Strings("uniforms", program.Inactive))
	}

	program.Use()
	err = errors.Join(
		program.SetSampler(UniformBaseTexture, unitBase),
		program.SetSampler(UniformHoverTexture, unitHover),
		program.SetSampler(UniformDisplacement, unitDisplacement),
	)
	gl.UseProgram(0)
	if err != nil {
		program.Destroy()
		return nil, err
	}

	return r, nil
}

// Sync uploads new geometry when p is not the plane the current mesh was
// built for.
func (r *Renderer) Sync(p *Plane) {
	if r.mesh != nil && r.meshPlane == p.ID {
		return
	}
	if r.mesh != nil {
		r.mesh.Destroy()
	}

	lp := p.Layout
	r.mesh = mesh.Upload(mesh.PlaneGrid(lp.WorldWidth, lp.WorldHeight, lp.SegmentsX, lp.SegmentsY))
	r.meshPlane = p.ID

	r.log.Debug("plane mesh uploaded",
		zap.Uint64("plane", uint64(p.ID)),
		zap.Int("segments_x", lp.SegmentsX),
		zap.Int("segments_y", lp.SegmentsY),
	)
}

// Draw renders p as seen by cam into the bound target.
func (r *Renderer) Draw(p *Plane, cam *camera.PerspectiveCamera) error {
	r.Sync(p)

	renderer.Apply(planeDrawState...)
	defer renderer.Apply(planeRestoreState...)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r.program.Use()
	defer gl.UseProgram(0)

	err := errors.Join(
		r.program.SetMat4(UniformModel, p.ModelMatrix()),
		r.program.SetMat4(UniformView, cam.ViewMatrix()),
		r.program.SetMat4(UniformProjection, cam.ProjectionMatrix()),
		p.Uniforms.Apply(r.program),
	)
	if err != nil {
		return fmt.Errorf("setting plane uniforms: %w", err)
	}

	r.textures.Base.Bind(unitBase)
	r.textures.Hover.Bind(unitHover)
	r.textures.Displacement.Bind(unitDisplacement)

	r.mesh.Draw()
	return nil
}

// Destroy releases the program, the mesh and the textures.
func (r *Renderer) Destroy() {
	if r.mesh != nil {
		r.mesh.Destroy()
		r.mesh = nil
	}
	r.textures.Destroy()
	r.program.Destroy()
}
