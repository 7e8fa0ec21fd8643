// Package postfx chains full-frame render passes through ping-pong
// framebuffers, then presents the result.
package postfx

import (
	_ "embed"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/hoverwave/internal/engine/framebuffer"
	"github.com/Faultbox/hoverwave/internal/engine/renderer"
	"github.com/Faultbox/hoverwave/internal/engine/shader"
	"github.com/Faultbox/hoverwave/internal/logger"
)

//go:embed shaders/copy.vert
var copyVertSrc string

//go:embed shaders/copy.frag
var copyFragSrc string

var copyUniforms = []shader.Uniform{
	{Name: "tDiffuse", Kind: shader.Sampler2D},
	{Name: "opacity", Kind: shader.Float},
}

// The copy overwrites the target whatever the scene left enabled.
var (
	presentState = []renderer.Capability{
		{Cap: gl.DEPTH_TEST, On: false},
		{Cap: gl.BLEND, On: false},
	}
	presentRestoreState = []renderer.Capability{
		{Cap: gl.DEPTH_TEST, On: true},
	}
)

// Pass is one step of the chain. It reads the previous pass's output (0 for
// the first pass) and renders into target.
type Pass interface {
	Name() string
	Enabled() bool
	Render(input uint32, target *framebuffer.Framebuffer) error
}

// Composer owns the offscreen buffers and runs the passes in order.
type Composer struct {
	passes []Pass
	read   *framebuffer.Framebuffer
	write  *framebuffer.Framebuffer

	copyProgram *shader.Program
	emptyVAO    uint32

	width, height int32
	log           *zap.Logger
}

// New creates a composer rendering at width x height pixels.
// Must be called on the GL thread.
func New(width, height int32) (*Composer, error) {
	c := &Composer{log: logger.Named("postfx")}

	var err error
	if c.read, err = framebuffer.New(width, height, true); err != nil {
		return nil, fmt.Errorf("read buffer: %w", err)
	}
	if c.write, err = framebuffer.New(width, height, true); err != nil {
		c.read.Destroy()
		return nil, fmt.Errorf("write buffer: %w", err)
	}
	if c.copyProgram, err = shader.Build(copyVertSrc, copyFragSrc, copyUniforms); err != nil {
		c.read.Destroy()
		c.write.Destroy()
		return nil, fmt.Errorf("copy shader: %w", err)
	}

	// Core profile refuses draws without a bound VAO, even attribute-less ones.
	gl.GenVertexArrays(1, &c.emptyVAO)

	c.width, c.height = c.read.Size()
	return c, nil
}

// AddPass appends a pass to the chain.
func (c *Composer) AddPass(p Pass) {
	c.passes = append(c.passes, p)
	c.log.Debug("pass added", zap.String("pass", p.Name()), zap.Int("count", len(c.passes)))
}

// Passes returns the passes in order.
func (c *Composer) Passes() []Pass {
	return c.passes
}

// SetSize resizes both buffers.
func (c *Composer) SetSize(width, height int32) {
	c.read.Resize(width, height)
	c.write.Resize(width, height)
	c.width, c.height = c.read.Size()
}

// Size returns the render size in pixels.
func (c *Composer) Size() (width, height int32) {
	return c.width, c.height
}

// Render runs every enabled pass. Afterwards Output holds the final image.
func (c *Composer) Render() error {
	var input uint32
	for _, p := range c.passes {
		if !p.Enabled() {
			continue
		}
		c.write.Bind()
		if err := p.Render(input, c.write); err != nil {
			c.write.Unbind()
			return fmt.Errorf("pass %s: %w", p.Name(), err)
		}
		c.write.Unbind()

		c.read, c.write = c.write, c.read
		input = c.read.ColorTexture()
	}
	return nil
}

// Output returns the buffer holding the last rendered frame.
func (c *Composer) Output() *framebuffer.Framebuffer {
	return c.read
}

// Present draws the output to the default framebuffer over the given
// viewport.
func (c *Composer) Present(x, y, width, height int32) error {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(x, y, width, height)
	renderer.Apply(presentState...)
	defer renderer.Apply(presentRestoreState...)

	c.copyProgram.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, c.read.ColorTexture())
	if err := c.copyProgram.SetSampler("tDiffuse", 0); err != nil {
		return err
	}
	if err := c.copyProgram.SetFloat("opacity", 1); err != nil {
		return err
	}

	gl.BindVertexArray(c.emptyVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
	return nil
}

// Destroy releases buffers and programs.
func (c *Composer) Destroy() {
	if c.emptyVAO != 0 {
		gl.DeleteVertexArrays(1, &c.emptyVAO)
		c.emptyVAO = 0
	}
	if c.copyProgram != nil {
		c.copyProgram.Destroy()
	}
	c.read.Destroy()
	c.write.Destroy()
}
