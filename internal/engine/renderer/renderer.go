// Package renderer initializes OpenGL and owns the global pipeline state.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/hoverwave/internal/logger"
)

// Info describes the active OpenGL implementation.
type Info struct {
	Version  string
	Renderer string
	Vendor   string
	GLSL     string
}

// Renderer tracks the drawable size and default state.
// IMPORTANT: Must be created AFTER the OpenGL context is current!
type Renderer struct {
	info   Info
	width  int32
	height int32
	log    *zap.Logger
}

// New loads the GL function pointers and applies DefaultState with straight
// alpha blending.
func New(width, height int) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r := &Renderer{
		info: Info{
			Version:  gl.GoStr(gl.GetString(gl.VERSION)),
			Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
			Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
			GLSL:     gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
		},
		log: logger.Named("renderer"),
	}
	r.log.Info("OpenGL initialized",
		zap.String("version", r.info.Version),
		zap.String("renderer", r.info.Renderer),
		zap.String("vendor", r.info.Vendor),
		zap.String("glsl", r.info.GLSL),
	)

	Apply(DefaultState...)
	gl.DepthFunc(gl.LESS)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r.Resize(width, height)
	return r, nil
}

// Info returns the driver strings captured at startup.
func (r *Renderer) Info() Info {
	return r.info
}

// Resize records the drawable size and updates the default viewport.
func (r *Renderer) Resize(width, height int) {
	r.width = int32(max(width, 1))
	r.height = int32(max(height, 1))
	gl.Viewport(0, 0, r.width, r.height)
	r.log.Debug("renderer resized",
		zap.Int32("width", r.width),
		zap.Int32("height", r.height),
	)
}

// Size returns the drawable size.
func (r *Renderer) Size() (width, height int32) {
	return r.width, r.height
}

// Begin binds the default framebuffer and clears it.
func (r *Renderer) Begin(clear [4]float32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, r.width, r.height)
	gl.ClearColor(clear[0], clear[1], clear[2], clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}
