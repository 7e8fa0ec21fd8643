package hover

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/Faultbox/hoverwave/internal/engine/framebuffer"
	"github.com/Faultbox/hoverwave/internal/engine/postfx"
	"github.com/Faultbox/hoverwave/internal/logger"
	"github.com/Faultbox/hoverwave/internal/telemetry"
)

// Viewport is a window size in pointer coordinates plus the drawable size
// in pixels. They differ on HiDPI displays.
type Viewport struct {
	Width, Height                 int
	DrawableWidth, DrawableHeight int
}

// Scene ties State to the GL side: the plane renderer and the composer.
// Every entry point is a no-op once the scene is closed.
type Scene struct {
	state    *State
	renderer *Renderer
	composer *postfx.Composer
	pass     *postfx.RenderPass
	trace    *telemetry.Trace

	closed bool
	log    *zap.Logger
}

// planeDrawer adapts the scene to the render pass.
type planeDrawer struct{ s *Scene }

func (d planeDrawer) Draw() error {
	return d.s.renderer.Draw(d.s.state.Plane(), d.s.state.Camera())
}

// NewScene uploads the images and builds the render pipeline. state must
// already be sized for vp. The scene takes ownership of trace, which may be
// nil. Must be called on the GL thread.
func NewScene(state *State, images Images, vp Viewport, clearColor [4]float32, trace *telemetry.Trace) (*Scene, error) {
	textures := images.Upload()

	renderer, err := NewRenderer(textures)
	if err != nil {
		textures.Destroy()
		return nil, err
	}

	composer, err := postfx.New(int32(vp.DrawableWidth), int32(vp.DrawableHeight))
	if err != nil {
		renderer.Destroy()
		return nil, fmt.Errorf("creating composer: %w", err)
	}

	s := &Scene{
		state:    state,
		renderer: renderer,
		composer: composer,
		trace:    trace,
		log:      logger.Named("scene"),
	}
	s.pass = postfx.NewRenderPass(planeDrawer{s}, clearColor)
	composer.AddPass(s.pass)

	names := make([]string, 0, len(composer.Passes()))
	for _, p := range composer.Passes() {
		names = append(names, p.Name())
	}
	s.log.Info("scene mounted",
		zap.Strings("passes", names),
		zap.Int("width", vp.Width),
		zap.Int("height", vp.Height),
		zap.Strings("placeholders", images.Missing),
	)
	return s, nil
}

// Resize rebuilds the plane for a new viewport and resizes the buffers.
func (s *Scene) Resize(vp Viewport) {
	if s.closed {
		return
	}
	s.state.Resize(float32(vp.Width), float32(vp.Height))
	s.composer.SetSize(int32(vp.DrawableWidth), int32(vp.DrawableHeight))

	w, h := s.composer.Size()
	s.log.Debug("buffers resized", zap.Int32("width", w), zap.Int32("height", h))
}

// PointerMove forwards a pointer position in window coordinates.
func (s *Scene) PointerMove(x, y float32) {
	if s.closed {
		return
	}
	s.state.PointerMove(x, y)
}

// PointerOut forwards the pointer leaving the plane's window.
func (s *Scene) PointerOut() {
	if s.closed {
		return
	}
	s.state.PointerOut()
}

// Frame advances the scene by dt seconds and renders it into the
// composer's output.
func (s *Scene) Frame(dt float32) error {
	if s.closed {
		return nil
	}

	s.state.Update(dt)
	s.renderer.Sync(s.state.Plane())

	if err := s.composer.Render(); err != nil {
		return err
	}

	if err := s.trace.Record(s.sample(dt)); err != nil {
		s.log.Warn("trace disabled", zap.Error(err))
		s.trace.Close()
		s.trace = nil
	}
	return nil
}

func (s *Scene) sample(dt float32) telemetry.FrameSample {
	p := s.state.Plane()
	u := p.Uniforms
	pos := p.Position()
	return telemetry.FrameSample{
		Frame:      s.state.Frames(),
		Plane:      uint64(p.ID),
		DeltaMs:    dt * 1000,
		Time:       u.Time,
		Hover:      u.Hover,
		IntersectU: u.Intersect.X,
		IntersectV: u.Intersect.Y,
		PositionX:  pos.X,
		PositionY:  pos.Y,
		Scale:      p.Scale().X,
		TargetZ:    u.TargetZ,
		Amplitude:  u.Amplitude,
		Effect:     u.EffectFactor,
		Radius:     u.HoverRadius,
		Speed:      u.Speed,
		Hovering:   s.state.Controller().Hovering(),
		Settled:    p.Settled(),
	}
}

// Present draws the last frame to the default framebuffer.
func (s *Scene) Present(x, y, width, height int32) error {
	if s.closed {
		return nil
	}
	return s.composer.Present(x, y, width, height)
}

// Output returns the buffer holding the last frame, nil once closed.
func (s *Scene) Output() *framebuffer.Framebuffer {
	if s.closed {
		return nil
	}
	return s.composer.Output()
}

// Snapshot reads back the last frame.
func (s *Scene) Snapshot() (image.Image, error) {
	if s.closed {
		return nil, fmt.Errorf("scene closed")
	}
	return s.composer.Output().ReadImage(), nil
}

// SetClearColor changes the background of the render pass.
func (s *Scene) SetClearColor(c [4]float32) {
	s.pass.SetClearColor(c)
}

// State returns the scene state.
func (s *Scene) State() *State { return s.state }

// Cursor returns the cursor the host should show. It is the default cursor
// once closed.
func (s *Scene) Cursor() Cursor {
	if s.closed {
		return CursorDefault
	}
	return s.state.Controller().Cursor()
}

// Close releases GL resources and closes the trace. Safe to call twice.
func (s *Scene) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.state.Controller().Forget()

	s.composer.Destroy()
	s.renderer.Destroy()
	rows, path := s.trace.Rows(), s.trace.Path()
	if err := s.trace.Close(); err != nil {
		s.log.Warn("closing trace", zap.Error(err))
	}
	s.log.Info("scene closed",
		zap.Uint64("frames", s.state.Frames()),
		zap.Int("trace_rows", rows),
		zap.String("trace", path),
	)
}
