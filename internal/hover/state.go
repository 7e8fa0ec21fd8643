package hover

import (
	"go.uber.org/zap"

	"github.com/Faultbox/hoverwave/internal/config"
	"github.com/Faultbox/hoverwave/internal/engine/camera"
	"github.com/Faultbox/hoverwave/internal/engine/layout"
	"github.com/Faultbox/hoverwave/internal/engine/picking"
	"github.com/Faultbox/hoverwave/internal/logger"
	"github.com/Faultbox/hoverwave/pkg/math"
)

// State is everything about the hover scene that does not need a GL
// context: the camera, the single plane, the controller and the bridge.
type State struct {
	camera     *camera.PerspectiveCamera
	metrics    layout.Metrics
	params     Params
	controller *Controller
	bridge     Bridge

	plane  *Plane
	lastID PlaneID

	pointer    math.Vec2 // Last forwarded pointer position
	hasPointer bool

	width, height float32 // Viewport in pointer coordinates
	log           *zap.Logger
}

// NewState creates the scene state for a width x height viewport.
func NewState(cam *camera.PerspectiveCamera, metrics layout.Metrics, params Params, width, height float32) *State {
	s := &State{
		camera:     cam,
		metrics:    metrics,
		params:     params,
		controller: NewController(),
		log:        logger.Named("hover"),
	}
	s.Resize(width, height)
	return s
}

// NewStateFromConfig builds the camera, metrics and parameters from cfg.
func NewStateFromConfig(cfg *config.Config, width, height float32) *State {
	c := cfg.Camera
	cam := camera.NewPerspectiveCamera(c.FOV, width/max(height, 1), c.Near, c.Far, c.Distance)
	metrics := layout.Metrics{
		PageWidth:     cfg.Layout.PageWidth,
		Padding:       cfg.Layout.Padding,
		VerticalInset: cfg.Layout.VerticalInset,
	}
	return NewState(cam, metrics, ParamsFromConfig(cfg.Effect), width, height)
}

// Resize rebuilds the plane for a new viewport. The camera aspect, the
// layout and the layout-derived uniforms are all updated here together; the
// old plane is discarded, never reused.
func (s *State) Resize(width, height float32) {
	width, height = max(width, 1), max(height, 1)
	s.width, s.height = width, height
	s.camera.SetAspect(width, height)

	lp := layout.Compute(s.metrics, width, height, s.camera)

	intersect := s.controller.Interaction().PointerUV
	s.lastID++
	s.plane = newPlane(s.lastID, lp)
	s.plane.Uniforms.Intersect = intersect
	s.plane.Uniforms.TargetZ = layout.TargetZ(s.camera.Distance, lp.PixelWidth)
	s.syncParams()

	s.controller.Forget()
	s.hasPointer = false

	s.log.Debug("plane rebuilt",
		zap.Uint64("plane", uint64(s.plane.ID)),
		zap.Float32("width", width),
		zap.Float32("height", height),
		zap.Float32("pixel_width", lp.PixelWidth),
		zap.Int("segments_x", lp.SegmentsX),
		zap.Int("segments_y", lp.SegmentsY),
	)
}

// PointerMove handles a pointer at (x, y) in viewport coordinates, origin
// top-left. A pointer that has not moved since the last call is ignored so
// that running follow tweens can settle.
func (s *State) PointerMove(x, y float32) {
	p := math.Vec2{X: x, Y: y}
	if s.hasPointer && p == s.pointer {
		return
	}
	s.pointer, s.hasPointer = p, true

	ndc := picking.ScreenToNDC(x, y, s.width, s.height)
	ray := picking.FromNDC(ndc, s.camera.ViewProjection().Inverse())

	if hit, ok := ray.IntersectQuad(s.plane.Quad()); ok {
		s.controller.Move(ndc, s.plane, hit.UV)
		return
	}
	s.controller.Move(ndc, nil, math.Vec2{})
}

// PointerOut handles the pointer leaving the viewport or being captured by
// other UI.
func (s *State) PointerOut() {
	s.hasPointer = false
	s.controller.Out()
}

// Update advances animations by dt seconds and runs the bridge for one frame.
func (s *State) Update(dt float32) {
	s.plane.Advance(dt)
	s.bridge.Tick(&s.plane.Uniforms, s.params, s.camera.Distance, s.plane.Layout.PixelWidth)
}

// syncParams copies the tunables without advancing time, so a freshly built
// plane is consistent before its first frame.
func (s *State) syncParams() {
	u := &s.plane.Uniforms
	u.Time = s.bridge.Time()
	u.Amplitude = s.params.Amplitude
	u.EffectFactor = s.params.Effect
	u.HoverRadius = s.params.Radius
	u.Speed = s.params.Speed
}

// Params returns the live parameters for editing.
func (s *State) Params() *Params { return &s.params }

// Plane returns the current plane.
func (s *State) Plane() *Plane { return s.plane }

// Camera returns the scene camera.
func (s *State) Camera() *camera.PerspectiveCamera { return s.camera }

// Controller returns the pointer controller.
func (s *State) Controller() *Controller { return s.controller }

// Frames returns the number of frames run.
func (s *State) Frames() uint64 { return s.bridge.Frames() }

// Viewport returns the viewport size in pointer coordinates.
func (s *State) Viewport() (width, height float32) { return s.width, s.height }
