package hover

import (
	"go.uber.org/zap"

	"github.com/Faultbox/hoverwave/internal/logger"
	"github.com/Faultbox/hoverwave/pkg/math"
)

// Transition timings in seconds.
const (
	HoverInDuration  = 0.35
	ScaleInDuration  = 0.25
	FollowDuration   = 0.35
	HoverOutDuration = 0.35

	// HoverScale is the scale a hovered plane grows to.
	HoverScale = 1.05
)

// Cursor is the pointer affordance the host should show.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorPointer
)

func (c Cursor) String() string {
	if c == CursorPointer {
		return "pointer"
	}
	return "default"
}

// Interaction is the controller's view of the pointer.
type Interaction struct {
	HoveredID  PlaneID   // Zero when idle
	PointerUV  math.Vec2 // Last intersection in UV space
	PointerNDC math.Vec2 // Last pointer position in NDC
}

// Controller runs the Idle/Hovering state machine. The hovered plane is
// held by the controller instance, so independent scenes never share it.
type Controller struct {
	state   Interaction
	hovered *Plane
	cursor  Cursor
	log     *zap.Logger
}

// NewController returns an idle controller.
func NewController() *Controller {
	return &Controller{log: logger.Named("hover")}
}

// Move handles a pointer move. target is the plane under the pointer, nil
// for a miss; uv is the intersection on target.
func (c *Controller) Move(ndc math.Vec2, target *Plane, uv math.Vec2) {
	c.state.PointerNDC = ndc

	if target == nil {
		c.Out()
		return
	}
	c.cursor = CursorPointer

	if c.hovered == target {
		c.state.PointerUV = uv
		target.Uniforms.Intersect = uv
		target.position.To(ndc.Scale(2), FollowDuration)
		return
	}

	// Entering, possibly straight from another plane: the previous one is
	// left where it is.
	c.hovered = target
	c.state.HoveredID = target.ID
	c.state.PointerUV = uv
	target.Uniforms.Intersect = uv
	target.hover.To(1, HoverInDuration)
	target.scale.To(math.Vec2{X: HoverScale, Y: HoverScale}, ScaleInDuration)

	c.log.Debug("hover enter", zap.Uint64("plane", uint64(target.ID)))
}

// Out handles the pointer leaving every plane.
func (c *Controller) Out() {
	c.cursor = CursorDefault
	if c.hovered == nil {
		return
	}

	p := c.hovered
	p.position.To(math.Vec2{}, HoverOutDuration)
	p.scale.To(math.Vec2{X: 1, Y: 1}, HoverOutDuration)
	p.hover.To(0, HoverOutDuration)

	c.log.Debug("hover exit", zap.Uint64("plane", uint64(p.ID)))
	c.hovered = nil
	c.state.HoveredID = 0
}

// Forget drops the hovered plane without animating it, used when the plane
// is discarded.
func (c *Controller) Forget() {
	c.hovered = nil
	c.state.HoveredID = 0
	c.cursor = CursorDefault
}

// Interaction returns a copy of the interaction state.
func (c *Controller) Interaction() Interaction { return c.state }

// Cursor returns the affordance to show.
func (c *Controller) Cursor() Cursor { return c.cursor }

// Hovering reports whether a plane is hovered.
func (c *Controller) Hovering() bool { return c.hovered != nil }
