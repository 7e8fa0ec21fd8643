package hover

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/hoverwave/internal/engine/layout"
	"github.com/Faultbox/hoverwave/pkg/math"
)

func approx(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-3
}

func testPlane(id PlaneID) *Plane {
	return newPlane(id, layout.Plane{
		PixelWidth: 940, PixelHeight: 528.75,
		WorldWidth: 40, WorldHeight: 22.5,
		SegmentsX: 94, SegmentsY: 53,
		Ratio: math.Vec2{X: 0.8889, Y: 1},
	})
}

// settle advances p well past every transition.
func settle(p *Plane) {
	for range 60 {
		p.Advance(1.0 / 60)
	}
}

func TestControllerEnter(t *testing.T) {
	c := NewController()
	p := testPlane(1)

	c.Move(math.Vec2{X: 0.1, Y: 0.2}, p, math.Vec2{X: 0.55, Y: 0.6})

	if c.Cursor() != CursorPointer {
		t.Errorf("cursor = %v, want pointer", c.Cursor())
	}
	if !c.Hovering() || c.Interaction().HoveredID != 1 {
		t.Errorf("interaction = %+v, want plane 1 hovered", c.Interaction())
	}
	if p.Uniforms.Intersect != (math.Vec2{X: 0.55, Y: 0.6}) {
		t.Errorf("intersect = %+v", p.Uniforms.Intersect)
	}
	if p.hover.Target() != 1 {
		t.Errorf("hover target = %v, want 1", p.hover.Target())
	}
	if s := p.scale.Target(); s.X != HoverScale || s.Y != HoverScale {
		t.Errorf("scale target = %+v, want %v", s, HoverScale)
	}
	// Entering does not move the plane
	if p.position.Target() != (math.Vec2{}) {
		t.Errorf("position target = %+v, want origin", p.position.Target())
	}

	settle(p)
	if p.Hover() != 1 || p.Scale().X != HoverScale || p.Scale().Z != 1 {
		t.Errorf("settled hover=%v scale=%+v", p.Hover(), p.Scale())
	}
}

func TestControllerEnterTimings(t *testing.T) {
	c := NewController()
	p := testPlane(1)
	c.Move(math.Vec2{}, p, math.Vec2{X: 0.5, Y: 0.5})

	p.Advance(0.25)
	if p.Scale().X != HoverScale {
		t.Errorf("scale after 0.25s = %v, want %v", p.Scale().X, HoverScale)
	}
	if p.Hover() >= 1 {
		t.Errorf("hover finished early: %v", p.Hover())
	}

	p.Advance(0.11)
	if p.Hover() != 1 {
		t.Errorf("hover after 0.35s = %v, want 1", p.Hover())
	}
}

func TestControllerFollow(t *testing.T) {
	c := NewController()
	p := testPlane(1)

	c.Move(math.Vec2{X: 0.1, Y: 0.1}, p, math.Vec2{X: 0.5, Y: 0.5})
	c.Move(math.Vec2{X: 0.2, Y: -0.3}, p, math.Vec2{X: 0.6, Y: 0.4})

	if p.Uniforms.Intersect != (math.Vec2{X: 0.6, Y: 0.4}) {
		t.Errorf("intersect = %+v, want (0.6, 0.4)", p.Uniforms.Intersect)
	}
	want := math.Vec2{X: 0.4, Y: -0.6}
	if got := p.position.Target(); !approx(got.X, want.X) || !approx(got.Y, want.Y) {
		t.Errorf("position target = %+v, want %+v", got, want)
	}

	settle(p)
	if got := p.Position(); !approx(got.X, 0.4) || !approx(got.Y, -0.6) || got.Z != 0 {
		t.Errorf("position = %+v, want (0.4, -0.6, 0)", got)
	}
}

func TestControllerExit(t *testing.T) {
	c := NewController()
	p := testPlane(1)

	c.Move(math.Vec2{}, p, math.Vec2{X: 0.5, Y: 0.5})
	c.Move(math.Vec2{X: 0.3, Y: 0.3}, p, math.Vec2{X: 0.6, Y: 0.6})
	settle(p)

	c.Move(math.Vec2{X: 0.99, Y: 0.99}, nil, math.Vec2{})

	if c.Hovering() || c.Interaction().HoveredID != 0 {
		t.Errorf("still hovering: %+v", c.Interaction())
	}
	if c.Cursor() != CursorDefault {
		t.Errorf("cursor = %v, want default", c.Cursor())
	}
	// The last UV stays on the plane while it animates out
	if p.Uniforms.Intersect != (math.Vec2{X: 0.6, Y: 0.6}) {
		t.Errorf("intersect cleared on exit: %+v", p.Uniforms.Intersect)
	}

	p.Advance(HoverOutDuration + 0.01)
	if p.Hover() != 0 || p.Scale().X != 1 || p.Position().X != 0 {
		t.Errorf("after exit: hover=%v scale=%+v position=%+v", p.Hover(), p.Scale(), p.Position())
	}
	if !p.Settled() {
		t.Error("plane not settled after exit")
	}
}

func TestControllerOutWhenIdle(t *testing.T) {
	c := NewController()
	c.Out()
	if c.Hovering() || c.Cursor() != CursorDefault {
		t.Errorf("idle out changed state: hovering=%v cursor=%v", c.Hovering(), c.Cursor())
	}
}

func TestControllerSwitchTarget(t *testing.T) {
	c := NewController()
	a, b := testPlane(1), testPlane(2)

	c.Move(math.Vec2{}, a, math.Vec2{X: 0.5, Y: 0.5})
	c.Move(math.Vec2{}, b, math.Vec2{X: 0.2, Y: 0.2})

	if c.Interaction().HoveredID != 2 {
		t.Errorf("hovered = %d, want 2", c.Interaction().HoveredID)
	}
	if b.hover.Target() != 1 {
		t.Errorf("new plane hover target = %v, want 1", b.hover.Target())
	}
	// The previous plane gets no exit animation
	if a.hover.Target() != 1 {
		t.Errorf("old plane hover target = %v, want 1", a.hover.Target())
	}

	// Leaving now animates only the current plane out
	c.Out()
	if b.hover.Target() != 0 || a.hover.Target() != 1 {
		t.Errorf("targets after out: a=%v b=%v", a.hover.Target(), b.hover.Target())
	}
}

func TestControllerSupersede(t *testing.T) {
	c := NewController()
	p := testPlane(1)

	c.Move(math.Vec2{}, p, math.Vec2{X: 0.5, Y: 0.5})
	p.Advance(0.1)
	mid := p.Hover()
	if mid <= 0 || mid >= 1 {
		t.Fatalf("hover mid-transition = %v", mid)
	}

	c.Out()
	// Exit starts from where the enter left off
	p.Advance(0)
	if !approx(p.Hover(), mid) {
		t.Errorf("hover jumped on exit: %v, want %v", p.Hover(), mid)
	}
	p.Advance(0.1)
	if p.Hover() >= mid {
		t.Errorf("hover not decreasing: %v >= %v", p.Hover(), mid)
	}
}

func TestControllerForget(t *testing.T) {
	c := NewController()
	p := testPlane(1)

	c.Move(math.Vec2{}, p, math.Vec2{X: 0.5, Y: 0.5})
	c.Forget()

	if c.Hovering() || c.Cursor() != CursorDefault {
		t.Errorf("forget left hovering=%v cursor=%v", c.Hovering(), c.Cursor())
	}
	if p.hover.Target() != 1 {
		t.Errorf("forget animated the plane: hover target %v", p.hover.Target())
	}
	// PointerUV survives for the next plane
	if c.Interaction().PointerUV != (math.Vec2{X: 0.5, Y: 0.5}) {
		t.Errorf("pointer UV = %+v", c.Interaction().PointerUV)
	}
}
