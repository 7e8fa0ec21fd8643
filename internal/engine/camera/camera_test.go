package camera

import (
	gomath "math"
	"testing"
)

func near(a, b, eps float32) bool {
	return float32(gomath.Abs(float64(a-b))) <= eps
}

func TestVisibleAtDepthZero(t *testing.T) {
	c := NewPerspectiveCamera(50, 1024.0/768.0, 0.1, 1000, 50)

	w, h := c.VisibleAtDepth(0)

	wantH := float32(2 * gomath.Tan(25*gomath.Pi/180) * 50)
	if !near(h, wantH, 1e-3) {
		t.Errorf("height = %f, want %f", h, wantH)
	}
	if !near(w, wantH*1024/768, 1e-3) {
		t.Errorf("width = %f, want %f", w, wantH*1024/768)
	}
}

func TestSetAspect(t *testing.T) {
	c := NewPerspectiveCamera(50, 1, 0.1, 1000, 50)

	c.SetAspect(375, 667)
	if !near(c.Aspect, 375.0/667.0, 1e-6) {
		t.Errorf("aspect = %f, want %f", c.Aspect, 375.0/667.0)
	}

	// Zero height keeps the last good aspect
	c.SetAspect(100, 0)
	if !near(c.Aspect, 375.0/667.0, 1e-6) {
		t.Errorf("aspect changed on zero height: %f", c.Aspect)
	}
}

func TestViewProjectionCentersOrigin(t *testing.T) {
	c := NewPerspectiveCamera(50, 16.0/9.0, 0.1, 1000, 50)

	p := c.ViewProjection().TransformPoint([3]float32{0, 0, 0})
	if !near(p[0], 0, 1e-5) || !near(p[1], 0, 1e-5) {
		t.Errorf("origin projects to %v, want screen center", p)
	}
}

func TestVisibleEdgeProjectsToNDCEdge(t *testing.T) {
	c := NewPerspectiveCamera(50, 4.0/3.0, 0.1, 1000, 50)
	w, h := c.VisibleAtDepth(0)

	p := c.ViewProjection().TransformPoint([3]float32{w / 2, h / 2, 0})
	if !near(p[0], 1, 1e-3) || !near(p[1], 1, 1e-3) {
		t.Errorf("frustum corner projects to %v, want (1, 1)", p)
	}
}
