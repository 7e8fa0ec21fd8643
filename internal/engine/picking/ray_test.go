package picking

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/hoverwave/pkg/math"
)

func approx(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-3
}

// viewProj is a camera at z=50 looking at the origin with a 50 degree FOV.
func viewProj(aspect float32) math.Mat4 {
	proj := math.Perspective(50*gomath.Pi/180, aspect, 0.1, 1000)
	view := math.LookAt(math.Vec3{Z: 50}, math.Vec3{}, math.Vec3{Y: 1})
	return proj.Mul(view)
}

func TestScreenToNDC(t *testing.T) {
	tests := []struct {
		name  string
		x, y  float32
		wantX float32
		wantY float32
	}{
		{"top-left", 0, 0, -1, 1},
		{"center", 512, 384, 0, 0},
		{"bottom-right", 1024, 768, 1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScreenToNDC(tt.x, tt.y, 1024, 768)
			if got.X != tt.wantX || got.Y != tt.wantY {
				t.Errorf("got %+v, want (%v, %v)", got, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestFromNDCCenter(t *testing.T) {
	inv := viewProj(4.0 / 3.0).Inverse()
	r := FromNDC(math.Vec2{}, inv)

	if !approx(r.Origin.X, 0) || !approx(r.Origin.Y, 0) {
		t.Errorf("origin = %+v, want on the Z axis", r.Origin)
	}
	if !approx(r.Direction.Z, -1) {
		t.Errorf("direction = %+v, want (0, 0, -1)", r.Direction)
	}
}

func TestIntersectPlaneZ(t *testing.T) {
	r := Ray{Origin: math.Vec3{X: 1, Y: 2, Z: 10}, Direction: math.Vec3{Z: -1}}

	p, dist, ok := r.IntersectPlaneZ(0)
	if !ok || p != (math.Vec3{X: 1, Y: 2, Z: 0}) || dist != 10 {
		t.Errorf("got %+v t=%v ok=%v", p, dist, ok)
	}

	if _, _, ok := r.IntersectPlaneZ(20); ok {
		t.Error("expected miss for plane behind the origin")
	}

	parallel := Ray{Origin: math.Vec3{Z: 10}, Direction: math.Vec3{X: 1}}
	if _, _, ok := parallel.IntersectPlaneZ(0); ok {
		t.Error("expected miss for parallel ray")
	}
}

func TestIntersectQuad(t *testing.T) {
	q := Quad{Width: 4, Height: 2, Scale: math.Vec2{X: 1, Y: 1}}
	down := math.Vec3{Z: -1}

	tests := []struct {
		name   string
		x, y   float32
		quad   Quad
		hit    bool
		wantUV math.Vec2
	}{
		{"center", 0, 0, q, true, math.Vec2{X: 0.5, Y: 0.5}},
		{"top-right corner", 2, 1, q, true, math.Vec2{X: 1, Y: 1}},
		{"bottom-left quarter", -1, -0.5, q, true, math.Vec2{X: 0.25, Y: 0.25}},
		{"outside", 2.1, 0, q, false, math.Vec2{}},
		{"scaled covers more", 2.1, 0, Quad{Width: 4, Height: 2, Scale: math.Vec2{X: 1.1, Y: 1.1}}, true, math.Vec2{X: 2.1/1.1/4 + 0.5, Y: 0.5}},
		{"offset quad", 5, 5, Quad{Width: 2, Height: 2, Position: math.Vec3{X: 5, Y: 5}, Scale: math.Vec2{X: 1, Y: 1}}, true, math.Vec2{X: 0.5, Y: 0.5}},
		{"zero scale", 0, 0, Quad{Width: 4, Height: 2}, false, math.Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Ray{Origin: math.Vec3{X: tt.x, Y: tt.y, Z: 10}, Direction: down}
			hit, ok := r.IntersectQuad(tt.quad)
			if ok != tt.hit {
				t.Fatalf("hit = %v, want %v", ok, tt.hit)
			}
			if ok && (!approx(hit.UV.X, tt.wantUV.X) || !approx(hit.UV.Y, tt.wantUV.Y)) {
				t.Errorf("uv = %+v, want %+v", hit.UV, tt.wantUV)
			}
		})
	}
}

func TestScreenCenterHitsPlaneCenter(t *testing.T) {
	inv := viewProj(1024.0 / 768.0).Inverse()
	r := FromNDC(ScreenToNDC(512, 384, 1024, 768), inv)

	hit, ok := r.IntersectQuad(Quad{Width: 20, Height: 11.25, Scale: math.Vec2{X: 1, Y: 1}})
	if !ok {
		t.Fatal("expected screen center to hit the plane")
	}
	if !approx(hit.UV.X, 0.5) || !approx(hit.UV.Y, 0.5) {
		t.Errorf("uv = %+v, want (0.5, 0.5)", hit.UV)
	}
}
