package tween

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/hoverwave/pkg/math"
)

func approx(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-4
}

func TestQuadOut(t *testing.T) {
	tests := []struct {
		p, want float32
	}{
		{0, 0},
		{0.5, 0.75},
		{1, 1},
	}
	for _, tt := range tests {
		if got := QuadOut(tt.p); !approx(got, tt.want) {
			t.Errorf("QuadOut(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestFloatReachesTarget(t *testing.T) {
	f := NewFloat(0)
	f.To(1, 0.35)

	if f.Done() {
		t.Fatal("tween done before advancing")
	}

	f.Advance(0.175)
	if got := f.Value(); !approx(got, 0.75) {
		t.Errorf("halfway value = %v, want 0.75", got)
	}

	f.Advance(0.2)
	if !f.Done() || f.Value() != 1 {
		t.Errorf("expected settled at 1, got %v (done=%v)", f.Value(), f.Done())
	}

	// Further advances are no-ops
	if got := f.Advance(1); got != 1 {
		t.Errorf("settled tween moved to %v", got)
	}
}

func TestFloatSupersedeStartsFromCurrent(t *testing.T) {
	f := NewFloat(0)
	f.To(1, 1)
	f.Advance(0.5) // 0.75

	f.To(0, 1)
	if got := f.Value(); !approx(got, 0.75) {
		t.Fatalf("value jumped on retarget: %v", got)
	}

	f.Advance(0.5)
	want := float32(0.75 + (0-0.75)*0.75)
	if got := f.Value(); !approx(got, want) {
		t.Errorf("value = %v, want %v", got, want)
	}

	f.Advance(0.5)
	if f.Value() != 0 {
		t.Errorf("expected 0 after full duration, got %v", f.Value())
	}
}

func TestFloatZeroDuration(t *testing.T) {
	f := NewFloat(2)
	f.To(5, 0)
	if f.Value() != 5 || !f.Done() {
		t.Errorf("zero duration: value %v done %v", f.Value(), f.Done())
	}
}

func TestVec2(t *testing.T) {
	v := NewVec2(math.Vec2{X: 1, Y: 1})
	v.To(math.Vec2{X: 1.05, Y: 1.05}, 0.25)

	got := v.Advance(0.25)
	if got != (math.Vec2{X: 1.05, Y: 1.05}) || !v.Done() {
		t.Errorf("Vec2 = %+v done %v", got, v.Done())
	}
	if v.Target() != (math.Vec2{X: 1.05, Y: 1.05}) {
		t.Errorf("target = %+v", v.Target())
	}
}
