// Package tween animates values toward a target over a fixed duration.
//
// A tween is advanced explicitly with the frame delta, so it never touches a
// clock and is safe to drive from the render loop. Calling To while a tween is
// running restarts it from the current value, which is how a newer
// transition supersedes an older one on the same property.
package tween

import "github.com/Faultbox/hoverwave/pkg/math"

// QuadOut decelerates to the target (power1.out).
func QuadOut(p float32) float32 {
	q := 1 - p
	return 1 - q*q
}

// Float is an eased transition of a single value.
type Float struct {
	start    float32
	current  float32
	target   float32
	duration float32 // seconds
	elapsed  float32
}

// NewFloat returns a settled tween at v.
func NewFloat(v float32) Float {
	return Float{start: v, current: v, target: v}
}

// To starts a transition from the current value to target over duration
// seconds. A non-positive duration jumps straight to the target.
func (t *Float) To(target, duration float32) {
	t.start = t.current
	t.target = target
	t.duration = duration
	t.elapsed = 0
	if duration <= 0 {
		t.current = target
	}
}

// Advance moves the tween forward by dt seconds and returns the new value.
func (t *Float) Advance(dt float32) float32 {
	if t.Done() {
		return t.current
	}
	t.elapsed += dt
	if t.elapsed >= t.duration {
		t.elapsed = t.duration
		t.current = t.target
		return t.current
	}

	p := QuadOut(t.elapsed / t.duration)
	t.current = t.start + (t.target-t.start)*p
	return t.current
}

// Value returns the current value.
func (t *Float) Value() float32 { return t.current }

// Target returns the value the tween is heading to.
func (t *Float) Target() float32 { return t.target }

// Done reports whether the tween has reached its target.
func (t *Float) Done() bool {
	return t.duration <= 0 || t.elapsed >= t.duration
}

// Vec2 tweens both components of a 2D value together.
type Vec2 struct {
	X, Y Float
}

// NewVec2 returns a settled tween at v.
func NewVec2(v math.Vec2) Vec2 {
	return Vec2{X: NewFloat(v.X), Y: NewFloat(v.Y)}
}

// To starts a transition of both components.
func (t *Vec2) To(target math.Vec2, duration float32) {
	t.X.To(target.X, duration)
	t.Y.To(target.Y, duration)
}

// Advance moves both components forward by dt seconds.
func (t *Vec2) Advance(dt float32) math.Vec2 {
	return math.Vec2{X: t.X.Advance(dt), Y: t.Y.Advance(dt)}
}

// Value returns the current value.
func (t *Vec2) Value() math.Vec2 {
	return math.Vec2{X: t.X.Value(), Y: t.Y.Value()}
}

// Target returns the value the tween is heading to.
func (t *Vec2) Target() math.Vec2 {
	return math.Vec2{X: t.X.Target(), Y: t.Y.Target()}
}

// Done reports whether both components have settled.
func (t *Vec2) Done() bool {
	return t.X.Done() && t.Y.Done()
}
