package panel

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/hoverwave/internal/hover"
)

func approx(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-5
}

func TestFieldTable(t *testing.T) {
	tests := []struct {
		name     string
		min, max float32
	}{
		{"amplitude", 0, 10},
		{"effect factor", -1, 1},
		{"radius", 0, 1},
		{"speed", 0, 2},
	}

	fields := Fields()
	if len(fields) != len(tests) {
		t.Fatalf("got %d fields, want %d", len(fields), len(tests))
	}
	for i, tt := range tests {
		f := fields[i]
		if f.Name != tt.name || f.Min != tt.min || f.Max != tt.max || f.Step != 0.1 {
			t.Errorf("field %d = %s [%v, %v] step %v, want %s [%v, %v] step 0.1",
				i, f.Name, f.Min, f.Max, f.Step, tt.name, tt.min, tt.max)
		}
	}
}

func TestFieldPointers(t *testing.T) {
	p := hover.Params{Amplitude: 1, Effect: 2, Radius: 3, Speed: 4}
	want := []float32{1, 2, 3, 4}
	for i, f := range Fields() {
		if got := *f.Ptr(&p); got != want[i] {
			t.Errorf("%s reads %v, want %v", f.Name, got, want[i])
		}
	}
}

func TestSnap(t *testing.T) {
	amp := Fields()[0]
	effect := Fields()[1]

	tests := []struct {
		name string
		f    Field
		in   float32
		want float32
	}{
		{"in range", amp, 4, 4},
		{"rounds down", amp, 4.04, 4},
		{"rounds up", amp, 4.06, 4.1},
		{"above max", amp, 12, 10},
		{"below min", amp, -3, 0},
		{"negative range", effect, -0.33, -0.3},
		{"negative min", effect, -5, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Snap(tt.in); !approx(got, tt.want) {
				t.Errorf("Snap(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPanelStep(t *testing.T) {
	params := hover.DefaultParams()
	p := New(&params, hover.DefaultParams())

	if p.Selected().Name != "amplitude" {
		t.Fatalf("selected = %s, want amplitude", p.Selected().Name)
	}
	if !p.Step(1) {
		t.Error("step reported no change")
	}
	if !approx(params.Amplitude, 4.1) {
		t.Errorf("amplitude = %v, want 4.1", params.Amplitude)
	}

	// Stepping past the bound clamps
	for range 200 {
		p.Step(1)
	}
	if params.Amplitude != 10 {
		t.Errorf("amplitude = %v, want 10", params.Amplitude)
	}
	if p.Step(1) {
		t.Error("step at max reported a change")
	}
}

func TestPanelNextWraps(t *testing.T) {
	params := hover.DefaultParams()
	p := New(&params, hover.DefaultParams())

	names := []string{"effect factor", "radius", "speed", "amplitude"}
	for _, want := range names {
		p.Next()
		if got := p.Selected().Name; got != want {
			t.Errorf("selected = %s, want %s", got, want)
		}
	}
}

func TestPanelEditsAreLive(t *testing.T) {
	params := hover.DefaultParams()
	p := New(&params, hover.DefaultParams())

	p.Next() // effect factor
	p.Step(-3)
	if !approx(params.Effect, -0.1) {
		t.Errorf("effect = %v, want -0.1", params.Effect)
	}

	p.Set(p.Fields()[2], 0.77)
	if !approx(params.Radius, 0.8) {
		t.Errorf("radius = %v, want 0.8", params.Radius)
	}

	p.Reset()
	if params != hover.DefaultParams() {
		t.Errorf("reset = %+v, want defaults", params)
	}
}

func TestPanelTitle(t *testing.T) {
	params := hover.DefaultParams()
	p := New(&params, hover.DefaultParams())
	p.Next()

	want := "hoverwave | amplitude 4.0 | [effect factor 0.2] | radius 0.4 | speed 0.4"
	if got := p.Title("hoverwave"); got != want {
		t.Errorf("title = %q\nwant %q", got, want)
	}
}
