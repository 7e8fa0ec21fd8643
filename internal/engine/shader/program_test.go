package shader

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Faultbox/hoverwave/pkg/math"
)

func TestCheckUniforms(t *testing.T) {
	active := map[string]Kind{
		"u_time":      Float,
		"u_ratio":     Vec2,
		"u_corners":   Vec4,
		"modelMatrix": Mat4,
		"u_disp":      Sampler2D,
	}

	tests := []struct {
		name         string
		declared     []Uniform
		wantInactive []string
		wantKind     bool
		wantErr      bool
	}{
		{
			name:     "all active",
			declared: []Uniform{{"u_time", Float}, {"u_ratio", Vec2}, {"u_disp", Sampler2D}},
		},
		{
			name:         "optimized out",
			declared:     []Uniform{{"u_time", Float}, {"u_zeta", Float}, {"u_alpha", Vec2}},
			wantInactive: []string{"u_alpha", "u_zeta"},
		},
		{
			name:     "type mismatch",
			declared: []Uniform{{"u_corners", Vec2}},
			wantKind: true,
			wantErr:  true,
		},
		{
			name:     "duplicate",
			declared: []Uniform{{"u_time", Float}, {"u_time", Float}},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inactive, err := checkUniforms(tt.declared, active)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantKind && !errors.Is(err, ErrKindMismatch) {
				t.Errorf("expected ErrKindMismatch, got %v", err)
			}
			if err == nil && !reflect.DeepEqual(inactive, tt.wantInactive) {
				t.Errorf("inactive = %v, want %v", inactive, tt.wantInactive)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	p := &Program{slots: map[string]slot{
		"u_hover": {kind: Float, location: 3},
		"u_gone":  {kind: Vec2, location: -1},
	}}

	if loc, err := p.lookup("u_hover", Float); err != nil || loc != 3 {
		t.Errorf("lookup u_hover = %d, %v", loc, err)
	}
	if _, err := p.lookup("u_hover", Vec4); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("expected kind mismatch, got %v", err)
	}
	if _, err := p.lookup("u_missing", Float); !errors.Is(err, ErrUnknownUniform) {
		t.Errorf("expected unknown uniform, got %v", err)
	}

	// Inactive uniforms are still known, they just have no location
	if loc, err := p.lookup("u_gone", Vec2); err != nil || loc != -1 {
		t.Errorf("lookup u_gone = %d, %v", loc, err)
	}
	if err := p.SetVec2("u_gone", math.Vec2{}); err != nil {
		t.Errorf("SetVec2 on inactive uniform: %v", err)
	}
}

func TestKindString(t *testing.T) {
	if Sampler2D.String() != "sampler2D" || Mat4.String() != "mat4" {
		t.Errorf("unexpected kind names %s %s", Sampler2D, Mat4)
	}
	if Kind(42).String() != "Kind(42)" {
		t.Errorf("unexpected fallback %s", Kind(42))
	}
}
