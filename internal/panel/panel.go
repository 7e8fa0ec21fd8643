// Package panel holds the tunable parameter table and the editing logic
// shared by the ImGui sliders and the kiosk's keyboard controls.
package panel

import (
	"fmt"
	gomath "math"
	"strings"

	"github.com/Faultbox/hoverwave/internal/hover"
)

// Field describes one editable parameter.
type Field struct {
	Name   string
	Min    float32
	Max    float32
	Step   float32
	Format string // printf verb for display

	value func(p *hover.Params) *float32
}

// Ptr returns the address of the field inside p.
func (f Field) Ptr(p *hover.Params) *float32 { return f.value(p) }

// Clamp limits v to the field's range.
func (f Field) Clamp(v float32) float32 {
	return min(max(v, f.Min), f.Max)
}

// Snap clamps v and rounds it to the nearest step from Min.
func (f Field) Snap(v float32) float32 {
	v = f.Clamp(v)
	if f.Step <= 0 {
		return v
	}
	n := gomath.Round(float64(v-f.Min) / float64(f.Step))
	return f.Clamp(float32(float64(f.Min) + n*float64(f.Step)))
}

// Fields returns the parameter table in display order.
func Fields() []Field {
	return []Field{
		{
			Name: "amplitude", Min: 0, Max: 10, Step: 0.1, Format: "%.1f",
			value: func(p *hover.Params) *float32 { return &p.Amplitude },
		},
		{
			Name: "effect factor", Min: -1, Max: 1, Step: 0.1, Format: "%.1f",
			value: func(p *hover.Params) *float32 { return &p.Effect },
		},
		{
			Name: "radius", Min: 0, Max: 1, Step: 0.1, Format: "%.1f",
			value: func(p *hover.Params) *float32 { return &p.Radius },
		},
		{
			Name: "speed", Min: 0, Max: 2, Step: 0.1, Format: "%.1f",
			value: func(p *hover.Params) *float32 { return &p.Speed },
		},
	}
}

// Panel edits a Params in place. Writes land immediately, so the next
// frame's uniforms reflect them.
type Panel struct {
	params   *hover.Params
	defaults hover.Params
	fields   []Field
	selected int
}

// New returns a panel editing params. Reset restores defaults.
func New(params *hover.Params, defaults hover.Params) *Panel {
	return &Panel{
		params:   params,
		defaults: defaults,
		fields:   Fields(),
	}
}

// Fields returns the panel's fields.
func (p *Panel) Fields() []Field { return p.fields }

// Value returns the current value of f.
func (p *Panel) Value(f Field) float32 { return *f.Ptr(p.params) }

// Set writes v to f, snapped to the field's step. It reports whether the
// value changed.
func (p *Panel) Set(f Field, v float32) bool {
	ptr := f.Ptr(p.params)
	v = f.Snap(v)
	if *ptr == v {
		return false
	}
	*ptr = v
	return true
}

// Selected returns the field keyboard edits apply to.
func (p *Panel) Selected() Field { return p.fields[p.selected] }

// Next moves the selection to the following field, wrapping around.
func (p *Panel) Next() {
	p.selected = (p.selected + 1) % len(p.fields)
}

// Step moves the selected field by n steps.
func (p *Panel) Step(n int) bool {
	f := p.Selected()
	return p.Set(f, p.Value(f)+float32(n)*f.Step)
}

// Reset restores the default values.
func (p *Panel) Reset() {
	*p.params = p.defaults
}

// Title renders the values for a window title, marking the selected field.
func (p *Panel) Title(prefix string) string {
	var b strings.Builder
	b.WriteString(prefix)
	for i, f := range p.fields {
		b.WriteString(" | ")
		v := fmt.Sprintf(f.Format, p.Value(f))
		if i == p.selected {
			fmt.Fprintf(&b, "[%s %s]", f.Name, v)
		} else {
			fmt.Fprintf(&b, "%s %s", f.Name, v)
		}
	}
	return b.String()
}
