// Package telemetry writes an optional per-frame trace of the plane's
// uniform values as CSV for offline inspection.
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// FrameSample is one row of the trace.
type FrameSample struct {
	Frame      uint64  `csv:"frame"`
	Plane      uint64  `csv:"plane"`
	DeltaMs    float32 `csv:"delta_ms"`
	Time       float32 `csv:"time"`
	Hover      float32 `csv:"hover"`
	IntersectU float32 `csv:"intersect_u"`
	IntersectV float32 `csv:"intersect_v"`
	PositionX  float32 `csv:"position_x"`
	PositionY  float32 `csv:"position_y"`
	Scale      float32 `csv:"scale"`
	TargetZ    float32 `csv:"target_z"`
	Amplitude  float32 `csv:"amplitude"`
	Effect     float32 `csv:"effect"`
	Radius     float32 `csv:"radius"`
	Speed      float32 `csv:"speed"`
	Hovering   bool    `csv:"hovering"`
	Settled    bool    `csv:"settled"`
}

// Trace appends FrameSamples to a CSV file. A nil *Trace discards
// everything, so callers need not check whether tracing is enabled.
type Trace struct {
	path          string
	file          *os.File
	headerWritten bool
	rows          int
}

// Open creates the trace file, truncating any previous one.
// Returns nil if path is empty (tracing disabled).
func Open(path string) (*Trace, error) {
	if path == "" {
		return nil, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating trace directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating trace file: %w", err)
	}
	return &Trace{path: path, file: f}, nil
}

// Record writes one sample.
func (t *Trace) Record(s FrameSample) error {
	if t == nil {
		return nil
	}

	records := []FrameSample{s}
	if !t.headerWritten {
		if err := gocsv.Marshal(records, t.file); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		t.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, t.file); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
	}
	t.rows++
	return nil
}

// Rows returns the number of samples written.
func (t *Trace) Rows() int {
	if t == nil {
		return 0
	}
	return t.rows
}

// Path returns the trace file path.
func (t *Trace) Path() string {
	if t == nil {
		return ""
	}
	return t.path
}

// Close closes the trace file.
func (t *Trace) Close() error {
	if t == nil || t.file == nil {
		return nil
	}
	err := t.file.Close()
	t.file = nil
	return err
}
