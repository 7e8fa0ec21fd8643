package debug

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCaptureWritesPNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "hoverwave")
	sc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC) }

	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.SetRGBA(3, 1, color.RGBA{R: 200, A: 255})

	path, err := sc.Capture(img)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if want := filepath.Join(dir, "hoverwave_2024-05-01_12-30-00.png"); path != want {
		t.Errorf("path = %s, want %s", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r, _, _, _ := decoded.At(3, 1).RGBA(); r>>8 != 200 {
		t.Errorf("pixel red = %d, want 200", r>>8)
	}
}

func TestCaptureSameSecond(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "shot")
	fixed := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	sc.now = func() time.Time { return fixed }

	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	first, err := sc.Capture(img)
	if err != nil {
		t.Fatal(err)
	}
	second, err := sc.Capture(img)
	if err != nil {
		t.Fatal(err)
	}

	if first == second {
		t.Fatalf("second capture overwrote %s", first)
	}
	if filepath.Base(second) != "shot_2024-05-01_12-30-00_1.png" {
		t.Errorf("second = %s", filepath.Base(second))
	}
}

func TestCaptureEmpty(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "shot")
	if _, err := sc.Capture(image.NewRGBA(image.Rect(0, 0, 0, 0))); err == nil {
		t.Error("expected error for empty image")
	}
}
