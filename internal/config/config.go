// Package config handles configuration loading and management.
package config

import "time"

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Layout  LayoutConfig  `yaml:"layout"`
	Effect  EffectConfig  `yaml:"effect"`
	Assets  AssetsConfig  `yaml:"assets"`
	Debug   DebugConfig   `yaml:"debug"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string     `yaml:"title"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	Background [4]float32 `yaml:"background"` // RGBA clear colour
}

// CameraConfig holds the perspective camera settings.
type CameraConfig struct {
	FOV      float32 `yaml:"fov"`      // Vertical field of view in degrees
	Distance float32 `yaml:"distance"` // Camera z position, looking at the origin
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
}

// LayoutConfig holds the page metrics the plane is sized against.
type LayoutConfig struct {
	PageWidth     float32 `yaml:"page_width"`
	Padding       float32 `yaml:"padding"`
	VerticalInset float32 `yaml:"vertical_inset"`
}

// EffectConfig holds the initial values of the tunable effect parameters.
type EffectConfig struct {
	Amplitude float32 `yaml:"amplitude"`
	Effect    float32 `yaml:"effect"`
	Radius    float32 `yaml:"radius"`
	Speed     float32 `yaml:"speed"`
}

// AssetsConfig holds texture locations.
type AssetsConfig struct {
	Dir          string        `yaml:"dir"`          // Root the paths below are relative to
	Base         string        `yaml:"base"`         // Image shown at rest
	Hover        string        `yaml:"hover"`        // Image faded in on hover
	Displacement string        `yaml:"displacement"` // Greyscale displacement map
	LoadTimeout  time.Duration `yaml:"load_timeout"`
}

// DebugConfig holds developer tooling settings.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
	TraceFile     string `yaml:"trace_file"` // Per-frame uniform trace (CSV), empty disables
	ShowStats     bool   `yaml:"show_stats"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "hoverwave",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Background: [4]float32{1, 1, 1, 0},
		},
		Camera: CameraConfig{
			FOV:      50,
			Distance: 50,
			Near:     0.1,
			Far:      1000,
		},
		Layout: LayoutConfig{
			PageWidth:     940,
			Padding:       20,
			VerticalInset: 136,
		},
		Effect: EffectConfig{
			Amplitude: 4.0,
			Effect:    0.2,
			Radius:    0.4,
			Speed:     0.4,
		},
		Assets: AssetsConfig{
			Dir:          "assets",
			Base:         "images/wave.jpg",
			Hover:        "images/hover.jpg",
			Displacement: "images/displacement/4.jpg",
			LoadTimeout:  10 * time.Second,
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
