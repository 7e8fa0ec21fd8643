// Package kiosk runs the hover scene full-window on SDL2, with the
// parameters edited from the keyboard.
package kiosk

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/hoverwave/internal/config"
	"github.com/Faultbox/hoverwave/internal/engine/debug"
	"github.com/Faultbox/hoverwave/internal/engine/input"
	"github.com/Faultbox/hoverwave/internal/engine/renderer"
	"github.com/Faultbox/hoverwave/internal/engine/window"
	"github.com/Faultbox/hoverwave/internal/hover"
	"github.com/Faultbox/hoverwave/internal/logger"
	"github.com/Faultbox/hoverwave/internal/panel"
	"github.com/Faultbox/hoverwave/internal/telemetry"
)

// action is what a key press does.
type action int

const (
	actionNone action = iota
	actionQuit
	actionScreenshot
	actionNextField
	actionIncrease
	actionDecrease
	actionReset
)

// keyAction maps a key press to an action. Auto-repeat only repeats steps.
func keyAction(key sdl.Keycode, repeat bool) action {
	switch key {
	case sdl.K_UP:
		return actionIncrease
	case sdl.K_DOWN:
		return actionDecrease
	}
	if repeat {
		return actionNone
	}

	switch key {
	case sdl.K_ESCAPE:
		return actionQuit
	case sdl.K_F12:
		return actionScreenshot
	case sdl.K_TAB:
		return actionNextField
	case sdl.K_r:
		return actionReset
	}
	return actionNone
}

// Kiosk is the SDL host.
type Kiosk struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *hover.Scene
	panel    *panel.Panel
	shots    *debug.ScreenshotCapture
	log      *zap.Logger
}

// New opens the window and mounts the scene. It takes ownership of trace.
func New(cfg *config.Config, images hover.Images, trace *telemetry.Trace) (*Kiosk, error) {
	k := &Kiosk{
		cfg:   cfg,
		input: input.New(),
		shots: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "hoverwave"),
		log:   logger.Named("kiosk"),
	}

	var err error
	k.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		trace.Close()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	vp := k.viewport()
	k.renderer, err = renderer.New(vp.DrawableWidth, vp.DrawableHeight)
	if err != nil {
		trace.Close()
		k.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	state := hover.NewStateFromConfig(cfg, float32(vp.Width), float32(vp.Height))
	k.scene, err = hover.NewScene(state, images, vp, cfg.Window.Background, trace)
	if err != nil {
		trace.Close()
		k.window.Close()
		return nil, fmt.Errorf("failed to mount scene: %w", err)
	}

	k.panel = panel.New(state.Params(), hover.ParamsFromConfig(cfg.Effect))
	k.updateTitle()

	k.log.Info("kiosk ready")
	return k, nil
}

// Run drives the frame loop until the window closes or Esc is pressed.
func (k *Kiosk) Run() error {
	k.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	k.log.Info("starting frame loop")

	for k.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if k.input.Update() {
			k.running = false
			break
		}
		for _, event := range k.input.Events() {
			k.handle(event)
		}
		if !k.running {
			break
		}

		if err := k.scene.Frame(float32(dt)); err != nil {
			return fmt.Errorf("frame error: %w", err)
		}

		k.renderer.Begin(k.cfg.Window.Background)
		w, h := k.renderer.Size()
		if err := k.scene.Present(0, 0, w, h); err != nil {
			return fmt.Errorf("present error: %w", err)
		}

		k.window.SetCursor(windowCursor(k.scene.Cursor()))
		k.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			k.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Uint64("frames", k.scene.State().Frames()),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close tears down the scene, then the window.
func (k *Kiosk) Close() {
	k.log.Info("closing kiosk")

	if k.scene != nil {
		k.scene.Close()
	}
	if k.window != nil {
		k.window.Close()
	}
}

func (k *Kiosk) handle(e input.Event) {
	switch e.Type {
	case input.EventWindowResize:
		vp := k.viewport()
		k.renderer.Resize(vp.DrawableWidth, vp.DrawableHeight)
		k.scene.Resize(vp)

	case input.EventMouseMove:
		k.scene.PointerMove(float32(e.MouseX), float32(e.MouseY))

	case input.EventMouseLeave:
		k.scene.PointerOut()

	case input.EventKeyDown:
		k.apply(keyAction(e.Key, e.Repeat))
	}
}

func (k *Kiosk) apply(a action) {
	switch a {
	case actionQuit:
		k.running = false
	case actionScreenshot:
		k.screenshot()
	case actionNextField:
		k.panel.Next()
	case actionIncrease:
		k.panel.Step(1)
	case actionDecrease:
		k.panel.Step(-1)
	case actionReset:
		k.panel.Reset()
	default:
		return
	}
	k.updateTitle()
}

func (k *Kiosk) screenshot() {
	img, err := k.scene.Snapshot()
	if err != nil {
		k.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	path, err := k.shots.Capture(img)
	if err != nil {
		k.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	k.log.Info("screenshot saved", zap.String("path", path))
}

func (k *Kiosk) updateTitle() {
	k.window.SetTitle(k.panel.Title(k.cfg.Window.Title))
}

func (k *Kiosk) viewport() hover.Viewport {
	w, h := k.window.Size()
	dw, dh := k.window.DrawableSize()
	return hover.Viewport{Width: w, Height: h, DrawableWidth: dw, DrawableHeight: dh}
}

func windowCursor(c hover.Cursor) window.Cursor {
	if c == hover.CursorPointer {
		return window.CursorPointer
	}
	return window.CursorDefault
}
