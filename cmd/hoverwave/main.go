// Package main is the hoverwave studio: the hover scene behind an ImGui
// parameter panel.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/hoverwave/internal/config"
	"github.com/Faultbox/hoverwave/internal/engine/debug"
	"github.com/Faultbox/hoverwave/internal/engine/ui"
	"github.com/Faultbox/hoverwave/internal/hover"
	"github.com/Faultbox/hoverwave/internal/logger"
	"github.com/Faultbox/hoverwave/internal/panel"
	"github.com/Faultbox/hoverwave/internal/telemetry"
)

func main() {
	runtime.LockOSThread()

	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== hoverwave studio ===")

	images, err := hover.LoadConfigured(context.Background(), cfg.Assets)
	if err != nil {
		logger.Error("failed to load images", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	app, err := NewApp(cfg, images)
	if err != nil {
		logger.Error("failed to start studio", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	app.Run()
	if app.err != nil {
		logger.Error("studio error", zap.Error(app.err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("studio closed normally")
}

// App is the studio state.
type App struct {
	cfg     *config.Config
	backend *ui.Backend
	images  hover.Images

	scene    *hover.Scene
	panel    *panel.Panel
	viewport hover.Viewport
	inside   bool // Pointer over the scene image last frame

	// Screenshot state
	shots               *debug.ScreenshotCapture
	lastScreenshotMsg   string
	screenshotMsgTime   time.Time
	screenshotRequested bool

	err error
	log *zap.Logger
}

// NewApp creates the window. The scene is mounted on the first frame, once
// the display size is known.
func NewApp(cfg *config.Config, images hover.Images) (*App, error) {
	app := &App{
		cfg:    cfg,
		images: images,
		shots:  debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "hoverwave"),
		log:    logger.Named("studio"),
	}

	var err error
	app.backend, err = ui.NewBackend(ui.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Background: cfg.Window.Background,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create backend: %w", err)
	}

	app.backend.OnDestroy(app.Close)
	return app, nil
}

// Run starts the main application loop.
func (app *App) Run() {
	app.backend.Run(app.render)
}

// Close releases GL resources while the context is still current.
func (app *App) Close() {
	if app.scene != nil {
		app.scene.Close()
	}
}

// fail records err and asks the backend to stop.
func (app *App) fail(err error) {
	app.log.Error("frame failed", zap.Error(err))
	app.err = err
	app.backend.RequestClose()
}

// render is called each frame.
func (app *App) render() {
	if app.err != nil {
		return
	}

	// Capture at the start of the frame so the previous frame is complete
	if app.screenshotRequested {
		app.screenshotRequested = false
		app.captureScreenshot()
	}
	if ui.IsKeyPressed(imgui.KeyF12) {
		app.screenshotRequested = true
	}

	vp := currentViewport()
	if vp.Width <= 0 || vp.Height <= 0 {
		return
	}
	if app.scene == nil {
		if err := app.mount(vp); err != nil {
			app.fail(err)
			return
		}
	} else if vp != app.viewport {
		app.scene.Resize(vp)
		app.viewport = vp
	}

	if err := app.scene.Frame(imgui.CurrentIO().DeltaTime()); err != nil {
		app.fail(err)
		return
	}

	app.renderScene()
	app.renderPanel()
	app.renderScreenshotNotify()
}

func (app *App) mount(vp hover.Viewport) error {
	trace, err := telemetry.Open(app.cfg.Debug.TraceFile)
	if err != nil {
		app.log.Warn("frame trace disabled", zap.Error(err))
	}

	state := hover.NewStateFromConfig(app.cfg, float32(vp.Width), float32(vp.Height))
	scene, err := hover.NewScene(state, app.images, vp, app.cfg.Window.Background, trace)
	if err != nil {
		trace.Close()
		return fmt.Errorf("failed to mount scene: %w", err)
	}

	app.scene = scene
	app.viewport = vp
	app.panel = panel.New(state.Params(), hover.ParamsFromConfig(app.cfg.Effect))
	app.images = hover.Images{}
	return nil
}

func currentViewport() hover.Viewport {
	w, h, dw, dh := ui.DisplaySize()
	return hover.Viewport{Width: w, Height: h, DrawableWidth: dw, DrawableHeight: dh}
}

// renderScene shows the composer output full-window behind the panel and
// feeds it the pointer. Hovering another window counts as leaving.
func (app *App) renderScene() {
	viewport := imgui.MainViewport()
	pos := viewport.Pos()
	size := viewport.Size()

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoSavedSettings | imgui.WindowFlagsNoBringToFrontOnFocus |
		imgui.WindowFlagsNoBackground

	imgui.SetNextWindowPos(pos)
	imgui.SetNextWindowSize(size)
	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))

	if imgui.BeginV("##Scene", nil, flags) {
		// Display rendered texture (flip V for OpenGL)
		texRef := imgui.NewTextureRefTextureID(imgui.TextureID(app.scene.Output().ColorTexture()))
		imgui.ImageWithBgV(
			*texRef,
			size,
			imgui.NewVec2(0, 1),
			imgui.NewVec2(1, 0),
			imgui.NewVec4(0, 0, 0, 0),
			imgui.NewVec4(1, 1, 1, 1),
		)

		if imgui.IsItemHovered() {
			origin := imgui.ItemRectMin()
			mouse := imgui.MousePos()
			app.scene.PointerMove(mouse.X-origin.X, mouse.Y-origin.Y)
			app.inside = true
		} else if app.inside {
			app.scene.PointerOut()
			app.inside = false
		}

		if app.scene.Cursor() == hover.CursorPointer {
			ui.SetPointerCursor()
		}
	}
	imgui.End()

	imgui.PopStyleVar()
}

// captureScreenshot writes the last composed frame, without the panel.
func (app *App) captureScreenshot() {
	if app.scene == nil {
		return
	}

	app.screenshotMsgTime = time.Now()
	img, err := app.scene.Snapshot()
	if err == nil {
		var path string
		path, err = app.shots.Capture(img)
		if err == nil {
			app.lastScreenshotMsg = fmt.Sprintf("Screenshot saved: %s", path)
			app.log.Info("screenshot saved", zap.String("path", path))
			return
		}
	}
	app.lastScreenshotMsg = fmt.Sprintf("Screenshot failed: %v", err)
	app.log.Warn("screenshot failed", zap.Error(err))
}

func (app *App) renderScreenshotNotify() {
	if app.lastScreenshotMsg == "" || time.Since(app.screenshotMsgTime) > 3*time.Second {
		return
	}

	workPos := imgui.MainViewport().WorkPos()
	workSize := imgui.MainViewport().WorkSize()

	notifyFlags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoFocusOnAppearing |
		imgui.WindowFlagsNoInputs
	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+10, workPos.Y+workSize.Y-40))
	imgui.SetNextWindowBgAlpha(0.85)
	if imgui.BeginV("##ScreenshotNotify", nil, notifyFlags) {
		imgui.Text(app.lastScreenshotMsg)
	}
	imgui.End()
}
