// Package ui wraps the ImGui SDL backend used by the studio.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/hoverwave/internal/logger"
)

// Config holds backend window settings.
type Config struct {
	Title      string
	Width      int
	Height     int
	Background [4]float32
}

// Backend wraps the ImGui SDL backend.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	log     *zap.Logger
}

// NewBackend creates the window and GL context and loads GL function
// pointers for callers that draw with go-gl directly.
func NewBackend(cfg Config) (*Backend, error) {
	b := &Backend{log: logger.Named("ui")}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	bg := cfg.Background
	b.backend.SetBgColor(imgui.NewVec4(bg[0], bg[1], bg[2], bg[3]))
	b.backend.CreateWindow(cfg.Title, cfg.Width, cfg.Height)

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}

	b.log.Info("ui backend ready",
		zap.String("title", cfg.Title),
		zap.String("gl_version", gl.GoStr(gl.GetString(gl.VERSION))),
	)
	return b, nil
}

// Run starts the main render loop. It returns when the window closes.
func (b *Backend) Run(renderFunc func()) {
	b.backend.Run(renderFunc)
}

// OnDestroy registers fn to run while the GL context is still current,
// just before it is torn down.
func (b *Backend) OnDestroy(fn func()) {
	b.backend.SetBeforeDestroyContextHook(fn)
}

// RequestClose asks the loop to stop after the current frame.
func (b *Backend) RequestClose() {
	b.backend.SetShouldClose(true)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// DisplaySize returns the display size in points and in framebuffer
// pixels. They differ on HiDPI displays.
func DisplaySize() (width, height, drawableWidth, drawableHeight int) {
	io := imgui.CurrentIO()
	size := io.DisplaySize()
	scale := io.DisplayFramebufferScale()
	return int(size.X), int(size.Y), int(size.X * scale.X), int(size.Y * scale.Y)
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}

// SetPointerCursor shows the hand cursor for this frame. ImGui resets the
// cursor every frame, so it must be called each frame it applies.
func SetPointerCursor() {
	imgui.SetMouseCursor(imgui.MouseCursorHand)
}
