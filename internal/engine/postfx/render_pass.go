package postfx

import "github.com/Faultbox/hoverwave/internal/engine/framebuffer"

// Drawer draws a scene into the bound target.
type Drawer interface {
	Draw() error
}

// RenderPass clears the target and draws a scene into it. It ignores its
// input, so it is normally the first pass.
type RenderPass struct {
	scene      Drawer
	clearColor [4]float32
}

// NewRenderPass creates a pass drawing scene over clearColor.
func NewRenderPass(scene Drawer, clearColor [4]float32) *RenderPass {
	return &RenderPass{scene: scene, clearColor: clearColor}
}

// Name implements Pass.
func (p *RenderPass) Name() string { return "render" }

// Enabled implements Pass. The scene is always drawn.
func (p *RenderPass) Enabled() bool { return true }

// SetClearColor changes the background.
func (p *RenderPass) SetClearColor(c [4]float32) { p.clearColor = c }

// Render implements Pass.
func (p *RenderPass) Render(_ uint32, target *framebuffer.Framebuffer) error {
	target.Clear(p.clearColor)
	return p.scene.Draw()
}
