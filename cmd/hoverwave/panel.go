package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
)

const panelWidth = float32(280)

// renderPanel draws one slider per parameter plus a read-only readout of
// the current frame. Edits go straight into the scene's parameters.
func (app *App) renderPanel() {
	workPos := imgui.MainViewport().WorkPos()
	workSize := imgui.MainViewport().WorkSize()

	flags := imgui.WindowFlagsNoResize | imgui.WindowFlagsNoMove |
		imgui.WindowFlagsNoSavedSettings | imgui.WindowFlagsAlwaysAutoResize

	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+workSize.X-panelWidth-10, workPos.Y+10))
	imgui.SetNextWindowSize(imgui.NewVec2(panelWidth, 0)) // Auto height
	imgui.SetNextWindowBgAlpha(0.85)

	if imgui.BeginV("Parameters", nil, flags) {
		for _, f := range app.panel.Fields() {
			v := app.panel.Value(f)
			imgui.SetNextItemWidth(160)
			if imgui.SliderFloatV(f.Name, &v, f.Min, f.Max, f.Format, imgui.SliderFlagsNone) {
				app.panel.Set(f, v)
			}
		}

		if imgui.Button("Reset") {
			app.panel.Reset()
		}
		if imgui.IsItemHovered() {
			imgui.SetTooltip("Restore the configured values")
		}

		imgui.Separator()
		app.renderReadout()
	}
	imgui.End()
}

func (app *App) renderReadout() {
	state := app.scene.State()
	plane := state.Plane()
	u := plane.Uniforms
	in := state.Controller().Interaction()

	imgui.Text(fmt.Sprintf("Time: %.2f", u.Time))
	imgui.Text(fmt.Sprintf("Hover: %.3f", u.Hover))
	imgui.Text(fmt.Sprintf("Intersect: %.3f, %.3f", u.Intersect.X, u.Intersect.Y))
	motion := "animating"
	if plane.Settled() {
		motion = "settled"
	}
	if in.HoveredID != 0 {
		imgui.TextDisabled(fmt.Sprintf("Plane %d hovered, %s", in.HoveredID, motion))
	} else {
		imgui.TextDisabled(fmt.Sprintf("Plane %d idle, %s", plane.ID, motion))
	}

	if !app.cfg.Debug.ShowStats {
		return
	}
	imgui.Separator()
	io := imgui.CurrentIO()
	imgui.Text(fmt.Sprintf("FPS: %.1f", io.Framerate()))
	imgui.SameLine()
	imgui.TextDisabled(fmt.Sprintf("(%d frames)", state.Frames()))
	imgui.Text(fmt.Sprintf("Segments: %dx%d", plane.Layout.SegmentsX, plane.Layout.SegmentsY))
	imgui.Text(fmt.Sprintf("Target Z: %.2f", u.TargetZ))
}
