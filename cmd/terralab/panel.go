package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/terraview/internal/engine/diagnostics"
	"github.com/Faultbox/terraview/internal/logger"
)

func (app *App) renderPanel() {
	imgui.Checkbox("Wireframe", &app.scene.Wireframe)
	imgui.Checkbox("Bounds", &app.renderer.ShowBounds)

	imgui.Separator()
	app.renderTerrainControls()

	imgui.Separator()
	app.renderCameraInfo()

	imgui.Separator()
	renderDiagnostics(app.scene.Stats.Snapshot())

	imgui.Separator()
	if imgui.Button("Save config") {
		app.saveConfig()
	}
	if app.status != "" {
		imgui.TextDisabled(app.status)
	}
}

func (app *App) renderTerrainControls() {
	ed := app.scene.Editor
	p := ed.Parameters()
	lim := ed.Limits()

	imgui.Text("Terrain")

	seed := int32(p.Seed)
	if imgui.InputInt("Seed", &seed) {
		ed.SetSeed(uint32(seed))
	}
	if imgui.Button("Randomize") {
		ed.Reseed()
	}

	size := p.Size
	lo, hi := lim.SizeRange()
	if imgui.SliderFloatV("Size", &size, lo, hi, "%.2f", imgui.SliderFlagsLogarithmic) {
		if err := ed.SetSize(size); err != nil {
			logger.Warn("size not changed", zap.Error(err))
		}
	}

	subdivisions := int32(p.Subdivisions)
	if imgui.SliderIntV("Subdivisions", &subdivisions,
		int32(max(lim.MinSubdivisions, 1)), int32(lim.MaxSubdivisions), "%d", imgui.SliderFlagsNone) {
		if err := ed.SetSubdivisions(uint32(subdivisions)); err != nil {
			logger.Warn("subdivisions not changed", zap.Error(err))
		}
	}

	mesh := app.scene.Terrain.Mesh()
	if mesh != nil {
		imgui.TextDisabled(fmt.Sprintf("%d vertices, %d triangles, generation %d",
			len(mesh.Vertices), mesh.TriangleCount(), app.scene.Terrain.Generation()))
	}
	imgui.TextDisabled(fmt.Sprintf("Noise: %s", app.scene.NoiseKind()))
}

func (app *App) renderCameraInfo() {
	c := app.scene.Camera()
	imgui.Text("Camera")
	imgui.Text(fmt.Sprintf("Target: %.2f, %.2f, %.2f", c.Target.X, c.Target.Y, c.Target.Z))
	imgui.Text(fmt.Sprintf("Yaw %.1f  Pitch %.1f  Distance %.2f", c.Rotation.X, c.Rotation.Y, c.Distance))
	if app.cursorHit {
		imgui.Text(fmt.Sprintf("Cursor: %.2f, %.2f, %.2f", app.cursor.X, app.cursor.Y, app.cursor.Z))
	} else {
		imgui.TextDisabled("Cursor: -")
	}
	if c.Tuning == nil {
		imgui.TextDisabled("Fixed (user input disabled)")
	} else {
		imgui.TextDisabled("WASD/arrows move, shift sprints, middle drag orbits, wheel zooms")
	}
}

func renderDiagnostics(s diagnostics.Snapshot) {
	imgui.Text("Diagnostics")
	imgui.Text(fmt.Sprintf("FPS: %.0f (avg %.0f)", s.FPS, s.AverageFPS))
	imgui.Text(fmt.Sprintf("Frame time: %.3fms (avg %.3fms)", s.FrameTime, s.AverageFrameMs))
	imgui.Text(fmt.Sprintf("Frames: %d", s.Frames))
	imgui.Text(fmt.Sprintf("Heap: %s", diagnostics.FormatBytes(int64(s.HeapAlloc))))
}

// saveConfig writes the current terrain, camera and wireframe state back to
// the user config file.
func (app *App) saveConfig() {
	p := app.scene.Editor.Parameters()
	app.cfg.Terrain.Seed = p.Seed
	app.cfg.Terrain.Size = p.Size
	app.cfg.Terrain.Subdivisions = p.Subdivisions
	app.cfg.Renderer.Wireframe = app.scene.Wireframe
	app.cfg.Camera.Orbit = *app.scene.Camera().OrbitCamera

	if err := app.cfg.Save(); err != nil {
		logger.Error("failed to save config", zap.Error(err))
		app.status = "Save failed"
		return
	}
	logger.Info("config saved")
	app.status = "Config saved"
}
