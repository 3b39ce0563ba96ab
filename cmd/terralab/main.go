// Package main is the terrain lab: the terrain view inside an ImGui window
// with a renderer panel for wireframe, terrain parameters and diagnostics.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/terraview/internal/config"
	"github.com/Faultbox/terraview/internal/engine/debug"
	"github.com/Faultbox/terraview/internal/engine/framebuffer"
	"github.com/Faultbox/terraview/internal/engine/input"
	"github.com/Faultbox/terraview/internal/engine/picking"
	"github.com/Faultbox/terraview/internal/engine/renderer"
	"github.com/Faultbox/terraview/internal/engine/scene"
	"github.com/Faultbox/terraview/internal/engine/ui"
	"github.com/Faultbox/terraview/internal/logger"
	"github.com/Faultbox/terraview/pkg/math"
)

const (
	windowTitle = "Terraview Lab"
	panelWidth  = float32(300)
)

func main() {
	runtime.LockOSThread()

	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Terraview Lab ===")

	app, err := NewApp(cfg)
	if err != nil {
		logger.Error("failed to start lab", zap.Error(err))
		os.Exit(1)
	}
	defer app.Close()

	app.Run()
	logger.Info("lab closed normally")
}

// App holds the lab state.
type App struct {
	cfg *config.Config

	backend  *ui.Backend
	renderer *renderer.Renderer
	fb       *framebuffer.Framebuffer
	scene    *scene.Scene

	buf     *input.Buffer
	bridge  ui.InputBridge
	hotkeys scene.Hotkeys
	shots   *debug.Screenshots

	// Hover and focus of the terrain view on the previous frame; input for
	// this frame is gathered before the view is drawn.
	viewHovered bool
	viewFocused bool

	// Terrain point under the mouse.
	cursor    math.Vec3
	cursorHit bool

	lastFrame time.Time
	status    string
}

// NewApp creates the window, GL resources and scene.
func NewApp(cfg *config.Config) (*App, error) {
	b, err := ui.NewBackend(windowTitle, cfg.Window.Width, cfg.Window.Height, cfg.Renderer.ClearColor)
	if err != nil {
		return nil, err
	}

	r, err := renderer.New(cfg.Renderer, int32(cfg.Window.Width), int32(cfg.Window.Height))
	if err != nil {
		return nil, err
	}

	fb, err := framebuffer.New(int32(cfg.Window.Width), int32(cfg.Window.Height))
	if err != nil {
		r.Close()
		return nil, err
	}

	sc, err := scene.New(cfg)
	if err != nil {
		fb.Destroy()
		r.Close()
		return nil, err
	}

	return &App{
		cfg:       cfg,
		backend:   b,
		renderer:  r,
		fb:        fb,
		scene:     sc,
		buf:       input.NewBuffer(),
		hotkeys:   scene.DefaultHotkeys(),
		shots:     debug.NewScreenshots("screenshots", "terrain"),
		lastFrame: time.Now(),
	}, nil
}

// Close releases GL resources.
func (app *App) Close() {
	app.fb.Destroy()
	app.renderer.Close()
}

// Run enters the backend loop.
func (app *App) Run() {
	app.backend.Run(app.frame)
}

func (app *App) frame() {
	now := time.Now()
	dt := now.Sub(app.lastFrame)
	app.lastFrame = now

	keyboard := app.viewFocused && !imgui.IsAnyItemActive()
	app.bridge.Feed(app.buf, app.viewHovered, keyboard)
	f := app.buf.Drain(float32(dt.Seconds()))

	app.scene.ApplyHotkeys(&f, app.hotkeys)
	if f.Pressed(input.KeyF2) {
		app.renderer.ShowBounds = !app.renderer.ShowBounds
	}
	view := app.scene.Tick(&f)

	pos, size := ui.Viewport()

	imgui.SetNextWindowPos(pos)
	imgui.SetNextWindowSize(imgui.NewVec2(panelWidth, size.Y))
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse
	if imgui.BeginV("Renderer", nil, flags) {
		app.renderPanel()
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(pos.X+panelWidth, pos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(size.X-panelWidth, size.Y))
	if imgui.BeginV("Terrain", nil, flags) {
		app.viewFocused = imgui.IsWindowFocused()
		app.renderView(view)
	}
	imgui.End()

	if f.Pressed(input.KeyF12) {
		app.capture()
	}
}

// renderView draws the scene into the framebuffer and shows it.
func (app *App) renderView(view scene.View) {
	avail := imgui.ContentRegionAvail()
	if avail.X < 1 || avail.Y < 1 {
		app.viewHovered = false
		return
	}
	app.fb.Resize(int32(avail.X), int32(avail.Y))

	restore := app.fb.Bind()
	app.renderer.Resize(app.fb.Size())
	app.renderer.Draw(view)
	restore()

	origin := imgui.CursorScreenPos()
	ui.Image(app.fb.ColorTexture(), avail)
	app.viewHovered = imgui.IsItemHovered()

	app.cursorHit = false
	if app.viewHovered {
		mouse := imgui.MousePos()
		ray := picking.ScreenRay(view.Camera, app.cfg.Renderer.FOV,
			mouse.X-origin.X, mouse.Y-origin.Y, avail.X, avail.Y)
		app.cursor, app.cursorHit = picking.PickTerrain(ray, view.Mesh)
	}
}

func (app *App) capture() {
	w, h := app.fb.Size()
	path, err := app.shots.Capture(app.fb.ReadPixels(), int(w), int(h), app.scene.Terrain.Parameters().Seed)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		app.status = "Screenshot failed"
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
	app.status = "Saved " + path
}
