// Package main is the terrain viewer: an SDL window showing the generated
// terrain under an orbit camera.
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/terraview/internal/config"
	"github.com/Faultbox/terraview/internal/engine/debug"
	"github.com/Faultbox/terraview/internal/engine/input"
	"github.com/Faultbox/terraview/internal/engine/renderer"
	"github.com/Faultbox/terraview/internal/engine/scene"
	"github.com/Faultbox/terraview/internal/engine/window"
	"github.com/Faultbox/terraview/internal/logger"
)

const (
	windowTitle   = "Terraview"
	titleInterval = 250 * time.Millisecond
)

func main() {
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

	logger.Info("=== Terraview ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	dw, dh := win.DrawableSize()
	r, err := renderer.New(cfg.Renderer, dw, dh)
	if err != nil {
		return err
	}
	defer r.Close()

	sc, err := scene.New(cfg)
	if err != nil {
		return err
	}

	buf := input.NewBuffer()
	hotkeys := scene.DefaultHotkeys()
	shots := debug.NewScreenshots("screenshots", "terrain")

	last := time.Now()
	lastTitle := last
	for {
		ev := win.PollEvents(buf)
		if ev.Quit {
			return nil
		}
		if ev.Resized {
			r.Resize(win.DrawableSize())
		}

		now := time.Now()
		f := buf.Drain(float32(now.Sub(last).Seconds()))
		last = now

		if f.Pressed(input.KeyEscape) {
			return nil
		}
		sc.ApplyHotkeys(&f, hotkeys)
		if f.Pressed(input.KeyF2) {
			r.ShowBounds = !r.ShowBounds
		}

		r.Draw(sc.Tick(&f))

		if f.Pressed(input.KeyF12) {
			capture(r, shots, sc.Terrain.Parameters().Seed)
		}

		win.SwapBuffers()

		if now.Sub(lastTitle) >= titleInterval {
			win.SetTitle(fmt.Sprintf("%s | %s", windowTitle, sc.Stats.Snapshot()))
			lastTitle = now
		}
	}
}

func capture(r *renderer.Renderer, shots *debug.Screenshots, seed uint32) {
	pixels, w, h := r.ReadPixels()
	path, err := shots.Capture(pixels, w, h, seed)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}
