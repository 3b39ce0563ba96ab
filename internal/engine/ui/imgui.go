// Package ui provides the ImGui backend and the bridge from ImGui input to
// the engine's input buffer.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/terraview/internal/logger"
)

// Backend wraps the ImGui SDL backend.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
}

// NewBackend creates the ImGui window and initializes OpenGL.
func NewBackend(title string, width, height int, clear [4]float32) (*Backend, error) {
	b := &Backend{}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetBgColor(imgui.NewVec4(clear[0], clear[1], clear[2], clear[3]))
	b.backend.CreateWindow(title, width, height)

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}

	logger.Info("imgui backend created",
		zap.String("title", title),
		zap.Int("width", width),
		zap.Int("height", height),
	)
	return b, nil
}

// Run starts the main loop, calling frame once per rendered frame.
func (b *Backend) Run(frame func()) {
	b.backend.Run(frame)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// Viewport returns the main viewport work area.
func Viewport() (pos, size imgui.Vec2) {
	viewport := imgui.MainViewport()
	return viewport.WorkPos(), viewport.WorkSize()
}

// Image draws a GL texture filling size. GL textures are bottom-up, so the
// V coordinates are flipped.
func Image(texture uint32, size imgui.Vec2) {
	ref := imgui.NewTextureRefTextureID(imgui.TextureID(texture))
	imgui.ImageWithBgV(*ref, size,
		imgui.NewVec2(0, 1), imgui.NewVec2(1, 0),
		imgui.NewVec4(0, 0, 0, 0), imgui.NewVec4(1, 1, 1, 1))
}
