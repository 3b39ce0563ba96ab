// Package renderer draws the terrain scene with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/terraview/internal/config"
	"github.com/Faultbox/terraview/internal/engine/debug"
	"github.com/Faultbox/terraview/internal/engine/lighting"
	"github.com/Faultbox/terraview/internal/engine/scene"
	"github.com/Faultbox/terraview/internal/engine/shader"
	"github.com/Faultbox/terraview/internal/logger"
	"github.com/Faultbox/terraview/pkg/math"
)

// Ambient light added to every fragment.
var ambient = math.Vec3{X: 0.08, Y: 0.08, Z: 0.1}

var boundsColor = [3]float32{1, 0.8, 0.2}

// Renderer draws scene views.
type Renderer struct {
	cfg config.RendererConfig

	width, height int32

	terrainProgram *shader.Program
	lineProgram    *shader.Program

	mesh   *gpuMesh
	bounds *lineBatch
	lights *lighting.PointLightBuffer

	// ShowBounds draws the terrain bounding box.
	ShowBounds bool
}

// New creates a renderer.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(cfg config.RendererConfig, width, height int32) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	r := &Renderer{
		cfg:    cfg,
		lights: lighting.NewPointLightBuffer(),
	}

	var err error
	r.terrainProgram, err = shader.New(terrainVertexShader, terrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}
	r.lineProgram, err = shader.New(lineVertexShader, lineFragmentShader)
	if err != nil {
		r.terrainProgram.Destroy()
		return nil, fmt.Errorf("line shader: %w", err)
	}

	r.mesh = newGPUMesh()
	r.bounds = newLineBatch()

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	r.Resize(width, height)
	return r, nil
}

// Close releases GL resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.mesh.destroy()
	r.bounds.destroy()
	r.terrainProgram.Destroy()
	r.lineProgram.Destroy()
}

// Resize sets the viewport. The projection follows the new aspect ratio.
func (r *Renderer) Resize(width, height int32) {
	width, height = max(width, 1), max(height, 1)
	gl.Viewport(0, 0, width, height)
	if width == r.width && height == r.height {
		return
	}
	r.width, r.height = width, height
	logger.Debug("renderer resized",
		zap.Int32("width", r.width),
		zap.Int32("height", r.height),
	)
}

// ReadPixels reads the current read buffer as bottom-up RGBA rows. Call it
// after Draw and before the buffers are swapped.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = int(r.width), int(r.height)
	pixels = make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, r.width, r.height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}

// Projection returns the perspective matrix for the given aspect ratio.
func Projection(cfg config.RendererConfig, aspect float32) math.Mat4 {
	if !(aspect > 0) {
		aspect = 1
	}
	return math.Perspective(math.Radians(cfg.FOV), aspect, cfg.Near, cfg.Far)
}

// Draw renders one frame. The GPU mesh is re-uploaded only when the view's
// mesh generation differs from the one last uploaded.
func (r *Renderer) Draw(v scene.View) {
	if v.Mesh != nil && v.Generation != r.mesh.generation {
		r.mesh.upload(v.Mesh, v.Generation)
		r.bounds.upload(debug.BoundsLines(v.Mesh.Bounds(), 0.05))
		logger.Debug("terrain mesh uploaded",
			zap.Uint64("generation", v.Generation),
			zap.Int("vertices", len(v.Mesh.Vertices)),
			zap.Int("triangles", v.Mesh.TriangleCount()),
		)
	}

	c := r.cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	viewProj := Projection(r.cfg, float32(r.width)/float32(r.height)).Mul(v.Camera.View)

	if v.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		gl.Disable(gl.CULL_FACE)
	}

	r.lights.SetLights(v.Light)
	p := r.terrainProgram
	p.Use()
	p.SetMat4("uViewProj", viewProj)
	p.SetColor("uColor", r.cfg.TerrainColor)
	p.SetVec3("uAmbient", ambient)
	gl.Uniform3fv(p.Uniform("uPointLightPositions"), lighting.MaxPointLights, &r.lights.Positions()[0])
	gl.Uniform3fv(p.Uniform("uPointLightColors"), lighting.MaxPointLights, &r.lights.Colors()[0])
	gl.Uniform1fv(p.Uniform("uPointLightRanges"), lighting.MaxPointLights, &r.lights.Ranges()[0])
	gl.Uniform1fv(p.Uniform("uPointLightIntensities"), lighting.MaxPointLights, &r.lights.Intensities()[0])
	p.SetInt("uPointLightCount", int32(r.lights.Count()))
	r.mesh.draw()

	if v.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		gl.Enable(gl.CULL_FACE)
	}

	if r.ShowBounds {
		r.lineProgram.Use()
		r.lineProgram.SetMat4("uViewProj", viewProj)
		r.lineProgram.SetColor("uColor", boundsColor)
		r.bounds.draw()
	}
}
