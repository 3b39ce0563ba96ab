// Package scene runs the per-frame update of the terrain viewer: camera
// input, camera transforms, terrain maintenance and frame statistics, in
// that order.
package scene

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/terraview/internal/config"
	"github.com/Faultbox/terraview/internal/engine/camera"
	"github.com/Faultbox/terraview/internal/engine/diagnostics"
	"github.com/Faultbox/terraview/internal/engine/input"
	"github.com/Faultbox/terraview/internal/engine/lighting"
	"github.com/Faultbox/terraview/internal/engine/terrain"
	"github.com/Faultbox/terraview/internal/logger"
	"github.com/Faultbox/terraview/pkg/noise"
)

// View is what the renderer needs for one frame.
type View struct {
	Frame       uint64
	Mesh        *terrain.Mesh
	Generation  uint64 // changes whenever Mesh does
	Regenerated bool
	Camera      camera.Transform
	Light       lighting.PointLight
	Wireframe   bool
}

// Scene owns the terrain, the cameras and the frame statistics.
type Scene struct {
	Terrain   *terrain.Entity
	Editor    *terrain.Editor
	Cameras   []*camera.Controlled
	Stats     *diagnostics.FrameStats
	Light     lighting.PointLight
	Wireframe bool

	generator  *terrain.Generator
	transforms []camera.Transform
	frame      uint64
}

// New builds a scene from configuration. A terrain seed of 0 is replaced by
// a random one.
func New(cfg *config.Config) (*Scene, error) {
	kind, err := noise.ParseKind(cfg.Terrain.Noise)
	if err != nil {
		return nil, err
	}
	gen, err := terrain.NewGenerator(kind)
	if err != nil {
		return nil, fmt.Errorf("creating generator: %w", err)
	}

	params := cfg.Terrain.Parameters()
	if params.Seed == 0 {
		params.Seed = rand.Uint32()
	}
	if err := cfg.Terrain.Limits.Check(params); err != nil {
		return nil, fmt.Errorf("initial terrain: %w", err)
	}

	entity := terrain.NewEntity(params, gen.Generate)

	orbit := cfg.Camera.Orbit
	cam := &camera.Controlled{OrbitCamera: &orbit}
	if cfg.Camera.UserInput {
		tuning := cfg.Camera.Tuning
		cam.Tuning = &tuning
	}

	light := lighting.DefaultPointLight()
	light.Position = cfg.Renderer.Light.Position
	light.Intensity = cfg.Renderer.Light.Intensity
	light.Range = cfg.Renderer.Light.Range

	stats := diagnostics.NewFrameStats()
	stats.LogEvery(cfg.Logging.DiagnosticsInterval)

	logger.Info("scene created",
		zap.String("noise", string(kind)),
		zap.Uint32("seed", params.Seed),
		zap.Float32("size", params.Size),
		zap.Uint32("subdivisions", params.Subdivisions),
		zap.Bool("user_input", cam.Tuning != nil),
	)

	return &Scene{
		Terrain:   entity,
		Editor:    terrain.NewEditor(entity, cfg.Terrain.Limits),
		Cameras:   []*camera.Controlled{cam},
		Stats:     stats,
		Light:     light,
		Wireframe: cfg.Renderer.Wireframe,
		generator: gen,
	}, nil
}

// NoiseKind returns the terrain noise backend.
func (s *Scene) NoiseKind() noise.Kind {
	return s.generator.Kind()
}

// Camera returns the camera used for rendering.
func (s *Scene) Camera() *camera.Controlled {
	return s.Cameras[0]
}

// Frame returns the number of completed ticks.
func (s *Scene) Frame() uint64 {
	return s.frame
}

// Transforms returns a copy of the camera transforms derived in the last
// tick, in Cameras order.
func (s *Scene) Transforms() []camera.Transform {
	return slices.Clone(s.transforms)
}

// Tick advances the scene by one frame. Every tuned camera integrates in
// before any transform is derived, so all transforms observe a fully updated
// frame.
func (s *Scene) Tick(in *input.Frame) View {
	s.frame++

	for _, c := range s.Cameras {
		c.Update(in)
	}

	s.transforms = s.transforms[:0]
	for _, c := range s.Cameras {
		s.transforms = append(s.transforms, c.Transform())
	}

	regenerated := s.Terrain.Maintain(s.frame)

	s.Stats.Record(time.Duration(float64(in.DT) * float64(time.Second)))

	return View{
		Frame:       s.frame,
		Mesh:        s.Terrain.Mesh(),
		Generation:  s.Terrain.Generation(),
		Regenerated: regenerated,
		Camera:      s.transforms[0],
		Light:       s.Light,
		Wireframe:   s.Wireframe,
	}
}
