package terrain

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/terraview/internal/logger"
)

// State is the entity's regeneration state.
type State int

const (
	// StateDirty means the parameters changed since the last build, or no
	// mesh was ever built.
	StateDirty State = iota
	// StateClean means the bound mesh matches the parameters.
	StateClean
)

func (s State) String() string {
	if s == StateClean {
		return "clean"
	}
	return "dirty"
}

// GenerateFunc builds a mesh from parameters.
type GenerateFunc func(Parameters) *Mesh

// Entity owns one set of terrain parameters and the mesh built from them.
// Writes mark it dirty; Maintain rebuilds at most once per frame.
type Entity struct {
	params   Parameters
	mesh     *Mesh
	dirty    bool
	version  uint64 // bumped on every parameter write
	builds   uint64
	lastTick uint64
	ticked   bool
	generate GenerateFunc
}

// NewEntity creates a dirty entity so the first Maintain builds a mesh. A nil
// generate uses the package Perlin generator.
func NewEntity(p Parameters, generate GenerateFunc) *Entity {
	if generate == nil {
		generate = Generate
	}
	return &Entity{
		params:   p,
		dirty:    true,
		generate: generate,
	}
}

// Parameters returns the current parameters.
func (e *Entity) Parameters() Parameters {
	return e.params
}

// SetSeed writes the seed and marks the entity dirty.
func (e *Entity) SetSeed(seed uint32) {
	e.params.Seed = seed
	e.touch()
}

// SetSize writes the size and marks the entity dirty. Range checks belong to
// the Editor.
func (e *Entity) SetSize(size float32) {
	e.params.Size = size
	e.touch()
}

// SetSubdivisions writes the subdivision count and marks the entity dirty.
func (e *Entity) SetSubdivisions(n uint32) {
	e.params.Subdivisions = n
	e.touch()
}

// SetParameters replaces all parameters at once.
func (e *Entity) SetParameters(p Parameters) {
	e.params = p
	e.touch()
}

func (e *Entity) touch() {
	e.version++
	e.dirty = true
}

// State reports whether a rebuild is pending.
func (e *Entity) State() State {
	if e.dirty {
		return StateDirty
	}
	return StateClean
}

// Mesh returns the bound mesh, nil before the first Maintain. The mesh is
// replaced wholesale on rebuild and never mutated afterwards.
func (e *Entity) Mesh() *Mesh {
	return e.mesh
}

// Generation returns how many times the mesh has been built.
func (e *Entity) Generation() uint64 {
	return e.builds
}

// Version returns the parameter write counter.
func (e *Entity) Version() uint64 {
	return e.version
}

// Maintain is the per-frame step. If the entity is dirty it builds one mesh
// from the current parameters, however many fields changed, and swaps it in.
// A second call with the same frame number is a no-op. Returns true when a
// new mesh was bound.
func (e *Entity) Maintain(frame uint64) bool {
	if e.ticked && frame == e.lastTick {
		return false
	}
	e.ticked = true
	e.lastTick = frame

	if !e.dirty {
		return false
	}

	start := time.Now()
	mesh := e.generate(e.params)

	e.mesh = mesh
	e.dirty = false
	e.builds++

	logger.Info("terrain mesh regenerated",
		zap.Uint32("seed", e.params.Seed),
		zap.Float32("size", e.params.Size),
		zap.Uint32("subdivisions", e.params.Subdivisions),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Duration("took", time.Since(start)),
	)
	return true
}
