// Package terrain generates heightmap-displaced grid meshes from a noise
// field and keeps an entity's mesh in step with its parameters.
package terrain

import (
	"errors"
	"fmt"
	"math"
)

// Parameter errors returned by Validate and the Editor boundary.
var (
	ErrInvalidSize         = errors.New("terrain size out of range")
	ErrInvalidSubdivisions = errors.New("terrain subdivisions out of range")
)

// MaxIndexableSubdivisions is the largest subdivision count whose vertices
// can all be addressed by uint32 indices.
const MaxIndexableSubdivisions = 65534

// Parameters fully determine a generated mesh.
type Parameters struct {
	Seed         uint32  `yaml:"seed"`
	Size         float32 `yaml:"size"`         // side length of the square, world units
	Subdivisions uint32  `yaml:"subdivisions"` // cells per side
}

// DefaultParameters returns a 10x10 terrain with 100 cells per side.
func DefaultParameters() Parameters {
	return Parameters{
		Seed:         0,
		Size:         10,
		Subdivisions: 100,
	}
}

// Validate checks the generator preconditions: a finite positive size and a
// cell count in [1, MaxIndexableSubdivisions].
func (p Parameters) Validate() error {
	if !(p.Size > 0) || math.IsInf(float64(p.Size), 0) {
		return fmt.Errorf("%w: size %v must be > 0", ErrInvalidSize, p.Size)
	}
	if p.Subdivisions < 1 || p.Subdivisions > MaxIndexableSubdivisions {
		return fmt.Errorf("%w: subdivisions %d not in [1, %d]", ErrInvalidSubdivisions, p.Subdivisions, MaxIndexableSubdivisions)
	}
	return nil
}

// VertexCount returns (subdivisions+1)^2.
func (p Parameters) VertexCount() int {
	n := int(p.Subdivisions) + 1
	return n * n
}
