package terrain

import (
	"fmt"
	"math/rand/v2"
)

// Limits bound the values the Editor will commit.
type Limits struct {
	MinSubdivisions uint32  `yaml:"min_subdivisions"`
	MaxSubdivisions uint32  `yaml:"max_subdivisions"`
	MaxSize         float32 `yaml:"max_size"`
}

// DefaultLimits allows subdivisions in [1, 300] and size in (0, 100].
func DefaultLimits() Limits {
	return Limits{
		MinSubdivisions: 1,
		MaxSubdivisions: 300,
		MaxSize:         100,
	}
}

// CheckSize reports whether size is in (0, MaxSize].
func (l Limits) CheckSize(size float32) error {
	if !(size > 0) || size > l.MaxSize {
		return fmt.Errorf("%w: %v not in (0, %v]", ErrInvalidSize, size, l.MaxSize)
	}
	return nil
}

// SizeStep is the finest size increment offered by interactive controls.
const SizeStep = 0.1

// SizeRange returns the size range an interactive control should offer.
// Size is open at zero, so the range starts at SizeStep.
func (l Limits) SizeRange() (lo, hi float32) {
	return min(SizeStep, l.MaxSize), l.MaxSize
}

// CheckSubdivisions reports whether n is in [MinSubdivisions, MaxSubdivisions].
func (l Limits) CheckSubdivisions(n uint32) error {
	lo := max(l.MinSubdivisions, 1)
	if n < lo || n > l.MaxSubdivisions {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidSubdivisions, n, lo, l.MaxSubdivisions)
	}
	return nil
}

// Check validates a full parameter set.
func (l Limits) Check(p Parameters) error {
	if err := l.CheckSize(p.Size); err != nil {
		return err
	}
	return l.CheckSubdivisions(p.Subdivisions)
}

// Editor is the parameter-editing boundary in front of an Entity. Values
// outside its limits are rejected and never reach the entity; values equal
// to the current ones are not written, so they do not trigger a rebuild.
type Editor struct {
	entity *Entity
	limits Limits
}

// NewEditor wraps entity with the given limits.
func NewEditor(entity *Entity, limits Limits) *Editor {
	return &Editor{entity: entity, limits: limits}
}

// Limits returns the editor's limits.
func (ed *Editor) Limits() Limits {
	return ed.limits
}

// Parameters returns the entity's current parameters.
func (ed *Editor) Parameters() Parameters {
	return ed.entity.Parameters()
}

// SetSeed commits a new seed. Every u32 is a valid seed.
func (ed *Editor) SetSeed(seed uint32) {
	if ed.entity.Parameters().Seed != seed {
		ed.entity.SetSeed(seed)
	}
}

// Reseed commits a random seed and returns it.
func (ed *Editor) Reseed() uint32 {
	seed := rand.Uint32()
	ed.SetSeed(seed)
	return seed
}

// SetSize commits a new size.
func (ed *Editor) SetSize(size float32) error {
	if err := ed.limits.CheckSize(size); err != nil {
		return err
	}
	if ed.entity.Parameters().Size != size {
		ed.entity.SetSize(size)
	}
	return nil
}

// SetSubdivisions commits a new subdivision count.
func (ed *Editor) SetSubdivisions(n uint32) error {
	if err := ed.limits.CheckSubdivisions(n); err != nil {
		return err
	}
	if ed.entity.Parameters().Subdivisions != n {
		ed.entity.SetSubdivisions(n)
	}
	return nil
}

// Commit validates p as a whole and, if valid, writes the fields that
// differ. Nothing is written when any field is invalid.
func (ed *Editor) Commit(p Parameters) error {
	if err := ed.limits.Check(p); err != nil {
		return err
	}
	ed.SetSeed(p.Seed)
	if ed.entity.Parameters().Size != p.Size {
		ed.entity.SetSize(p.Size)
	}
	if ed.entity.Parameters().Subdivisions != p.Subdivisions {
		ed.entity.SetSubdivisions(p.Subdivisions)
	}
	return nil
}
