package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/terraview/internal/engine/input"
	"github.com/Faultbox/terraview/internal/logger"
)

// Hotkeys are keyboard shortcuts that edit the scene. All edits go through
// the terrain Editor, so they share its limits.
type Hotkeys struct {
	Reseed            input.Key
	FewerSubdivisions input.Key
	MoreSubdivisions  input.Key
	Shrink            input.Key
	Grow              input.Key
	Wireframe         input.Key

	SubdivisionStep uint32
	SizeStep        float32
}

// DefaultHotkeys binds R, [ ], - =, and F1.
func DefaultHotkeys() Hotkeys {
	return Hotkeys{
		Reseed:            input.KeyR,
		FewerSubdivisions: input.KeyLeftBracket,
		MoreSubdivisions:  input.KeyRightBracket,
		Shrink:            input.KeyMinus,
		Grow:              input.KeyEquals,
		Wireframe:         input.KeyF1,
		SubdivisionStep:   10,
		SizeStep:          1,
	}
}

// ApplyHotkeys applies the shortcuts pressed this frame. Call it before Tick
// so parameter edits are picked up by the same frame's maintenance.
func (s *Scene) ApplyHotkeys(in *input.Frame, h Hotkeys) {
	p := s.Editor.Parameters()

	if in.Pressed(h.Reseed) {
		seed := s.Editor.Reseed()
		logger.Debug("terrain reseeded", zap.Uint32("seed", seed))
	}

	if in.Pressed(h.FewerSubdivisions) {
		n := uint32(0)
		if p.Subdivisions > h.SubdivisionStep {
			n = p.Subdivisions - h.SubdivisionStep
		}
		s.setSubdivisions(max(n, s.Editor.Limits().MinSubdivisions, 1))
	}
	if in.Pressed(h.MoreSubdivisions) {
		s.setSubdivisions(min(p.Subdivisions+h.SubdivisionStep, s.Editor.Limits().MaxSubdivisions))
	}

	if in.Pressed(h.Shrink) {
		s.setSize(p.Size - h.SizeStep)
	}
	if in.Pressed(h.Grow) {
		s.setSize(min(p.Size+h.SizeStep, s.Editor.Limits().MaxSize))
	}

	if in.Pressed(h.Wireframe) {
		s.Wireframe = !s.Wireframe
	}
}

func (s *Scene) setSubdivisions(n uint32) {
	if err := s.Editor.SetSubdivisions(n); err != nil {
		logger.Warn("subdivisions not changed", zap.Error(err))
	}
}

func (s *Scene) setSize(size float32) {
	if err := s.Editor.SetSize(size); err != nil {
		logger.Warn("size not changed", zap.Error(err))
	}
}
