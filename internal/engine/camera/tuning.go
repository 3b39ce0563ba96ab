package camera

import "github.com/Faultbox/terraview/internal/engine/input"

// Bindings maps camera actions to physical inputs. Each action fires when
// any of its keys is held.
type Bindings struct {
	Forward []input.Key
	Back    []input.Key
	Left    []input.Key
	Right   []input.Key
	Sprint  []input.Key
	Orbit   input.MouseButton
}

// DefaultBindings binds WASD and the arrow keys, left shift to sprint and the
// middle mouse button to orbit.
func DefaultBindings() Bindings {
	return Bindings{
		Forward: []input.Key{input.KeyW, input.KeyUp},
		Back:    []input.Key{input.KeyS, input.KeyDown},
		Left:    []input.Key{input.KeyA, input.KeyLeft},
		Right:   []input.Key{input.KeyD, input.KeyRight},
		Sprint:  []input.Key{input.KeyLeftShift},
		Orbit:   input.MouseMiddle,
	}
}

// Tuning holds input speeds for a user-driven camera.
type Tuning struct {
	MoveSpeed     float32 `yaml:"move_speed"`     // units per second
	RotationSpeed float32 `yaml:"rotation_speed"` // degrees per motion unit per second
	ZoomSpeed     float32 `yaml:"zoom_speed"`     // units per scroll unit per second

	Bindings Bindings `yaml:"-"`
}

// DefaultTuning returns the default speeds and bindings.
func DefaultTuning() Tuning {
	return Tuning{
		MoveSpeed:     3,
		RotationSpeed: 40,
		ZoomSpeed:     50,
		Bindings:      DefaultBindings(),
	}
}
