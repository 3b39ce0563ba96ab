// Package camera provides the orbit camera used to inspect the terrain.
package camera

import (
	"github.com/Faultbox/terraview/internal/engine/input"
	"github.com/Faultbox/terraview/pkg/math"
)

// OrbitCamera orbits around a target point.
type OrbitCamera struct {
	// Target is the point the camera looks at.
	Target math.Vec3 `yaml:"target"`

	// Rotation is (yaw, pitch) in degrees. Neither is clamped.
	Rotation math.Vec2 `yaml:"rotation"`

	// Distance from target. May become zero or negative under zoom.
	Distance float32 `yaml:"distance"`
}

// NewOrbitCamera creates an orbit camera 10 units from the origin at a
// 45 degree pitch.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Rotation: math.Vec2{X: 0, Y: 45},
		Distance: 10,
	}
}

// Transform is the camera's derived world transform.
type Transform struct {
	Position math.Vec3
	Rotation math.Quat
	View     math.Mat4
}

// Forward returns the viewing direction.
func (t Transform) Forward() math.Vec3 {
	return t.Rotation.Rotate(math.UnitZ.Neg())
}

// Up returns the camera's up direction.
func (t Transform) Up() math.Vec3 {
	return t.Rotation.Rotate(math.UnitY)
}

// Offset returns the camera position relative to the target.
func (c *OrbitCamera) Offset() math.Vec3 {
	sinYaw, cosYaw := math.Sincos(math.Radians(c.Rotation.X))
	sinPitch, cosPitch := math.Sincos(math.Radians(c.Rotation.Y))

	horizontal := c.Distance * cosPitch
	return math.Vec3{
		X: horizontal * cosYaw,
		Y: c.Distance * sinPitch,
		Z: horizontal * sinYaw,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	return c.Target.Add(c.Offset())
}

// Transform derives the world transform from the current state. It keeps no
// memory of previous frames, so roll is always zero.
func (c *OrbitCamera) Transform() Transform {
	pos := c.Position()
	return Transform{
		Position: pos,
		Rotation: math.QuatLookRotation(c.Target.Sub(pos), math.UnitY),
		View:     math.LookAt(pos, c.Target, math.UnitY),
	}
}

// ApplyMotion applies one mouse-motion event.
func (c *OrbitCamera) ApplyMotion(delta math.Vec2, speed, dt float32) {
	c.Rotation.X += speed * delta.X * dt
	c.Rotation.Y += speed * delta.Y * dt
}

// ApplyScroll applies one scroll event.
func (c *OrbitCamera) ApplyScroll(y, speed, dt float32) {
	c.Distance -= speed * y * dt
}

// Move translates the target by a camera-local planar velocity, where -X is
// forward and +Z is left, rotated by the current yaw.
func (c *OrbitCamera) Move(local math.Vec3) {
	world := math.QuatFromRotationY(-math.Radians(c.Rotation.X)).Rotate(local)
	c.Target = c.Target.Add(world)
}

// Integrate applies one frame of user input.
func (c *OrbitCamera) Integrate(f *input.Frame, t *Tuning) {
	b := &t.Bindings
	step := t.MoveSpeed * f.DT

	var v math.Vec3
	if f.Held(b.Forward...) {
		v.X -= step
	}
	if f.Held(b.Back...) {
		v.X += step
	}
	if f.Held(b.Left...) {
		v.Z += step
	}
	if f.Held(b.Right...) {
		v.Z -= step
	}
	if f.Held(b.Sprint...) {
		v = v.Scale(2)
	}
	c.Move(v)

	if f.ButtonHeld(b.Orbit) {
		for _, m := range f.Motion {
			c.ApplyMotion(m, t.RotationSpeed, f.DT)
		}
	}

	for _, y := range f.Scroll {
		c.ApplyScroll(y, t.ZoomSpeed, f.DT)
	}
}

// Controlled pairs a camera with optional input tuning. A camera without
// tuning is never driven by input.
type Controlled struct {
	*OrbitCamera
	Tuning *Tuning
}

// Update integrates input when the camera is user-driven.
func (c *Controlled) Update(f *input.Frame) {
	if c.Tuning != nil {
		c.Integrate(f, c.Tuning)
	}
}
