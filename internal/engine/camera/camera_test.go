package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/terraview/internal/engine/input"
	"github.com/Faultbox/terraview/pkg/math"
)

const eps = 1e-4

func near(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < eps
}

func nearVec(a, b math.Vec3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

// frame builds an input frame by replaying events through a Buffer.
func frame(dt float32, fill func(b *input.Buffer)) input.Frame {
	b := input.NewBuffer()
	if fill != nil {
		fill(b)
	}
	return b.Drain(dt)
}

func TestDefaultTransform(t *testing.T) {
	c := NewOrbitCamera()
	tr := c.Transform()

	h := float32(10 * gomath.Cos(gomath.Pi/4))
	want := math.Vec3{X: h, Y: h, Z: 0}
	if !nearVec(tr.Position, want) {
		t.Fatalf("position = %v, want %v", tr.Position, want)
	}

	toTarget := c.Target.Sub(tr.Position).Normalize()
	if !nearVec(tr.Forward(), toTarget) {
		t.Errorf("forward = %v, want %v", tr.Forward(), toTarget)
	}
	if view := tr.View.TransformPoint(c.Target); !nearVec(view, math.Vec3{Z: -10}) {
		t.Errorf("target in view space = %v, want (0, 0, -10)", view)
	}
}

func TestTransformHasNoRoll(t *testing.T) {
	for _, rot := range []math.Vec2{{X: 0, Y: 45}, {X: 90, Y: 10}, {X: 215, Y: -30}, {X: -60, Y: 80}} {
		c := &OrbitCamera{Target: math.Vec3{X: 1, Y: 2, Z: 3}, Rotation: rot, Distance: 5}
		tr := c.Transform()

		right := tr.Forward().Cross(tr.Up())
		if !near(right.Y, 0) {
			t.Errorf("rotation %v: right vector %v has a vertical component", rot, right)
		}
		if tr.Up().Y <= 0 {
			t.Errorf("rotation %v: up vector %v points down", rot, tr.Up())
		}
		if !near(tr.Position.Distance(c.Target), 5) {
			t.Errorf("rotation %v: distance to target = %v", rot, tr.Position.Distance(c.Target))
		}
	}
}

func TestTransformYaw(t *testing.T) {
	c := &OrbitCamera{Rotation: math.Vec2{X: 90, Y: 0}, Distance: 2}
	if got := c.Position(); !nearVec(got, math.Vec3{Z: 2}) {
		t.Errorf("position at yaw 90 = %v, want (0, 0, 2)", got)
	}
}

func TestMovementKeys(t *testing.T) {
	tuning := DefaultTuning()

	tests := []struct {
		name string
		keys []input.Key
		want math.Vec3
	}{
		{"forward", []input.Key{input.KeyW}, math.Vec3{X: -3}},
		{"forward arrow", []input.Key{input.KeyUp}, math.Vec3{X: -3}},
		{"back", []input.Key{input.KeyS}, math.Vec3{X: 3}},
		{"left", []input.Key{input.KeyA}, math.Vec3{Z: 3}},
		{"right", []input.Key{input.KeyRight}, math.Vec3{Z: -3}},
		{"opposite cancel", []input.Key{input.KeyW, input.KeyDown}, math.Vec3{}},
		{"all four cancel", []input.Key{input.KeyW, input.KeyA, input.KeyS, input.KeyD}, math.Vec3{}},
		{"sprint", []input.Key{input.KeyW, input.KeyLeftShift}, math.Vec3{X: -6}},
		{"diagonal sprint", []input.Key{input.KeyUp, input.KeyLeft, input.KeyLeftShift}, math.Vec3{X: -6, Z: 6}},
		{"sprint alone", []input.Key{input.KeyLeftShift}, math.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewOrbitCamera()
			f := frame(1, func(b *input.Buffer) {
				for _, k := range tt.keys {
					b.KeyDown(k)
				}
			})
			c.Integrate(&f, &tuning)
			if !nearVec(c.Target, tt.want) {
				t.Errorf("target = %v, want %v", c.Target, tt.want)
			}
		})
	}
}

func TestMovementFollowsYaw(t *testing.T) {
	tuning := DefaultTuning()
	c := &OrbitCamera{Rotation: math.Vec2{X: 90, Y: 30}, Distance: 10}

	before := c.Transform().Forward()
	f := frame(0.5, func(b *input.Buffer) { b.KeyDown(input.KeyW) })
	c.Integrate(&f, &tuning)

	// Forward at yaw 90 is -Z on the ground plane.
	if !nearVec(c.Target, math.Vec3{Z: -1.5}) {
		t.Fatalf("target = %v, want (0, 0, -1.5)", c.Target)
	}
	planar := math.Vec3{X: before.X, Z: before.Z}.Normalize()
	if moved := c.Target.Normalize(); !nearVec(moved, planar) {
		t.Errorf("moved along %v, camera faces %v", moved, planar)
	}
}

func TestOrbitAppliesEachMotionEvent(t *testing.T) {
	tuning := DefaultTuning()
	motions := []math.Vec2{{X: 1, Y: 2}, {X: 3, Y: -1}, {X: -0.5, Y: 0.25}}
	const dt = 0.5

	c := NewOrbitCamera()
	f := frame(dt, func(b *input.Buffer) {
		b.ButtonDown(input.MouseMiddle)
		for _, m := range motions {
			b.Motion(m.X, m.Y)
		}
	})
	c.Integrate(&f, &tuning)

	want := NewOrbitCamera()
	for _, m := range motions {
		want.ApplyMotion(m, tuning.RotationSpeed, dt)
	}
	if c.Rotation != want.Rotation {
		t.Errorf("rotation = %v, want %v from per-event application", c.Rotation, want.Rotation)
	}

	// 40 * (1 + 3 - 0.5) * 0.5 and 45 + 40 * (2 - 1 + 0.25) * 0.5
	if !near(c.Rotation.X, 70) || !near(c.Rotation.Y, 70) {
		t.Errorf("rotation = %v, want (70, 70)", c.Rotation)
	}
}

func TestMotionIgnoredWithoutOrbitButton(t *testing.T) {
	tuning := DefaultTuning()
	c := NewOrbitCamera()

	f := frame(1, func(b *input.Buffer) {
		b.ButtonDown(input.MouseLeft)
		b.Motion(10, 10)
	})
	c.Integrate(&f, &tuning)

	if c.Rotation != (math.Vec2{X: 0, Y: 45}) {
		t.Errorf("rotation changed to %v without the orbit button", c.Rotation)
	}
}

func TestScrollZoomsPerEvent(t *testing.T) {
	tuning := DefaultTuning()
	c := NewOrbitCamera()

	f := frame(0.1, func(b *input.Buffer) {
		b.Scroll(1)
		b.Scroll(1)
		b.Scroll(-0.5)
	})
	c.Integrate(&f, &tuning)

	// 10 - 50*0.1*(1 + 1 - 0.5)
	if !near(c.Distance, 2.5) {
		t.Errorf("distance = %v, want 2.5", c.Distance)
	}
}

func TestNoClamping(t *testing.T) {
	tuning := DefaultTuning()
	c := NewOrbitCamera()

	f := frame(1, func(b *input.Buffer) {
		b.ButtonDown(input.MouseMiddle)
		b.Motion(0, 5)
		b.Scroll(1)
	})
	c.Integrate(&f, &tuning)

	if !near(c.Rotation.Y, 245) {
		t.Errorf("pitch = %v, want 245 (unclamped)", c.Rotation.Y)
	}
	if !near(c.Distance, -40) {
		t.Errorf("distance = %v, want -40 (unclamped)", c.Distance)
	}
}

func TestControlledWithoutTuningIgnoresInput(t *testing.T) {
	c := &Controlled{OrbitCamera: NewOrbitCamera()}
	f := frame(1, func(b *input.Buffer) {
		b.KeyDown(input.KeyW)
		b.Scroll(1)
	})
	c.Update(&f)

	if c.Target != (math.Vec3{}) || c.Distance != 10 {
		t.Errorf("untuned camera moved: target %v distance %v", c.Target, c.Distance)
	}

	tuning := DefaultTuning()
	c.Tuning = &tuning
	c.Update(&f)
	if c.Target == (math.Vec3{}) {
		t.Error("tuned camera did not move")
	}
}
