package input

import (
	"testing"

	"github.com/Faultbox/terraview/pkg/math"
)

func TestDrainClearsQueues(t *testing.T) {
	b := NewBuffer()
	b.Motion(1, 2)
	b.Motion(3, 4)
	b.Scroll(1)

	f := b.Drain(0.016)
	if len(f.Motion) != 2 || len(f.Scroll) != 1 {
		t.Fatalf("frame has %d motion, %d scroll events, want 2, 1", len(f.Motion), len(f.Scroll))
	}
	if f.Motion[0] != (math.Vec2{X: 1, Y: 2}) || f.Motion[1] != (math.Vec2{X: 3, Y: 4}) {
		t.Errorf("motion order = %v", f.Motion)
	}
	if f.DT != 0.016 {
		t.Errorf("DT = %v, want 0.016", f.DT)
	}
	if b.Pending() != 0 {
		t.Errorf("Pending() = %d after Drain, want 0", b.Pending())
	}

	next := b.Drain(0.016)
	if len(next.Motion) != 0 || len(next.Scroll) != 0 {
		t.Error("second Drain returned stale events")
	}
}

func TestDrainDoesNotAlias(t *testing.T) {
	b := NewBuffer()
	b.Motion(1, 1)
	f := b.Drain(0)

	b.Motion(9, 9)
	if f.Motion[0] != (math.Vec2{X: 1, Y: 1}) {
		t.Errorf("drained frame changed after new events: %v", f.Motion)
	}
}

func TestHeldAndPressed(t *testing.T) {
	b := NewBuffer()
	b.KeyDown(KeyW)
	b.KeyDown(KeyW) // key repeat

	f := b.Drain(0)
	if !f.Held(KeyW) || !f.Pressed(KeyW) {
		t.Fatal("W should be held and pressed on the first frame")
	}
	if !f.Held(KeyUp, KeyW) {
		t.Error("Held should match any of the given keys")
	}
	if f.Held(KeyS) {
		t.Error("S is not held")
	}

	f = b.Drain(0)
	if !f.Held(KeyW) {
		t.Error("W should stay held across frames")
	}
	if f.Pressed(KeyW) {
		t.Error("Pressed should fire only on the frame the key went down")
	}

	b.KeyUp(KeyW)
	f = b.Drain(0)
	if f.Held(KeyW) {
		t.Error("W released but still held")
	}
}

func TestTapWithinOneFrame(t *testing.T) {
	b := NewBuffer()
	b.KeyDown(KeyR)
	b.KeyUp(KeyR)

	f := b.Drain(0)
	if !f.Pressed(KeyR) {
		t.Error("a tap inside one frame should still register as pressed")
	}
	if f.Held(KeyR) {
		t.Error("a released key is not held")
	}
}

func TestButtons(t *testing.T) {
	b := NewBuffer()
	b.ButtonDown(MouseMiddle)
	if f := b.Drain(0); !f.ButtonHeld(MouseMiddle) || f.ButtonHeld(MouseLeft) {
		t.Error("only the middle button should be held")
	}

	b.ButtonUp(MouseMiddle)
	if f := b.Drain(0); f.ButtonHeld(MouseMiddle) {
		t.Error("middle button still held after release")
	}
}

func TestRelease(t *testing.T) {
	b := NewBuffer()
	b.KeyDown(KeyLeftShift)
	b.ButtonDown(MouseRight)
	b.Release()

	f := b.Drain(0)
	if f.Held(KeyLeftShift) || f.ButtonHeld(MouseRight) {
		t.Error("Release should drop held keys and buttons")
	}
}

func TestUnknownKeyIgnored(t *testing.T) {
	b := NewBuffer()
	b.KeyDown(KeyUnknown)
	b.KeyDown(Key(200))

	f := b.Drain(0)
	if f.Held(KeyUnknown) || f.Held(Key(200)) || f.Pressed(Key(200)) {
		t.Error("unknown keys should never be reported")
	}
	if Key(200).String() != "unknown" || KeyLeftShift.String() != "lshift" {
		t.Errorf("unexpected key names %q, %q", Key(200), KeyLeftShift)
	}
}
