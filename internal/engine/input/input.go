// Package input collects key, mouse button, motion and scroll events between
// frames and hands them to the simulation as a per-frame snapshot.
//
// The package has no windowing dependency; the window layer (SDL or imgui)
// translates its own events into Buffer calls.
package input

import "github.com/Faultbox/terraview/pkg/math"

// Key is a physical key the application cares about.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyLeftShift
	KeyR
	KeyLeftBracket
	KeyRightBracket
	KeyMinus
	KeyEquals
	KeyF1
	KeyF2
	KeyF12
	KeyEscape

	keyCount
)

var keyNames = [keyCount]string{
	KeyUnknown:      "unknown",
	KeyW:            "w",
	KeyA:            "a",
	KeyS:            "s",
	KeyD:            "d",
	KeyUp:           "up",
	KeyDown:         "down",
	KeyLeft:         "left",
	KeyRight:        "right",
	KeyLeftShift:    "lshift",
	KeyR:            "r",
	KeyLeftBracket:  "[",
	KeyRightBracket: "]",
	KeyMinus:        "-",
	KeyEquals:       "=",
	KeyF1:           "f1",
	KeyF2:           "f2",
	KeyF12:          "f12",
	KeyEscape:       "escape",
}

func (k Key) String() string {
	if k >= keyCount {
		return keyNames[KeyUnknown]
	}
	return keyNames[k]
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight

	buttonCount
)

// Frame is the input observed since the previous frame.
type Frame struct {
	held    [keyCount]bool
	pressed [keyCount]bool
	buttons [buttonCount]bool

	// Motion holds relative mouse movements in arrival order.
	Motion []math.Vec2
	// Scroll holds vertical wheel deltas in arrival order.
	Scroll []float32
	// DT is the frame's elapsed time in seconds.
	DT float32
}

// Held reports whether any of keys is currently held down.
func (f *Frame) Held(keys ...Key) bool {
	for _, k := range keys {
		if k < keyCount && f.held[k] {
			return true
		}
	}
	return false
}

// Pressed reports whether key went down since the previous frame.
func (f *Frame) Pressed(key Key) bool {
	return key < keyCount && f.pressed[key]
}

// ButtonHeld reports whether b is currently held down.
func (f *Frame) ButtonHeld(b MouseButton) bool {
	return b < buttonCount && f.buttons[b]
}

// Buffer accumulates events until the next Drain.
type Buffer struct {
	held    [keyCount]bool
	pressed [keyCount]bool
	buttons [buttonCount]bool
	motion  []math.Vec2
	scroll  []float32
}

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// KeyDown records a key press. Repeated presses of a held key are ignored.
func (b *Buffer) KeyDown(k Key) {
	if k == KeyUnknown || k >= keyCount {
		return
	}
	if !b.held[k] {
		b.pressed[k] = true
	}
	b.held[k] = true
}

// KeyUp records a key release.
func (b *Buffer) KeyUp(k Key) {
	if k >= keyCount {
		return
	}
	b.held[k] = false
}

// ButtonDown records a mouse button press.
func (b *Buffer) ButtonDown(btn MouseButton) {
	if btn < buttonCount {
		b.buttons[btn] = true
	}
}

// ButtonUp records a mouse button release.
func (b *Buffer) ButtonUp(btn MouseButton) {
	if btn < buttonCount {
		b.buttons[btn] = false
	}
}

// Motion queues a relative mouse movement.
func (b *Buffer) Motion(dx, dy float32) {
	b.motion = append(b.motion, math.Vec2{X: dx, Y: dy})
}

// Scroll queues a vertical wheel delta.
func (b *Buffer) Scroll(dy float32) {
	b.scroll = append(b.scroll, dy)
}

// Release drops all held keys and buttons, e.g. when the window loses focus.
func (b *Buffer) Release() {
	b.held = [keyCount]bool{}
	b.buttons = [buttonCount]bool{}
}

// Drain returns the snapshot for a frame of length dt and clears the event
// queues. It must be called every frame so the queues stay bounded. The
// returned slices are owned by the caller.
func (b *Buffer) Drain(dt float32) Frame {
	f := Frame{
		held:    b.held,
		pressed: b.pressed,
		buttons: b.buttons,
		Motion:  b.motion,
		Scroll:  b.scroll,
		DT:      dt,
	}
	b.pressed = [keyCount]bool{}
	b.motion = nil
	b.scroll = nil
	return f
}

// Pending returns the number of queued motion and scroll events.
func (b *Buffer) Pending() int {
	return len(b.motion) + len(b.scroll)
}
