package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/terraview/internal/engine/input"
)

var keymap = map[imgui.Key]input.Key{
	imgui.KeyW:            input.KeyW,
	imgui.KeyA:            input.KeyA,
	imgui.KeyS:            input.KeyS,
	imgui.KeyD:            input.KeyD,
	imgui.KeyUpArrow:      input.KeyUp,
	imgui.KeyDownArrow:    input.KeyDown,
	imgui.KeyLeftArrow:    input.KeyLeft,
	imgui.KeyRightArrow:   input.KeyRight,
	imgui.KeyLeftShift:    input.KeyLeftShift,
	imgui.KeyR:            input.KeyR,
	imgui.KeyLeftBracket:  input.KeyLeftBracket,
	imgui.KeyRightBracket: input.KeyRightBracket,
	imgui.KeyMinus:        input.KeyMinus,
	imgui.KeyEqual:        input.KeyEquals,
	imgui.KeyF1:           input.KeyF1,
	imgui.KeyF2:           input.KeyF2,
	imgui.KeyF12:          input.KeyF12,
	imgui.KeyEscape:       input.KeyEscape,
}

var buttons = [...]struct {
	imgui imgui.MouseButton
	input input.MouseButton
}{
	{imgui.MouseButtonLeft, input.MouseLeft},
	{imgui.MouseButtonMiddle, input.MouseMiddle},
	{imgui.MouseButtonRight, input.MouseRight},
}

// InputBridge feeds ImGui's input state into an input.Buffer. ImGui reports
// state rather than events, so motion is derived from successive mouse
// positions and each scroll reading becomes one event.
type InputBridge struct {
	lastMouse imgui.Vec2
	hasMouse  bool
	dragging  [len(buttons)]bool
}

// Feed records this frame's input. Mouse buttons and scroll are taken only
// while hovered is true, though a drag that began while hovered continues
// until release. Keys are taken only when keyboard is true.
func (br *InputBridge) Feed(buf *input.Buffer, hovered, keyboard bool) {
	for ik, k := range keymap {
		if keyboard && imgui.IsKeyDown(ik) {
			buf.KeyDown(k)
		} else {
			buf.KeyUp(k)
		}
	}

	for i, b := range buttons {
		down := imgui.IsMouseDown(b.imgui)
		br.dragging[i] = down && (hovered || br.dragging[i])
		if br.dragging[i] {
			buf.ButtonDown(b.input)
		} else {
			buf.ButtonUp(b.input)
		}
	}

	pos := imgui.MousePos()
	if br.hasMouse {
		if dx, dy := pos.X-br.lastMouse.X, pos.Y-br.lastMouse.Y; dx != 0 || dy != 0 {
			buf.Motion(dx, dy)
		}
	}
	br.lastMouse, br.hasMouse = pos, true

	if hovered {
		if w := imgui.CurrentIO().MouseWheel(); w != 0 {
			buf.Scroll(w)
		}
	}
}
