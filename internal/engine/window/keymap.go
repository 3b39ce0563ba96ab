package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/terraview/internal/engine/input"
)

// Scancodes are layout independent, so WASD stays in place on AZERTY.
var scancodes = map[sdl.Scancode]input.Key{
	sdl.SCANCODE_W:            input.KeyW,
	sdl.SCANCODE_A:            input.KeyA,
	sdl.SCANCODE_S:            input.KeyS,
	sdl.SCANCODE_D:            input.KeyD,
	sdl.SCANCODE_UP:           input.KeyUp,
	sdl.SCANCODE_DOWN:         input.KeyDown,
	sdl.SCANCODE_LEFT:         input.KeyLeft,
	sdl.SCANCODE_RIGHT:        input.KeyRight,
	sdl.SCANCODE_LSHIFT:       input.KeyLeftShift,
	sdl.SCANCODE_R:            input.KeyR,
	sdl.SCANCODE_LEFTBRACKET:  input.KeyLeftBracket,
	sdl.SCANCODE_RIGHTBRACKET: input.KeyRightBracket,
	sdl.SCANCODE_MINUS:        input.KeyMinus,
	sdl.SCANCODE_EQUALS:       input.KeyEquals,
	sdl.SCANCODE_F1:           input.KeyF1,
	sdl.SCANCODE_F2:           input.KeyF2,
	sdl.SCANCODE_F12:          input.KeyF12,
	sdl.SCANCODE_ESCAPE:       input.KeyEscape,
}

// KeyFromScancode maps an SDL scancode to an input key, or KeyUnknown.
func KeyFromScancode(sc sdl.Scancode) input.Key {
	return scancodes[sc]
}

func buttonFromSDL(b uint8) (input.MouseButton, bool) {
	switch b {
	case sdl.BUTTON_LEFT:
		return input.MouseLeft, true
	case sdl.BUTTON_MIDDLE:
		return input.MouseMiddle, true
	case sdl.BUTTON_RIGHT:
		return input.MouseRight, true
	}
	return 0, false
}
