// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !js

package input

import "github.com/go-gl/glfw/v3.3/glfw"

// glfwKeys is the static mapping from GLFW key codes to the semantic
// key set. Total over the semantic set, partial over GLFW: codes absent
// here produce no event.
var glfwKeys = map[glfw.Key]Key{
	glfw.Key0: Key0, glfw.Key1: Key1, glfw.Key2: Key2, glfw.Key3: Key3,
	glfw.Key4: Key4, glfw.Key5: Key5, glfw.Key6: Key6, glfw.Key7: Key7,
	glfw.Key8: Key8, glfw.Key9: Key9,

	glfw.KeyA: KeyA, glfw.KeyB: KeyB, glfw.KeyC: KeyC, glfw.KeyD: KeyD,
	glfw.KeyE: KeyE, glfw.KeyF: KeyF, glfw.KeyG: KeyG, glfw.KeyH: KeyH,
	glfw.KeyI: KeyI, glfw.KeyJ: KeyJ, glfw.KeyK: KeyK, glfw.KeyL: KeyL,
	glfw.KeyM: KeyM, glfw.KeyN: KeyN, glfw.KeyO: KeyO, glfw.KeyP: KeyP,
	glfw.KeyQ: KeyQ, glfw.KeyR: KeyR, glfw.KeyS: KeyS, glfw.KeyT: KeyT,
	glfw.KeyU: KeyU, glfw.KeyV: KeyV, glfw.KeyW: KeyW, glfw.KeyX: KeyX,
	glfw.KeyY: KeyY, glfw.KeyZ: KeyZ,

	glfw.KeyEscape: KeyEscape,

	glfw.KeyF1: KeyF1, glfw.KeyF2: KeyF2, glfw.KeyF3: KeyF3,
	glfw.KeyF4: KeyF4, glfw.KeyF5: KeyF5, glfw.KeyF6: KeyF6,
	glfw.KeyF7: KeyF7, glfw.KeyF8: KeyF8, glfw.KeyF9: KeyF9,
	glfw.KeyF10: KeyF10, glfw.KeyF11: KeyF11, glfw.KeyF12: KeyF12,
	glfw.KeyF13: KeyF13, glfw.KeyF14: KeyF14, glfw.KeyF15: KeyF15,
	glfw.KeyF16: KeyF16, glfw.KeyF17: KeyF17, glfw.KeyF18: KeyF18,
	glfw.KeyF19: KeyF19, glfw.KeyF20: KeyF20, glfw.KeyF21: KeyF21,
	glfw.KeyF22: KeyF22, glfw.KeyF23: KeyF23, glfw.KeyF24: KeyF24,

	glfw.KeyPause:     KeyPause,
	glfw.KeyInsert:    KeyInsert,
	glfw.KeyHome:      KeyHome,
	glfw.KeyDelete:    KeyDelete,
	glfw.KeyEnd:       KeyEnd,
	glfw.KeyPageDown:  KeyPageDown,
	glfw.KeyPageUp:    KeyPageUp,
	glfw.KeyLeft:      KeyLeft,
	glfw.KeyUp:        KeyUp,
	glfw.KeyRight:     KeyRight,
	glfw.KeyDown:      KeyDown,
	glfw.KeyBackspace: KeyBackspace,
	glfw.KeyEnter:     KeyEnter,
	glfw.KeySpace:     KeySpace,
	glfw.KeyTab:       KeyTab,

	glfw.KeyNumLock: KeyNumLock,
	glfw.KeyKP0:     KeyNumpad0, glfw.KeyKP1: KeyNumpad1,
	glfw.KeyKP2: KeyNumpad2, glfw.KeyKP3: KeyNumpad3,
	glfw.KeyKP4: KeyNumpad4, glfw.KeyKP5: KeyNumpad5,
	glfw.KeyKP6: KeyNumpad6, glfw.KeyKP7: KeyNumpad7,
	glfw.KeyKP8: KeyNumpad8, glfw.KeyKP9: KeyNumpad9,
	glfw.KeyKPAdd:      KeyNumpadAdd,
	glfw.KeyKPSubtract: KeyNumpadSubtract,
	glfw.KeyKPMultiply: KeyNumpadMultiply,
	glfw.KeyKPDivide:   KeyNumpadDivide,
	glfw.KeyKPDecimal:  KeyNumpadDecimal,
	glfw.KeyKPEnter:    KeyNumpadEnter,
	glfw.KeyKPEqual:    KeyNumpadEqual,

	glfw.KeyLeftAlt:      KeyLeftAlt,
	glfw.KeyLeftControl:  KeyLeftControl,
	glfw.KeyLeftShift:    KeyLeftShift,
	glfw.KeyRightAlt:     KeyRightAlt,
	glfw.KeyRightControl: KeyRightControl,
	glfw.KeyRightShift:   KeyRightShift,
}

func lookupKey(ev RawKey) (Key, bool) {
	key, ok := glfwKeys[glfw.Key(ev.Code)]
	return key, ok
}

// lookupButton maps GLFW button indices: 0 left, 1 right, 2 middle.
// Everything else collapses to tertiary.
func lookupButton(code int) MouseButton {
	switch code {
	case int(glfw.MouseButtonLeft):
		return ButtonPrimary
	case int(glfw.MouseButtonRight):
		return ButtonSecondary
	default:
		return ButtonTertiary
	}
}
