// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build js

package input

// jsKeys is the static mapping from KeyboardEvent.code strings to the
// semantic key set. Codes absent here produce no event.
var jsKeys = map[string]Key{
	"Digit0": Key0, "Digit1": Key1, "Digit2": Key2, "Digit3": Key3,
	"Digit4": Key4, "Digit5": Key5, "Digit6": Key6, "Digit7": Key7,
	"Digit8": Key8, "Digit9": Key9,

	"KeyA": KeyA, "KeyB": KeyB, "KeyC": KeyC, "KeyD": KeyD,
	"KeyE": KeyE, "KeyF": KeyF, "KeyG": KeyG, "KeyH": KeyH,
	"KeyI": KeyI, "KeyJ": KeyJ, "KeyK": KeyK, "KeyL": KeyL,
	"KeyM": KeyM, "KeyN": KeyN, "KeyO": KeyO, "KeyP": KeyP,
	"KeyQ": KeyQ, "KeyR": KeyR, "KeyS": KeyS, "KeyT": KeyT,
	"KeyU": KeyU, "KeyV": KeyV, "KeyW": KeyW, "KeyX": KeyX,
	"KeyY": KeyY, "KeyZ": KeyZ,

	"Escape": KeyEscape,

	"F1": KeyF1, "F2": KeyF2, "F3": KeyF3, "F4": KeyF4,
	"F5": KeyF5, "F6": KeyF6, "F7": KeyF7, "F8": KeyF8,
	"F9": KeyF9, "F10": KeyF10, "F11": KeyF11, "F12": KeyF12,
	"F13": KeyF13, "F14": KeyF14, "F15": KeyF15, "F16": KeyF16,
	"F17": KeyF17, "F18": KeyF18, "F19": KeyF19, "F20": KeyF20,
	"F21": KeyF21, "F22": KeyF22, "F23": KeyF23, "F24": KeyF24,

	"Pause":      KeyPause,
	"Insert":     KeyInsert,
	"Home":       KeyHome,
	"Delete":     KeyDelete,
	"End":        KeyEnd,
	"PageDown":   KeyPageDown,
	"PageUp":     KeyPageUp,
	"ArrowLeft":  KeyLeft,
	"ArrowUp":    KeyUp,
	"ArrowRight": KeyRight,
	"ArrowDown":  KeyDown,
	"Backspace":  KeyBackspace,
	"Enter":      KeyEnter,
	"Space":      KeySpace,
	"Tab":        KeyTab,

	"NumLock": KeyNumLock,
	"Numpad0": KeyNumpad0, "Numpad1": KeyNumpad1,
	"Numpad2": KeyNumpad2, "Numpad3": KeyNumpad3,
	"Numpad4": KeyNumpad4, "Numpad5": KeyNumpad5,
	"Numpad6": KeyNumpad6, "Numpad7": KeyNumpad7,
	"Numpad8": KeyNumpad8, "Numpad9": KeyNumpad9,
	"NumpadAdd":      KeyNumpadAdd,
	"NumpadSubtract": KeyNumpadSubtract,
	"NumpadMultiply": KeyNumpadMultiply,
	"NumpadDivide":   KeyNumpadDivide,
	"NumpadDecimal":  KeyNumpadDecimal,
	"NumpadEnter":    KeyNumpadEnter,
	"NumpadEqual":    KeyNumpadEqual,
	"NumpadComma":    KeyNumpadComma,

	"AltLeft":      KeyLeftAlt,
	"ControlLeft":  KeyLeftControl,
	"ShiftLeft":    KeyLeftShift,
	"AltRight":     KeyRightAlt,
	"ControlRight": KeyRightControl,
	"ShiftRight":   KeyRightShift,
}

func lookupKey(ev RawKey) (Key, bool) {
	key, ok := jsKeys[ev.Name]
	return key, ok
}

// lookupButton maps MouseEvent.button values: 0 main, 1 auxiliary
// (middle), 2 secondary.
func lookupButton(code int) MouseButton {
	switch code {
	case 0:
		return ButtonPrimary
	case 2:
		return ButtonSecondary
	default:
		return ButtonTertiary
	}
}
