// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

// RawEvent is a platform-level event prior to normalization. The
// platform layer produces these; the translator consumes them.
type RawEvent interface {
	isRaw()
}

// RawCursorMoved is absolute cursor motion in window coordinates.
type RawCursorMoved struct {
	X, Y float64
}

// RawMouseMotion is relative device motion, reported by the platform
// while the cursor is captured.
type RawMouseMotion struct {
	DX, DY float64
}

// RawMouseButton is a platform button transition. Code is the platform
// button index.
type RawMouseButton struct {
	Code    int
	Pressed bool
}

// RawScroll is wheel motion in lines; positive DY scrolls away from the
// user.
type RawScroll struct {
	DX, DY float64
}

// RawKey is a physical key transition. Native platforms fill Code with
// the GLFW key value; js fills Name with the KeyboardEvent code string.
type RawKey struct {
	Code    int
	Name    string
	Pressed bool
}

// RawChar is a unicode codepoint of text input.
type RawChar struct {
	Rune rune
}

// RawCursorLeft reports the cursor leaving the window.
type RawCursorLeft struct{}

// RawCloseRequested reports a platform close request.
type RawCloseRequested struct{}

func (RawCursorMoved) isRaw()    {}
func (RawMouseMotion) isRaw()    {}
func (RawMouseButton) isRaw()    {}
func (RawScroll) isRaw()         {}
func (RawKey) isRaw()            {}
func (RawChar) isRaw()           {}
func (RawCursorLeft) isRaw()     {}
func (RawCloseRequested) isRaw() {}
