// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

// Vec2 is a 2D position or delta in window pixel coordinates.
type Vec2 struct {
	X, Y float32
}

// Sub returns a - b.
func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }

// MouseButton identifies a semantic pointer button.
type MouseButton uint8

const (
	// ButtonPrimary is the primary (usually left) button.
	ButtonPrimary MouseButton = iota
	// ButtonSecondary is the secondary (usually right) button.
	ButtonSecondary
	// ButtonTertiary is the middle button; unknown buttons collapse here.
	ButtonTertiary
)

// Event is a normalized, platform-independent input event. The set of
// implementations is closed: PointerMoved, PointerDelta, PointerClicked,
// PointerGone, Scroll, KeyEvent, CharEvent and CloseRequested.
type Event interface {
	isEvent()
}

// PointerMoved reports absolute pointer motion. Suppressed entirely
// while capture mode is active.
type PointerMoved struct {
	Pos   Vec2
	Delta Vec2
}

// PointerDelta reports relative device motion. Emitted only while
// capture mode is active.
type PointerDelta struct {
	Delta Vec2
}

// PointerClicked reports a button transition at the last known pointer
// position.
type PointerClicked struct {
	Pos     Vec2
	Button  MouseButton
	Pressed bool
}

// PointerGone reports that the pointer left the window.
type PointerGone struct{}

// Scroll reports wheel motion in lines at the last known pointer
// position.
type Scroll struct {
	Pos   Vec2
	Delta Vec2
}

// KeyEvent reports a semantic key transition. Exactly one event is
// emitted per physical press and per physical release of a mapped key.
type KeyEvent struct {
	Key     Key
	Pressed bool
}

// CharEvent reports character (text) input, independent of key events.
type CharEvent struct {
	Rune rune
}

// CloseRequested reports that the platform asked the window to close.
// The application decides whether to exit.
type CloseRequested struct{}

func (PointerMoved) isEvent()   {}
func (PointerDelta) isEvent()   {}
func (PointerClicked) isEvent() {}
func (PointerGone) isEvent()    {}
func (Scroll) isEvent()         {}
func (KeyEvent) isEvent()       {}
func (CharEvent) isEvent()      {}
func (CloseRequested) isEvent() {}
