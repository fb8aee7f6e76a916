// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

// CursorControl is the slice of the platform window the translator
// needs for capture mode: hiding/confining the cursor and warping it
// back when capture ends.
type CursorControl interface {
	// SetCursorCaptured hides and confines the cursor when true,
	// releases and shows it when false.
	SetCursorCaptured(captured bool)

	// SetCursorPos warps the cursor to window coordinates. A no-op on
	// platforms that cannot warp (browsers).
	SetCursorPos(x, y float64)
}

// Translator converts raw platform events into semantic events and owns
// the pointer position and capture-mode state. It is used from the
// dispatch goroutine only.
type Translator struct {
	cursor  CursorControl
	capture bool
	pos     Vec2
	events  []Event
}

// NewTranslator creates a translator bound to the given cursor control.
func NewTranslator(cursor CursorControl) *Translator {
	return &Translator{cursor: cursor}
}

// Push translates one raw event. Unmapped key codes are dropped
// silently; everything else appends exactly one semantic event.
func (t *Translator) Push(raw RawEvent) {
	switch ev := raw.(type) {
	case RawCursorMoved:
		// Absolute motion is suppressed entirely during capture; the
		// recorded position must stay at the value captured at enable
		// time so it can be restored later.
		if t.capture {
			return
		}
		pos := Vec2{float32(ev.X), float32(ev.Y)}
		delta := pos.Sub(t.pos)
		t.pos = pos
		t.events = append(t.events, PointerMoved{Pos: pos, Delta: delta})

	case RawMouseMotion:
		if !t.capture {
			return
		}
		t.events = append(t.events, PointerDelta{Delta: Vec2{float32(ev.DX), float32(ev.DY)}})

	case RawMouseButton:
		t.events = append(t.events, PointerClicked{
			Pos:     t.pos,
			Button:  lookupButton(ev.Code),
			Pressed: ev.Pressed,
		})

	case RawScroll:
		t.events = append(t.events, Scroll{
			Pos:   t.pos,
			Delta: Vec2{float32(ev.DX), float32(ev.DY)},
		})

	case RawKey:
		if key, ok := lookupKey(ev); ok {
			t.events = append(t.events, KeyEvent{Key: key, Pressed: ev.Pressed})
		}

	case RawChar:
		t.events = append(t.events, CharEvent{Rune: ev.Rune})

	case RawCursorLeft:
		t.events = append(t.events, PointerGone{})

	case RawCloseRequested:
		t.events = append(t.events, CloseRequested{})
	}
}

// Events returns the events accumulated during the current frame. The
// slice is valid until Clear.
func (t *Translator) Events() []Event { return t.events }

// Clear empties the per-frame queue. The host calls it exactly once per
// frame, after the application callback has observed the events.
func (t *Translator) Clear() { t.events = t.events[:0] }

// Pos returns the last known absolute pointer position. Frozen while
// capture mode is active.
func (t *Translator) Pos() Vec2 { return t.pos }

// CaptureMode reports whether capture mode is active.
func (t *Translator) CaptureMode() bool { return t.capture }

// SetCaptureMode toggles camera-style pointer capture. Enabling hides
// and confines the system cursor; disabling releases it and warps it
// back to the position recorded at the moment capture was enabled.
func (t *Translator) SetCaptureMode(enable bool) {
	if enable == t.capture {
		return
	}
	if enable {
		t.cursor.SetCursorCaptured(true)
	} else {
		t.cursor.SetCursorCaptured(false)
		t.cursor.SetCursorPos(float64(t.pos.X), float64(t.pos.Y))
	}
	t.capture = enable
}
