// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !js

package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// fakeCursor records capture and warp calls for verification.
type fakeCursor struct {
	captured     bool
	captureCalls int
	warpedTo     [2]float64
	warps        int
}

func (f *fakeCursor) SetCursorCaptured(captured bool) {
	f.captured = captured
	f.captureCalls++
}

func (f *fakeCursor) SetCursorPos(x, y float64) {
	f.warpedTo = [2]float64{x, y}
	f.warps++
}

func TestPointerMovedDelta(t *testing.T) {
	tr := NewTranslator(&fakeCursor{})

	tr.Push(RawCursorMoved{X: 100, Y: 50})
	tr.Push(RawCursorMoved{X: 130, Y: 40})

	events := tr.Events()
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	second, ok := events[1].(PointerMoved)
	if !ok {
		t.Fatalf("events[1] = %T, want PointerMoved", events[1])
	}
	if second.Pos != (Vec2{130, 40}) {
		t.Errorf("Pos = %v, want {130 40}", second.Pos)
	}
	if second.Delta != (Vec2{30, -10}) {
		t.Errorf("Delta = %v, want {30 -10}", second.Delta)
	}
	if tr.Pos() != (Vec2{130, 40}) {
		t.Errorf("Pos() = %v, want {130 40}", tr.Pos())
	}
}

func TestCaptureModeSuppressesAbsoluteMotion(t *testing.T) {
	tr := NewTranslator(&fakeCursor{})
	tr.Push(RawCursorMoved{X: 10, Y: 20})
	tr.Clear()

	tr.SetCaptureMode(true)
	tr.Push(RawCursorMoved{X: 500, Y: 500})
	tr.Push(RawMouseMotion{DX: 3, DY: -4})

	events := tr.Events()
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1 (absolute motion suppressed)", len(events))
	}
	delta, ok := events[0].(PointerDelta)
	if !ok {
		t.Fatalf("events[0] = %T, want PointerDelta", events[0])
	}
	if delta.Delta != (Vec2{3, -4}) {
		t.Errorf("Delta = %v, want {3 -4}", delta.Delta)
	}
	if tr.Pos() != (Vec2{10, 20}) {
		t.Errorf("Pos() = %v, want frozen at {10 20}", tr.Pos())
	}
}

func TestRelativeMotionDroppedOutsideCapture(t *testing.T) {
	tr := NewTranslator(&fakeCursor{})
	tr.Push(RawMouseMotion{DX: 1, DY: 1})
	if got := len(tr.Events()); got != 0 {
		t.Errorf("len(events) = %d, want 0", got)
	}
}

func TestCaptureRoundTripRestoresPosition(t *testing.T) {
	cursor := &fakeCursor{}
	tr := NewTranslator(cursor)
	tr.Push(RawCursorMoved{X: 42, Y: 17})

	tr.SetCaptureMode(true)
	if !cursor.captured {
		t.Error("cursor should be captured after enable")
	}
	tr.SetCaptureMode(false)

	if cursor.captured {
		t.Error("cursor should be released after disable")
	}
	if cursor.warps != 1 {
		t.Fatalf("warps = %d, want 1", cursor.warps)
	}
	if cursor.warpedTo != [2]float64{42, 17} {
		t.Errorf("warpedTo = %v, want [42 17]", cursor.warpedTo)
	}
	if tr.Pos() != (Vec2{42, 17}) {
		t.Errorf("Pos() = %v, want {42 17}", tr.Pos())
	}
}

func TestSetCaptureModeIdempotent(t *testing.T) {
	cursor := &fakeCursor{}
	tr := NewTranslator(cursor)

	tr.SetCaptureMode(true)
	tr.SetCaptureMode(true)
	if cursor.captureCalls != 1 {
		t.Errorf("captureCalls = %d, want 1", cursor.captureCalls)
	}
}

func TestMappedKeyEmitsOneEventPerTransition(t *testing.T) {
	tr := NewTranslator(&fakeCursor{})

	tr.Push(RawKey{Code: int(glfw.KeyW), Pressed: true})
	tr.Push(RawKey{Code: int(glfw.KeyW), Pressed: false})

	events := tr.Events()
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	press, ok := events[0].(KeyEvent)
	if !ok || press.Key != KeyW || !press.Pressed {
		t.Errorf("events[0] = %#v, want KeyEvent{KeyW pressed}", events[0])
	}
	release, ok := events[1].(KeyEvent)
	if !ok || release.Key != KeyW || release.Pressed {
		t.Errorf("events[1] = %#v, want KeyEvent{KeyW released}", events[1])
	}
}

func TestUnmappedKeyEmitsNothing(t *testing.T) {
	tr := NewTranslator(&fakeCursor{})

	// CapsLock is deliberately outside the semantic key set.
	tr.Push(RawKey{Code: int(glfw.KeyCapsLock), Pressed: true})
	tr.Push(RawKey{Code: int(glfw.KeyCapsLock), Pressed: false})

	if got := len(tr.Events()); got != 0 {
		t.Errorf("len(events) = %d, want 0 for unmapped key", got)
	}
}

func TestCharIndependentOfKey(t *testing.T) {
	tr := NewTranslator(&fakeCursor{})

	// A physical keystroke delivers both a key and a char raw event.
	tr.Push(RawKey{Code: int(glfw.KeyA), Pressed: true})
	tr.Push(RawChar{Rune: 'a'})

	events := tr.Events()
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	if _, ok := events[0].(KeyEvent); !ok {
		t.Errorf("events[0] = %T, want KeyEvent", events[0])
	}
	ch, ok := events[1].(CharEvent)
	if !ok || ch.Rune != 'a' {
		t.Errorf("events[1] = %#v, want CharEvent{'a'}", events[1])
	}
}

func TestClickUsesLastKnownPosition(t *testing.T) {
	tr := NewTranslator(&fakeCursor{})
	tr.Push(RawCursorMoved{X: 7, Y: 8})
	tr.Push(RawMouseButton{Code: int(glfw.MouseButtonRight), Pressed: true})

	events := tr.Events()
	click, ok := events[len(events)-1].(PointerClicked)
	if !ok {
		t.Fatalf("last event = %T, want PointerClicked", events[len(events)-1])
	}
	if click.Pos != (Vec2{7, 8}) {
		t.Errorf("Pos = %v, want {7 8}", click.Pos)
	}
	if click.Button != ButtonSecondary {
		t.Errorf("Button = %v, want ButtonSecondary", click.Button)
	}
	if !click.Pressed {
		t.Error("Pressed = false, want true")
	}
}

func TestQueueClearedBetweenFrames(t *testing.T) {
	tr := NewTranslator(&fakeCursor{})
	tr.Push(RawCursorMoved{X: 1, Y: 1})
	tr.Push(RawScroll{DX: 0, DY: 1})

	if got := len(tr.Events()); got != 2 {
		t.Fatalf("len(events) = %d, want 2 before clear", got)
	}
	tr.Clear()
	if got := len(tr.Events()); got != 0 {
		t.Errorf("len(events) = %d, want 0 after clear", got)
	}

	// The queue keeps working after a clear.
	tr.Push(RawCursorLeft{})
	events := tr.Events()
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if _, ok := events[0].(PointerGone); !ok {
		t.Errorf("events[0] = %T, want PointerGone", events[0])
	}
}

func TestCloseRequested(t *testing.T) {
	tr := NewTranslator(&fakeCursor{})
	tr.Push(RawCloseRequested{})

	events := tr.Events()
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if _, ok := events[0].(CloseRequested); !ok {
		t.Errorf("events[0] = %T, want CloseRequested", events[0])
	}
}
