// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package input normalizes raw platform events into a closed semantic
// vocabulary and tracks pointer state.
//
// The platform layer feeds [RawEvent] values into a [Translator], which
// maintains the last known pointer position and the capture-mode flag
// and emits [Event] values into a per-frame queue. The host exposes the
// queue to the application's frame callback and clears it afterwards;
// events never persist across frames.
//
// # Capture mode
//
// While capture mode is active the translator reports relative motion
// deltas ([PointerDelta]) instead of absolute cursor positions, and the
// system cursor is hidden and confined. Disabling capture restores the
// cursor to the position recorded when capture was enabled, the
// camera-style control scheme.
//
// # Key mapping
//
// Raw key codes pass through a static, total-but-partial table into the
// semantic [Key] set. Codes absent from the table produce no event.
// Character input is translated independently of key events and may
// co-occur with a key event on the same physical keystroke.
package input
