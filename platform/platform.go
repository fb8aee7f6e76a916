// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package platform owns the native window: creation, the event pump,
// and the presentation target handed to the GPU layer.
//
// Desktop builds use GLFW; js builds bind to an HTML canvas. Both
// report user activity as input.RawEvent values through the callback
// given to Create, on the goroutine that drives Run.
package platform

import (
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gogpu/app/input"
)

// Config describes the window to create.
type Config struct {
	Title  string
	Width  int
	Height int

	// Logger receives window lifecycle events. Nil means silent.
	Logger *slog.Logger
}

// Window is a native window plus its event pump.
//
// All methods must be called from the goroutine that called Create,
// which on desktop is locked to the main OS thread.
type Window interface {
	// SurfaceDescriptor returns the platform handle the GPU layer
	// needs to create a presentation surface for this window.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Size returns the drawable size in pixels.
	Size() (width, height int)

	// Show makes the window visible. Windows are created hidden so
	// the first frame can be prepared before anything appears.
	Show()

	// SetTitle replaces the window title.
	SetTitle(title string)

	// RequestClose asks the event loop to finish after the current
	// iteration.
	RequestClose()

	// ShouldClose reports whether the event loop is finishing.
	ShouldClose() bool

	// Run pumps events and invokes tick once per iteration until tick
	// returns false or a close is requested. It blocks until the loop
	// ends.
	Run(tick func() bool)

	// Destroy releases the window and platform resources.
	Destroy()

	// SetCursorCaptured hides the cursor and routes raw motion
	// deltas when captured, and restores the normal cursor when not.
	SetCursorCaptured(captured bool)

	// SetCursorPos warps the cursor to a window position.
	SetCursorPos(x, y float64)
}

// Create opens a hidden window and wires its event callbacks. events
// receives every raw input event; resized is called with the new
// drawable size whenever it changes.
func Create(cfg Config, events func(input.RawEvent), resized func(width, height int)) (Window, error) {
	return create(cfg, events, resized)
}
