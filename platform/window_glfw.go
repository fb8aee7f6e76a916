// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !js

package platform

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/app/input"
	"github.com/gogpu/app/internal/logutil"
)

func init() {
	// GLFW requires window and event calls on the main OS thread.
	runtime.LockOSThread()
}

type glfwWindow struct {
	win *glfw.Window
	log *slog.Logger

	events  func(input.RawEvent)
	resized func(width, height int)

	captured bool
	// last cursor position seen while captured, for delta derivation.
	lastX, lastY float64
	lastValid    bool
}

func create(cfg Config, events func(input.RawEvent), resized func(width, height int)) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("platform: glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("platform: create window: %w", err)
	}

	w := &glfwWindow{
		win:     win,
		log:     logutil.Or(cfg.Logger),
		events:  events,
		resized: resized,
	}
	w.install()
	w.log.Info("platform: window created",
		"title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	return w, nil
}

func (w *glfwWindow) install() {
	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if w.captured {
			if w.lastValid {
				w.events(input.RawMouseMotion{DX: x - w.lastX, DY: y - w.lastY})
			}
			w.lastX, w.lastY = x, y
			w.lastValid = true
			return
		}
		w.events(input.RawCursorMoved{X: x, Y: y})
	})
	w.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		w.events(input.RawMouseButton{Code: int(button), Pressed: action == glfw.Press})
	})
	w.win.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		w.events(input.RawScroll{DX: dx, DY: dy})
	})
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		w.events(input.RawKey{Code: int(key), Pressed: action == glfw.Press})
	})
	w.win.SetCharCallback(func(_ *glfw.Window, r rune) {
		w.events(input.RawChar{Rune: r})
	})
	w.win.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if !entered {
			w.events(input.RawCursorLeft{})
		}
	})
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.resized(width, height)
	})
	// The close button only raises an event; the application decides
	// whether the loop actually ends.
	w.win.SetCloseCallback(func(win *glfw.Window) {
		win.SetShouldClose(false)
		w.events(input.RawCloseRequested{})
	})
}

func (w *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.win)
}

func (w *glfwWindow) Size() (int, int) {
	return w.win.GetFramebufferSize()
}

func (w *glfwWindow) Show() { w.win.Show() }

func (w *glfwWindow) SetTitle(title string) { w.win.SetTitle(title) }

func (w *glfwWindow) RequestClose() { w.win.SetShouldClose(true) }

func (w *glfwWindow) ShouldClose() bool { return w.win.ShouldClose() }

func (w *glfwWindow) Run(tick func() bool) {
	for !w.win.ShouldClose() {
		glfw.PollEvents()
		if !tick() {
			break
		}
	}
}

func (w *glfwWindow) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}

func (w *glfwWindow) SetCursorCaptured(captured bool) {
	if captured == w.captured {
		return
	}
	w.captured = captured
	w.lastValid = false
	if captured {
		w.win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		if glfw.RawMouseMotionSupported() {
			w.win.SetInputMode(glfw.RawMouseMotion, glfw.True)
		}
		w.log.Debug("platform: cursor captured")
		return
	}
	if glfw.RawMouseMotionSupported() {
		w.win.SetInputMode(glfw.RawMouseMotion, glfw.False)
	}
	w.win.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	w.log.Debug("platform: cursor released")
}

func (w *glfwWindow) SetCursorPos(x, y float64) {
	w.win.SetCursorPos(x, y)
}
