// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build js

package platform

import (
	"fmt"
	"log/slog"
	"syscall/js"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gogpu/app/input"
	"github.com/gogpu/app/internal/logutil"
)

// jsWindow binds to the page canvas with id "canvas". The browser owns
// the real event loop; Run schedules ticks through requestAnimationFrame.
type jsWindow struct {
	canvas js.Value
	log    *slog.Logger

	events  func(input.RawEvent)
	resized func(width, height int)

	captured    bool
	shouldClose bool

	// retained so the callbacks survive until Destroy.
	funcs []js.Func
}

func create(cfg Config, events func(input.RawEvent), resized func(width, height int)) (Window, error) {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", "canvas")
	if !canvas.Truthy() {
		return nil, fmt.Errorf("platform: no canvas element with id %q", "canvas")
	}
	canvas.Set("width", cfg.Width)
	canvas.Set("height", cfg.Height)
	doc.Set("title", cfg.Title)

	w := &jsWindow{
		canvas:  canvas,
		log:     logutil.Or(cfg.Logger),
		events:  events,
		resized: resized,
	}
	w.install()
	w.log.Info("platform: canvas bound",
		"title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	return w, nil
}

func (w *jsWindow) listen(target js.Value, name string, fn func(e js.Value)) {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		fn(args[0])
		return nil
	})
	w.funcs = append(w.funcs, f)
	target.Call("addEventListener", name, f)
}

func (w *jsWindow) install() {
	doc := js.Global().Get("document")

	w.listen(w.canvas, "mousemove", func(e js.Value) {
		if w.pointerLocked() {
			w.events(input.RawMouseMotion{
				DX: e.Get("movementX").Float(),
				DY: e.Get("movementY").Float(),
			})
			return
		}
		w.events(input.RawCursorMoved{
			X: e.Get("offsetX").Float(),
			Y: e.Get("offsetY").Float(),
		})
	})
	w.listen(w.canvas, "mousedown", func(e js.Value) {
		w.events(input.RawMouseButton{Code: e.Get("button").Int(), Pressed: true})
	})
	w.listen(w.canvas, "mouseup", func(e js.Value) {
		w.events(input.RawMouseButton{Code: e.Get("button").Int(), Pressed: false})
	})
	w.listen(w.canvas, "mouseleave", func(e js.Value) {
		w.events(input.RawCursorLeft{})
	})
	w.listen(w.canvas, "wheel", func(e js.Value) {
		e.Call("preventDefault")
		// Browsers scroll down-positive; flip to match wheel lines.
		w.events(input.RawScroll{
			DX: -e.Get("deltaX").Float() / 100,
			DY: -e.Get("deltaY").Float() / 100,
		})
	})
	w.listen(doc, "keydown", func(e js.Value) {
		if e.Get("repeat").Bool() {
			return
		}
		w.events(input.RawKey{Name: e.Get("code").String(), Pressed: true})
		key := e.Get("key").String()
		if kr := []rune(key); len(kr) == 1 {
			w.events(input.RawChar{Rune: kr[0]})
		}
	})
	w.listen(doc, "keyup", func(e js.Value) {
		w.events(input.RawKey{Name: e.Get("code").String(), Pressed: false})
	})
}

func (w *jsWindow) pointerLocked() bool {
	return js.Global().Get("document").Get("pointerLockElement").Equal(w.canvas)
}

// SurfaceDescriptor is empty on js: the browser binding picks up the
// canvas directly.
func (w *jsWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return &wgpu.SurfaceDescriptor{}
}

func (w *jsWindow) Size() (int, int) {
	return w.canvas.Get("width").Int(), w.canvas.Get("height").Int()
}

// Show is a no-op: the canvas is already part of the page.
func (w *jsWindow) Show() {}

func (w *jsWindow) SetTitle(title string) {
	js.Global().Get("document").Set("title", title)
}

func (w *jsWindow) RequestClose() { w.shouldClose = true }

func (w *jsWindow) ShouldClose() bool { return w.shouldClose }

func (w *jsWindow) Run(tick func() bool) {
	done := make(chan struct{})
	var frame js.Func
	frame = js.FuncOf(func(_ js.Value, _ []js.Value) any {
		if w.shouldClose || !tick() {
			close(done)
			return nil
		}
		js.Global().Call("requestAnimationFrame", frame)
		return nil
	})
	w.funcs = append(w.funcs, frame)
	js.Global().Call("requestAnimationFrame", frame)
	<-done
}

func (w *jsWindow) Destroy() {
	for _, f := range w.funcs {
		f.Release()
	}
	w.funcs = nil
}

func (w *jsWindow) SetCursorCaptured(captured bool) {
	if captured == w.captured {
		return
	}
	w.captured = captured
	if captured {
		w.canvas.Call("requestPointerLock")
		return
	}
	js.Global().Get("document").Call("exitPointerLock")
}

// SetCursorPos is unsupported in browsers; the pointer lock exit
// restores the cursor where the browser left it.
func (w *jsWindow) SetCursorPos(x, y float64) {}
