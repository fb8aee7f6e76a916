// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package app is an application host bridging a platform windowing layer
// and a WebGPU rendering backend.
//
// # Overview
//
// app owns the window lifecycle, asynchronous GPU device acquisition,
// presentation-surface configuration, input normalization, and per-frame
// scheduling. The embedding application supplies an [InitFunc] and an
// [App] implementation, and receives a ready-to-use [Context] carrying
// the window, the input state, and the presentation surface manager.
//
// # Quick Start
//
//	type game struct{}
//
//	func (g *game) Frame(ctx *app.Context, dt float64) bool {
//	    frame, err := ctx.Graphics.AcquireFrame()
//	    if err != nil {
//	        return true
//	    }
//	    if frame == nil {
//	        return false // surface not ready, skip this frame
//	    }
//	    defer frame.Release()
//	    // record and submit render passes against frame.View ...
//	    frame.Present()
//	    return false
//	}
//
//	func (g *game) Deinit(ctx *app.Context) any { return nil }
//
//	func main() {
//	    _, err := app.Run(func(payload any, ctx *app.Context) (app.App, error) {
//	        return &game{}, nil
//	    }, nil, app.WithTitle("demo"))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Lifecycle
//
// Run creates a hidden, resizable window and launches a single-shot GPU
// bootstrap task. On native targets the bootstrap resolves synchronously
// before the event loop starts; on js it is scheduled cooperatively and
// its result is delivered back into the loop. Either way the completion
// is observed strictly before any input or redraw event reaches
// application code, and a second completion is rejected as a programming
// error rather than silently replacing the running application.
//
// Every frame the host samples the monotonic clock, invokes Frame with
// the elapsed seconds, clears the input queue, and schedules the next
// redraw. Returning true from Frame begins shutdown: Deinit runs, may
// return a resumable payload, and Run returns it to the embedder.
//
// # Architecture
//
// The host is organized into:
//   - app: lifecycle controller and event dispatch
//   - gfx: presentation surface manager (adapter/device/queue/surface)
//   - input: raw-to-semantic event translation, pointer capture
//   - clock: monotonic frame clock
//   - platform: GLFW window on native targets, HTML canvas on js
//   - storage, loader: persistent cache and background file loading
package app

// Version is the current version of the host library.
const Version = "0.1.0"
