// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gfx

import "github.com/cogentcore/webgpu/wgpu"

// Frame is one acquired render target. Record passes against View,
// then call Present to hand the frame to the compositor, or Release to
// drop it without presenting. Both settle the frame at most once, so a
// deferred Release after a successful Present is safe.
//
// The surface texture itself belongs to the surface; only the view is
// released here.
type Frame struct {
	surface presentSurface

	// View is the render-attachment view over the surface texture,
	// created with the paired sRGB view format when available.
	View *wgpu.TextureView
}

// Present schedules the frame for display and frees the view.
func (f *Frame) Present() {
	if f.surface == nil {
		return
	}
	f.surface.Present()
	f.settle()
}

// Release drops the frame without presenting it.
func (f *Frame) Release() {
	if f.surface == nil {
		return
	}
	f.settle()
}

func (f *Frame) settle() {
	f.surface = nil
	if f.View != nil {
		f.View.Release()
		f.View = nil
	}
}
