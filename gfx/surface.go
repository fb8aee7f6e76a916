// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gfx

import (
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

// SurfaceConfig is the configuration tuple currently bound to the
// presentation surface.
type SurfaceConfig struct {
	// Format is the surface texture format.
	Format wgpu.TextureFormat

	// ViewFormat is the paired linear/sRGB format used for
	// render-target views.
	ViewFormat wgpu.TextureFormat

	// Width and Height are the drawable size in pixels. Both are
	// strictly positive whenever a configuration is applied.
	Width, Height uint32

	// PresentMode is vsync-oriented (FIFO) to pace frames with the
	// display.
	PresentMode wgpu.PresentMode

	// FrameLatency bounds the frames in flight, limiting input lag
	// without starving the GPU. wgpu-native takes this through a C
	// extras chain the Go binding does not expose; FIFO presentation
	// provides the pacing and the bound is kept here for backends that
	// can honor it.
	FrameLatency uint32
}

// frameTexture is the acquired surface texture as seen by Graphics.
// The surface owns it; Graphics only derives the render-target view.
type frameTexture interface {
	CreateView(desc *wgpu.TextureViewDescriptor) (*wgpu.TextureView, error)
}

// presentSurface is the swapchain-facing half of the window surface.
// Graphics drives it; the real implementation wraps wgpu, tests use a
// counting fake.
type presentSurface interface {
	// Configure applies a surface configuration.
	Configure(cfg *SurfaceConfig)

	// Acquire returns the next drawable texture.
	Acquire() (frameTexture, error)

	// Present schedules the acquired texture for display.
	Present()

	// Release frees the surface.
	Release()
}

// wgpuSurface is the production presentSurface backed by a wgpu window
// surface.
type wgpuSurface struct {
	surface *wgpu.Surface
	adapter *wgpu.Adapter
	device  *wgpu.Device
	caps    wgpu.SurfaceCapabilities
}

func (s *wgpuSurface) Configure(cfg *SurfaceConfig) {
	conf := wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      cfg.Format,
		Width:       cfg.Width,
		Height:      cfg.Height,
		PresentMode: cfg.PresentMode,
		AlphaMode:   s.caps.AlphaModes[0],
	}
	if cfg.ViewFormat != cfg.Format {
		conf.ViewFormats = []wgpu.TextureFormat{cfg.ViewFormat}
	}
	s.surface.Configure(s.adapter, s.device, &conf)
}

func (s *wgpuSurface) Acquire() (frameTexture, error) {
	tex, err := s.surface.GetCurrentTexture()
	if err != nil {
		return nil, err
	}
	return tex, nil
}

func (s *wgpuSurface) Present() { s.surface.Present() }

func (s *wgpuSurface) Release() { s.surface.Release() }

// isTransientSurfaceError classifies acquisition failures that are
// expected OS/GPU surface churn: the surface was lost or its
// configuration is outdated. wgpu reports these in the error text.
func isTransientSurfaceError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "Surface is outdated") ||
		strings.Contains(msg, "Surface was lost")
}
