// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gfx

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// Graphics owns the GPU execution context bound to one window: the
// instance, adapter, device, queue and presentation surface.
//
// Structural mutation (surface reconfiguration) happens only through
// Graphics on the dispatch goroutine, never concurrently with frame
// submission. The device and queue themselves are safe to share for
// command recording and submission.
type Graphics struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	surface  presentSurface

	info       wgpu.AdapterInfo
	format     wgpu.TextureFormat
	viewFormat wgpu.TextureFormat

	// last applied size; hasSize false means unconfigured and frames
	// are skipped.
	width, height uint32
	hasSize       bool

	headless bool
	log      *slog.Logger
}

// New acquires the GPU execution context for the window described by
// sd: it creates the instance and surface, requests a high-performance
// adapter compatible with the surface, and creates the device and
// queue. The presentation format prefers an sRGB-capable option,
// falling back to the first supported format.
//
// Errors are fatal for startup: ErrAdapterNotFound when no compatible
// adapter exists, ErrDeviceCreationFailed when device or queue creation
// is rejected.
func New(sd *wgpu.SurfaceDescriptor, opts ...Option) (*Graphics, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	instance := wgpu.CreateInstance(nil)
	surface := instance.CreateSurface(sd)

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference:      o.power,
		ForceFallbackAdapter: o.forceFallback,
		CompatibleSurface:    surface,
	})
	if err != nil {
		surface.Release()
		instance.Release()
		return nil, fmt.Errorf("%w: %v", ErrAdapterNotFound, err)
	}

	info := adapter.GetInfo()
	o.logger.Info("gfx: adapter selected",
		"name", info.Name,
		"backend", info.BackendType,
		"type", info.AdapterType)

	caps := surface.GetCapabilities(adapter)
	if len(caps.Formats) == 0 {
		adapter.Release()
		surface.Release()
		instance.Release()
		return nil, fmt.Errorf("%w: surface reports no formats", ErrAdapterNotFound)
	}
	format := pickSurfaceFormat(caps.Formats)
	viewFormat := srgbVariant(format)

	device, err := adapter.RequestDevice(nil)
	if err != nil {
		adapter.Release()
		surface.Release()
		instance.Release()
		return nil, fmt.Errorf("%w: %v", ErrDeviceCreationFailed, err)
	}
	queue := device.GetQueue()

	return &Graphics{
		instance: instance,
		adapter:  adapter,
		device:   device,
		queue:    queue,
		surface: &wgpuSurface{
			surface: surface,
			adapter: adapter,
			device:  device,
			caps:    caps,
		},
		info:       info,
		format:     format,
		viewFormat: viewFormat,
		log:        o.logger,
	}, nil
}

// Configure applies a surface configuration for the given drawable
// size.
//
// A zero dimension drops the surface back to the unconfigured state
// (frames are skipped until a positive size arrives); a size equal to
// the last applied one is a no-op. The underlying surface is
// reconfigured at most once per size change.
func (g *Graphics) Configure(width, height uint32) {
	if g.headless {
		return
	}
	if width == 0 || height == 0 {
		g.hasSize = false
		return
	}
	if g.hasSize && width == g.width && height == g.height {
		return
	}
	g.width, g.height = width, height
	g.hasSize = true
	g.surface.Configure(g.surfaceConfig())
	g.log.Debug("gfx: surface configured", "width", width, "height", height)
}

func (g *Graphics) surfaceConfig() *SurfaceConfig {
	return &SurfaceConfig{
		Format:       g.format,
		ViewFormat:   g.viewFormat,
		Width:        g.width,
		Height:       g.height,
		PresentMode:  wgpu.PresentModeFifo,
		FrameLatency: 2,
	}
}

// AcquireFrame returns the next render target, or (nil, nil) when the
// frame should be skipped: either the surface was never successfully
// configured, or it is transiently unavailable (lost or outdated), in
// which case the last known configuration is silently re-applied. Any
// other acquisition failure is returned as an error.
func (g *Graphics) AcquireFrame() (*Frame, error) {
	if !g.hasSize {
		return nil, nil
	}
	tex, err := g.surface.Acquire()
	if err != nil {
		if isTransientSurfaceError(err) {
			g.log.Debug("gfx: transient surface failure, reconfiguring", "err", err)
			g.surface.Configure(g.surfaceConfig())
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrSurfaceAcquire, err)
	}

	view, err := tex.CreateView(&wgpu.TextureViewDescriptor{
		Format:          g.viewFormat,
		Dimension:       wgpu.TextureViewDimension2D,
		Aspect:          wgpu.TextureAspectAll,
		MipLevelCount:   1,
		ArrayLayerCount: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSurfaceAcquire, err)
	}
	return &Frame{surface: g.surface, View: view}, nil
}

// Backend returns the graphics API selected by the adapter.
func (g *Graphics) Backend() wgpu.BackendType { return g.info.BackendType }

// Format returns the surface texture format.
func (g *Graphics) Format() wgpu.TextureFormat { return g.format }

// ViewFormat returns the paired render-target view format.
func (g *Graphics) ViewFormat() wgpu.TextureFormat { return g.viewFormat }

// SurfaceSize returns the last applied drawable size. ok is false while
// the surface is unconfigured.
func (g *Graphics) SurfaceSize() (width, height uint32, ok bool) {
	return g.width, g.height, g.hasSize
}

// Device returns the logical GPU device for resource creation and
// command recording.
func (g *Graphics) Device() *wgpu.Device { return g.device }

// Queue returns the command-submission queue.
func (g *Graphics) Queue() *wgpu.Queue { return g.queue }

// Release frees the GPU execution context. The Graphics must not be
// used afterwards.
func (g *Graphics) Release() {
	if g.surface != nil {
		g.surface.Release()
		g.surface = nil
	}
	if g.queue != nil {
		g.queue.Release()
		g.queue = nil
	}
	if g.device != nil {
		g.device.Release()
		g.device = nil
	}
	if g.adapter != nil {
		g.adapter.Release()
		g.adapter = nil
	}
	if g.instance != nil {
		g.instance.Release()
		g.instance = nil
	}
}
