// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gfx

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// deviceHandle adapts *wgpu.Device to gpucontext.Device.
type deviceHandle struct {
	d *wgpu.Device
}

func (h *deviceHandle) Poll(wait bool) { h.d.Poll(wait, nil) }

// Destroy is a no-op: device lifetime is owned by Graphics.Release.
func (h *deviceHandle) Destroy() {}

// ContextProvider exposes the GPU context as a gpucontext.DeviceProvider
// so renderer integrations written against that boundary can target the
// window surface directly.
func (g *Graphics) ContextProvider() gpucontext.DeviceProvider {
	return &contextProvider{g: g}
}

type contextProvider struct {
	g *Graphics
}

func (p *contextProvider) Device() gpucontext.Device   { return &deviceHandle{d: p.g.device} }
func (p *contextProvider) Queue() gpucontext.Queue     { return p.g.queue }
func (p *contextProvider) Adapter() gpucontext.Adapter { return p.g.adapter }

func (p *contextProvider) SurfaceFormat() gputypes.TextureFormat {
	if p.g.headless {
		return gputypes.TextureFormatUndefined
	}
	// The provider boundary has no sRGB-suffixed formats; report the
	// base channel layout of the surface.
	switch p.g.format {
	case wgpu.TextureFormatBGRA8Unorm, wgpu.TextureFormatBGRA8UnormSrgb:
		return gputypes.TextureFormatBGRA8Unorm
	default:
		return gputypes.TextureFormatRGBA8Unorm
	}
}

func (p *contextProvider) AdapterInfo() gpucontext.AdapterInfo {
	if p.g.headless {
		return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
	}
	return gpucontext.AdapterInfo{
		Name: p.g.info.Name,
		Type: adapterType(p.g.info.AdapterType),
	}
}

// adapterType maps the wgpu adapter classification onto the
// gpucontext vocabulary.
func adapterType(t wgpu.AdapterType) gpucontext.AdapterType {
	switch t {
	case wgpu.AdapterTypeDiscreteGPU:
		return gpucontext.AdapterTypeDiscrete
	case wgpu.AdapterTypeIntegratedGPU:
		return gpucontext.AdapterTypeIntegrated
	case wgpu.AdapterTypeCPU:
		return gpucontext.AdapterTypeSoftware
	default:
		return gpucontext.AdapterTypeUnknown
	}
}
