// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gfx

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestPickSurfaceFormatPrefersSRGB(t *testing.T) {
	formats := []wgpu.TextureFormat{
		wgpu.TextureFormatBGRA8Unorm,
		wgpu.TextureFormatBGRA8UnormSrgb,
		wgpu.TextureFormatRGBA8Unorm,
	}
	if got := pickSurfaceFormat(formats); got != wgpu.TextureFormatBGRA8UnormSrgb {
		t.Errorf("pickSurfaceFormat = %v, want BGRA8UnormSrgb", got)
	}
}

func TestPickSurfaceFormatFallsBackToFirst(t *testing.T) {
	formats := []wgpu.TextureFormat{
		wgpu.TextureFormatRGBA16Float,
		wgpu.TextureFormatBGRA8Unorm,
	}
	if got := pickSurfaceFormat(formats); got != wgpu.TextureFormatRGBA16Float {
		t.Errorf("pickSurfaceFormat = %v, want first supported format", got)
	}
}

func TestSRGBVariantPairs(t *testing.T) {
	tests := []struct {
		in, want wgpu.TextureFormat
	}{
		{wgpu.TextureFormatBGRA8Unorm, wgpu.TextureFormatBGRA8UnormSrgb},
		{wgpu.TextureFormatRGBA8Unorm, wgpu.TextureFormatRGBA8UnormSrgb},
		{wgpu.TextureFormatBGRA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb},
		{wgpu.TextureFormatRGBA16Float, wgpu.TextureFormatRGBA16Float},
	}
	for _, tt := range tests {
		if got := srgbVariant(tt.in); got != tt.want {
			t.Errorf("srgbVariant(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
