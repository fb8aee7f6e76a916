// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gfx

import "github.com/cogentcore/webgpu/wgpu"

// pickSurfaceFormat selects the presentation format: the first
// sRGB-capable entry, falling back to the first supported format when
// none is sRGB. formats must be non-empty.
func pickSurfaceFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, f := range formats {
		if isSRGB(f) {
			return f
		}
	}
	return formats[0]
}

// isSRGB reports whether the format carries an sRGB transfer function.
func isSRGB(f wgpu.TextureFormat) bool {
	switch f {
	case wgpu.TextureFormatRGBA8UnormSrgb,
		wgpu.TextureFormatBGRA8UnormSrgb:
		return true
	}
	return false
}

// srgbVariant returns the sRGB-suffixed pairing of a linear format, or
// the format itself when no pairing exists. Render-target views use the
// paired format so blending happens in the right transfer space even on
// a linear surface.
func srgbVariant(f wgpu.TextureFormat) wgpu.TextureFormat {
	switch f {
	case wgpu.TextureFormatRGBA8Unorm:
		return wgpu.TextureFormatRGBA8UnormSrgb
	case wgpu.TextureFormatBGRA8Unorm:
		return wgpu.TextureFormatBGRA8UnormSrgb
	}
	return f
}
