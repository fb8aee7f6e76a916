// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gfx

import (
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gogpu/app/internal/logutil"
)

// Option configures Graphics creation.
type Option func(*options)

type options struct {
	power         wgpu.PowerPreference
	forceFallback bool
	logger        *slog.Logger
}

func defaultOptions() options {
	return options{
		power:  wgpu.PowerPreferenceHighPerformance,
		logger: logutil.Nop(),
	}
}

// WithPowerPreference sets the adapter power preference. The default is
// high performance.
func WithPowerPreference(p wgpu.PowerPreference) Option {
	return func(o *options) { o.power = p }
}

// WithForceFallbackAdapter requests the fallback (software) adapter.
func WithForceFallbackAdapter(force bool) Option {
	return func(o *options) { o.forceFallback = force }
}

// WithLogger sets the logger. The default is silent.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = logutil.Or(l) }
}
