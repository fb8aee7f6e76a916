package app

import (
	"os"

	"github.com/cogentcore/webgpu/wgpu"
)

// Option configures the host during Run.
//
// Example:
//
//	app.Run(build, nil,
//	    app.WithTitle("asteroids"),
//	    app.WithSize(1280, 720))
type Option func(*config)

// config holds the resolved host configuration.
type config struct {
	title         string
	width, height int
	power         wgpu.PowerPreference
	forceFallback bool
	storagePath   string
	audio         AudioSink
}

// defaultConfig returns the default host configuration. The fallback
// adapter override honors WGPU_FORCE_FALLBACK_ADAPTER so a software
// adapter can be forced without code changes.
func defaultConfig() *config {
	return &config{
		title:         "gogpu",
		width:         800,
		height:        600,
		power:         wgpu.PowerPreferenceHighPerformance,
		forceFallback: os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1",
		storagePath:   "cache.db",
	}
}

func newConfig(opts ...Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *config) { c.title = title }
}

// WithSize sets the initial window size in pixels. Non-positive values
// are ignored and the default 800x600 is kept.
func WithSize(width, height int) Option {
	return func(c *config) {
		if width > 0 && height > 0 {
			c.width, c.height = width, height
		}
	}
}

// WithPowerPreference sets the adapter power preference used during GPU
// bootstrap. The default is high performance.
func WithPowerPreference(p wgpu.PowerPreference) Option {
	return func(c *config) { c.power = p }
}

// WithForceFallbackAdapter forces the fallback (software) adapter.
// Overrides the WGPU_FORCE_FALLBACK_ADAPTER environment variable.
func WithForceFallbackAdapter(force bool) Option {
	return func(c *config) { c.forceFallback = force }
}

// WithStoragePath sets the location of the persistent key-value cache
// opened by Context.Storage. Ignored on js, where the cache lives in
// localStorage.
func WithStoragePath(path string) Option {
	return func(c *config) { c.storagePath = path }
}

// WithAudioSink attaches an opaque audio-output handle to the Context.
func WithAudioSink(s AudioSink) Option {
	return func(c *config) { c.audio = s }
}
