// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gfx

import (
	"errors"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gogpu/app/internal/logutil"
)

// fakeTexture satisfies frameTexture without a GPU.
type fakeTexture struct{}

func (t *fakeTexture) CreateView(_ *wgpu.TextureViewDescriptor) (*wgpu.TextureView, error) {
	return nil, nil
}

// fakeSurface records configurations and serves scripted acquire
// results.
type fakeSurface struct {
	configs    []SurfaceConfig
	acquireErr error
	presented  int
	released   bool
}

func (s *fakeSurface) Configure(cfg *SurfaceConfig) {
	s.configs = append(s.configs, *cfg)
}

func (s *fakeSurface) Acquire() (frameTexture, error) {
	if s.acquireErr != nil {
		err := s.acquireErr
		s.acquireErr = nil
		return nil, err
	}
	return &fakeTexture{}, nil
}

func (s *fakeSurface) Present() { s.presented++ }
func (s *fakeSurface) Release() { s.released = true }

func newTestGraphics(s presentSurface) *Graphics {
	return &Graphics{
		surface:    s,
		format:     wgpu.TextureFormatBGRA8Unorm,
		viewFormat: wgpu.TextureFormatBGRA8UnormSrgb,
		log:        logutil.Nop(),
	}
}

func TestConfigureAppliesOncePerSize(t *testing.T) {
	s := &fakeSurface{}
	g := newTestGraphics(s)

	g.Configure(800, 600)
	g.Configure(800, 600)
	g.Configure(800, 600)

	if len(s.configs) != 1 {
		t.Fatalf("configs = %d, want 1", len(s.configs))
	}
	cfg := s.configs[0]
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("config size = %dx%d, want 800x600", cfg.Width, cfg.Height)
	}
	if cfg.Format != wgpu.TextureFormatBGRA8Unorm {
		t.Errorf("config format = %v, want BGRA8Unorm", cfg.Format)
	}
	if cfg.ViewFormat != wgpu.TextureFormatBGRA8UnormSrgb {
		t.Errorf("config view format = %v, want BGRA8UnormSrgb", cfg.ViewFormat)
	}
	if cfg.PresentMode != wgpu.PresentModeFifo {
		t.Errorf("config present mode = %v, want Fifo", cfg.PresentMode)
	}
}

func TestConfigureZeroDimensionUnconfigures(t *testing.T) {
	s := &fakeSurface{}
	g := newTestGraphics(s)

	g.Configure(0, 0)
	if _, _, ok := g.SurfaceSize(); ok {
		t.Fatal("surface reported configured after zero-size configure")
	}
	if len(s.configs) != 0 {
		t.Fatalf("configs = %d, want 0", len(s.configs))
	}

	g.Configure(800, 600)
	g.Configure(0, 300)
	if _, _, ok := g.SurfaceSize(); ok {
		t.Fatal("surface reported configured after zero-width configure")
	}

	// Returning to the exact previous size must reconfigure: the
	// zero-size step invalidated the applied state.
	g.Configure(800, 600)
	if len(s.configs) != 2 {
		t.Fatalf("configs = %d, want 2", len(s.configs))
	}
}

func TestAcquireFrameSkipsWhenUnconfigured(t *testing.T) {
	s := &fakeSurface{}
	g := newTestGraphics(s)

	frame, err := g.AcquireFrame()
	if err != nil {
		t.Fatalf("AcquireFrame() error = %v", err)
	}
	if frame != nil {
		t.Fatal("AcquireFrame() returned a frame before configuration")
	}
}

func TestAcquireFrameTransientFailureReconfigures(t *testing.T) {
	s := &fakeSurface{}
	g := newTestGraphics(s)
	g.Configure(640, 480)

	s.acquireErr = errors.New("Surface is outdated")
	frame, err := g.AcquireFrame()
	if err != nil {
		t.Fatalf("AcquireFrame() error = %v, want nil for transient failure", err)
	}
	if frame != nil {
		t.Fatal("AcquireFrame() returned a frame on transient failure")
	}
	if len(s.configs) != 2 {
		t.Fatalf("configs = %d, want reconfigure after transient failure", len(s.configs))
	}

	// The next acquire succeeds without further reconfiguration.
	frame, err = g.AcquireFrame()
	if err != nil || frame == nil {
		t.Fatalf("AcquireFrame() after recovery = (%v, %v), want frame", frame, err)
	}
	if len(s.configs) != 2 {
		t.Fatalf("configs = %d after recovery, want 2", len(s.configs))
	}
}

func TestAcquireFrameFatalFailure(t *testing.T) {
	s := &fakeSurface{}
	g := newTestGraphics(s)
	g.Configure(640, 480)

	s.acquireErr = errors.New("device lost")
	_, err := g.AcquireFrame()
	if !errors.Is(err, ErrSurfaceAcquire) {
		t.Fatalf("AcquireFrame() error = %v, want ErrSurfaceAcquire", err)
	}
}

func TestFramePresentHandsOffToSurface(t *testing.T) {
	s := &fakeSurface{}
	g := newTestGraphics(s)
	g.Configure(320, 240)

	frame, err := g.AcquireFrame()
	if err != nil || frame == nil {
		t.Fatalf("AcquireFrame() = (%v, %v), want frame", frame, err)
	}
	frame.Present()
	if s.presented != 1 {
		t.Errorf("presented = %d, want 1", s.presented)
	}
}

func TestFrameSettlesAtMostOnce(t *testing.T) {
	s := &fakeSurface{}
	g := newTestGraphics(s)
	g.Configure(320, 240)

	// The deferred-Release-then-Present pattern must not double-free
	// or present twice.
	frame, err := g.AcquireFrame()
	if err != nil || frame == nil {
		t.Fatalf("AcquireFrame() = (%v, %v), want frame", frame, err)
	}
	frame.Present()
	frame.Release()
	frame.Present()
	if s.presented != 1 {
		t.Errorf("presented = %d, want 1 after repeated settle calls", s.presented)
	}

	// Release first means the frame can no longer present.
	frame, err = g.AcquireFrame()
	if err != nil || frame == nil {
		t.Fatalf("AcquireFrame() = (%v, %v), want frame", frame, err)
	}
	frame.Release()
	frame.Present()
	if s.presented != 1 {
		t.Errorf("presented = %d, want 1 after release-then-present", s.presented)
	}
}

func TestHeadlessSkipsEverything(t *testing.T) {
	g := NewHeadless()
	g.Configure(800, 600)
	if _, _, ok := g.SurfaceSize(); ok {
		t.Fatal("headless graphics reported a configured surface")
	}
	frame, err := g.AcquireFrame()
	if frame != nil || err != nil {
		t.Fatalf("AcquireFrame() = (%v, %v), want (nil, nil)", frame, err)
	}
	g.Release()
}

func TestIsTransientSurfaceError(t *testing.T) {
	tests := []struct {
		err  string
		want bool
	}{
		{"Surface is outdated", true},
		{"Surface was lost", true},
		{"Surface timed out", false},
		{"device lost", false},
	}
	for _, tt := range tests {
		if got := isTransientSurfaceError(errors.New(tt.err)); got != tt.want {
			t.Errorf("isTransientSurfaceError(%q) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
