// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gfx

import "errors"

// Package errors for the presentation surface manager.
var (
	// ErrAdapterNotFound is returned when no GPU adapter compatible with
	// the window surface exists. Fatal: startup stops, no retry.
	ErrAdapterNotFound = errors.New("gfx: no compatible GPU adapter")

	// ErrDeviceCreationFailed is returned when device or queue creation
	// is rejected by the adapter. Fatal: startup stops, no retry.
	ErrDeviceCreationFailed = errors.New("gfx: device creation failed")

	// ErrSurfaceAcquire is returned for surface-acquisition failures
	// that are neither "never configured" nor the transient lost or
	// outdated states. The frame driver treats it as fatal by default.
	ErrSurfaceAcquire = errors.New("gfx: surface acquisition failed")
)
