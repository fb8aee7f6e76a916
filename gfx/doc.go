// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gfx is the presentation surface manager: it owns the WebGPU
// instance, adapter, device, queue and window surface, configures the
// drawable target, and acquires per-frame render targets.
//
// Failure classification is the heart of the package. Three situations
// are kept apart so the frame driver can react uniformly:
//
//   - never configured: AcquireFrame returns (nil, nil), skip the frame
//   - transiently unavailable (surface lost or outdated): the last known
//     configuration is silently re-applied and AcquireFrame returns
//     (nil, nil), skip the frame
//   - fatally broken: AcquireFrame returns an error
//
// This keeps expected surface churn (minimize/restore, display
// reconfiguration) from ever surfacing as an application error.
//
// Graphics also exposes a [gpucontext.DeviceProvider] through
// ContextProvider so UI toolkits built on gpucontext can share the
// device and queue instead of creating their own.
package gfx
