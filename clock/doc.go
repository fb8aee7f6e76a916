// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package clock provides the monotonic frame clock used by the host.
//
// All platform timer differences are isolated behind one opaque
// [Instant] type and a single difference operation: native targets read
// the Go monotonic clock, js reads performance.now(). The host samples
// once per redraw, immediately before the frame callback runs, so dt
// measures wall time between consecutive sampling points.
package clock
