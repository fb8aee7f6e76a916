// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build js

package clock

import "syscall/js"

var performance = js.Global().Get("performance")

// Instant is an opaque monotonic timestamp, milliseconds since the
// browser's time origin.
type Instant struct {
	ms float64
}

// Now samples the high-resolution browser timer.
func Now() Instant { return Instant{ms: performance.Call("now").Float()} }

// Seconds returns the elapsed time from a to b in seconds.
func Seconds(a, b Instant) float64 { return (b.ms - a.ms) / 1e3 }
