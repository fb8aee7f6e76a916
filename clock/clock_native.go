// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !js

package clock

import "time"

// Instant is an opaque monotonic timestamp.
type Instant struct {
	t time.Time
}

// Now samples the monotonic clock.
func Now() Instant { return Instant{t: time.Now()} }

// Seconds returns the elapsed time from a to b in seconds. The result
// uses the monotonic reading, so wall-clock adjustments never skew dt.
func Seconds(a, b Instant) float64 { return b.t.Sub(a.t).Seconds() }
