// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clock

import (
	"testing"
	"time"
)

func TestSecondsNonNegative(t *testing.T) {
	a := Now()
	b := Now()
	if got := Seconds(a, b); got < 0 {
		t.Errorf("Seconds(a, b) = %v, want >= 0", got)
	}
}

func TestSecondsMeasuresElapsed(t *testing.T) {
	a := Now()
	time.Sleep(20 * time.Millisecond)
	b := Now()

	got := Seconds(a, b)
	if got < 0.015 {
		t.Errorf("Seconds after 20ms sleep = %v, want >= 0.015", got)
	}
	if got > 1 {
		t.Errorf("Seconds after 20ms sleep = %v, want < 1", got)
	}
}

func TestSecondsAntisymmetric(t *testing.T) {
	a := Now()
	time.Sleep(time.Millisecond)
	b := Now()

	if fwd, rev := Seconds(a, b), Seconds(b, a); fwd != -rev {
		t.Errorf("Seconds(a, b) = %v, Seconds(b, a) = %v, want negation", fwd, rev)
	}
}
