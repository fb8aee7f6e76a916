// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gfx

import "github.com/gogpu/app/internal/logutil"

// NewHeadless returns a Graphics with no GPU context behind it:
// Configure records nothing and AcquireFrame always skips. It exists
// for driving the application lifecycle in tests and environments
// without a GPU.
func NewHeadless() *Graphics {
	return &Graphics{
		headless: true,
		log:      logutil.Nop(),
	}
}
