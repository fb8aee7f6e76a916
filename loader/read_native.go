// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !js

package loader

import "os"

func readFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
