// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package storage is the per-application key-value cache. Desktop
// builds persist to a SQLite database next to the application; js
// builds persist to window.localStorage.
//
// Keys and values are strings. Absent keys are reported through the
// ok result of Get, never as an error.
package storage

// Store is a persistent string key-value cache.
type Store interface {
	// Get returns the value for key. ok is false when the key is
	// absent.
	Get(key string) (value string, ok bool)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// Clear removes every key.
	Clear() error

	// Keys returns all stored keys in unspecified order.
	Keys() []string

	// Close flushes and releases the store.
	Close() error
}
