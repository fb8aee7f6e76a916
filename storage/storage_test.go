// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !js

package storage

import (
	"path/filepath"
	"sort"
	"testing"
)

func openTestStore(t *testing.T) Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetAbsentKey(t *testing.T) {
	s := openTestStore(t)
	if v, ok := s.Get("missing"); ok || v != "" {
		t.Errorf("Get(missing) = (%q, %v), want (\"\", false)", v, ok)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	if err := s.Set("score", "42"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if v, ok := s.Get("score"); !ok || v != "42" {
		t.Errorf("Get(score) = (%q, %v), want (\"42\", true)", v, ok)
	}
}

func TestSetReplacesValue(t *testing.T) {
	s := openTestStore(t)
	s.Set("name", "first")
	if err := s.Set("name", "second"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if v, _ := s.Get("name"); v != "second" {
		t.Errorf("Get(name) = %q, want \"second\"", v)
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)
	s.Set("k", "v")
	if err := s.Delete("k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok := s.Get("k"); ok {
		t.Error("key still present after Delete")
	}
	// Deleting again must not fail.
	if err := s.Delete("k"); err != nil {
		t.Errorf("Delete(absent) error = %v", err)
	}
}

func TestClearAndKeys(t *testing.T) {
	s := openTestStore(t)
	s.Set("a", "1")
	s.Set("b", "2")
	s.Set("c", "3")

	keys := s.Keys()
	sort.Strings(keys)
	want := []string{"a", "b", "c"}
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Keys() = %v, want %v", keys, want)
		}
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if keys := s.Keys(); len(keys) != 0 {
		t.Errorf("Keys() after Clear = %v, want empty", keys)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	s.Set("persisted", "yes")
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer s.Close()
	if v, ok := s.Get("persisted"); !ok || v != "yes" {
		t.Errorf("Get(persisted) = (%q, %v) after reopen, want (\"yes\", true)", v, ok)
	}
}
