// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build js

package storage

import "syscall/js"

// localStore persists to window.localStorage. The path becomes a key
// prefix so multiple applications on one origin stay separated.
type localStore struct {
	prefix string
	ls     js.Value
}

// Open binds the cache to localStorage under a prefix derived from
// path.
func Open(path string) (Store, error) {
	return &localStore{
		prefix: path + "/",
		ls:     js.Global().Get("localStorage"),
	}, nil
}

func (s *localStore) Get(key string) (string, bool) {
	v := s.ls.Call("getItem", s.prefix+key)
	if v.IsNull() {
		return "", false
	}
	return v.String(), true
}

func (s *localStore) Set(key, value string) error {
	s.ls.Call("setItem", s.prefix+key, value)
	return nil
}

func (s *localStore) Delete(key string) error {
	s.ls.Call("removeItem", s.prefix+key)
	return nil
}

func (s *localStore) Clear() error {
	for _, key := range s.Keys() {
		s.ls.Call("removeItem", s.prefix+key)
	}
	return nil
}

func (s *localStore) Keys() []string {
	n := s.ls.Get("length").Int()
	var keys []string
	for i := 0; i < n; i++ {
		k := s.ls.Call("key", i).String()
		if len(k) > len(s.prefix) && k[:len(s.prefix)] == s.prefix {
			keys = append(keys, k[len(s.prefix):])
		}
	}
	return keys
}

func (s *localStore) Close() error { return nil }
