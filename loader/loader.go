// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package loader reads assets off the frame loop. Load returns
// immediately with a handle; the read happens on a background worker
// and the result is picked up by polling Query each frame or by
// blocking in Wait.
package loader

import (
	"context"
	"log/slog"
	"sync"

	"github.com/gogpu/app/internal/logutil"
)

// File is the handle for one asynchronous read. It starts pending and
// completes exactly once.
type File struct {
	// Path is the location the file was requested from.
	Path string

	mu   sync.Mutex
	data []byte
	err  error
	done chan struct{}
}

func newFile(path string) *File {
	return &File{Path: path, done: make(chan struct{})}
}

// Query polls the read without blocking. done is false while the read
// is still in flight; once done, data or err holds the outcome.
func (f *File) Query() (data []byte, done bool, err error) {
	select {
	case <-f.done:
	default:
		return nil, false, nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data, true, f.err
}

// Wait blocks until the read completes or ctx is cancelled.
func (f *File) Wait(ctx context.Context) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-f.done:
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data, f.err
}

func (f *File) complete(data []byte, err error) {
	f.mu.Lock()
	f.data = data
	f.err = err
	f.mu.Unlock()
	close(f.done)
}

// Loader owns the background worker. The zero value is not usable;
// create one with New and release it with Close.
type Loader struct {
	jobs chan *File
	log  *slog.Logger

	closeOnce sync.Once
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger routes loader diagnostics to log.
func WithLogger(log *slog.Logger) Option {
	return func(l *Loader) { l.log = logutil.Or(log) }
}

// New starts a loader with one background worker.
func New(opts ...Option) *Loader {
	l := &Loader{
		jobs: make(chan *File, 32),
		log:  logutil.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	go l.worker()
	return l
}

// Load queues a read of path and returns its handle immediately.
func (l *Loader) Load(path string) *File {
	f := newFile(path)
	select {
	case l.jobs <- f:
	default:
		// Queue full: fall back to a dedicated goroutine so Load
		// never blocks the frame loop.
		go l.serve(f)
	}
	return f
}

// Close stops the worker. Reads already queued still complete.
func (l *Loader) Close() {
	l.closeOnce.Do(func() { close(l.jobs) })
}

func (l *Loader) worker() {
	for f := range l.jobs {
		l.serve(f)
	}
}

func (l *Loader) serve(f *File) {
	data, err := readFile(f.Path)
	if err != nil {
		l.log.Debug("loader: read failed", "path", f.Path, "err", err)
	} else {
		l.log.Debug("loader: read complete", "path", f.Path, "bytes", len(data))
	}
	f.complete(data, err)
}
