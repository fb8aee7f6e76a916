// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !js

package loader

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads path whenever it changes on disk and delivers the new
// handle to onChange. It returns a stop function that ends the watch.
//
// onChange runs on the watch goroutine; completion of the delivered
// handle is still observed through Query or Wait as usual. Rapid
// successive writes are debounced so editors that truncate then write
// produce a single reload.
func (l *Loader) Watch(path string, onChange func(*File)) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("loader: create watcher: %w", err)
	}
	// Watch the directory: editors replace files, which would drop a
	// watch on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("loader: watch %s: %w", path, err)
	}

	done := make(chan struct{})
	go l.watchLoop(watcher, path, onChange, done)

	return func() {
		close(done)
		watcher.Close()
	}, nil
}

func (l *Loader) watchLoop(watcher *fsnotify.Watcher, path string, onChange func(*File), done chan struct{}) {
	const debounceDelay = 100 * time.Millisecond
	var debounce *time.Timer

	base := filepath.Base(path)
	for {
		select {
		case <-done:
			if debounce != nil {
				debounce.Stop()
			}
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				l.log.Debug("loader: change detected", "path", path)
				onChange(l.Load(path))
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			l.log.Debug("loader: watch error", "path", path, "err", err)
		}
	}
}
