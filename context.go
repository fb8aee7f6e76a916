package app

import (
	"log/slog"
	"sync"

	"github.com/gogpu/app/gfx"
	"github.com/gogpu/app/input"
	"github.com/gogpu/app/platform"
	"github.com/gogpu/app/storage"
)

// Context aggregates everything the application needs during a frame:
// the window handle, the input translator, and the presentation surface
// manager. It is built exactly once, after the asynchronous GPU bootstrap
// completes, and released on shutdown. The dispatch goroutine never
// observes it partially constructed.
//
// Context is NOT safe for concurrent use. It is owned by the dispatch
// goroutine while a callback executes.
type Context struct {
	// Window is the platform window. Written by the platform layer,
	// read-only for the application.
	Window platform.Window

	// Input holds the normalized input snapshot for the current frame.
	// The application reads events and may toggle capture mode; the host
	// clears the queue after each frame.
	Input *input.Translator

	// Graphics is the presentation surface manager. The application
	// acquires frames from it and submits render passes through its
	// device and queue.
	Graphics *gfx.Graphics

	storagePath string
	storageOnce sync.Once
	store       storage.Store
	storeErr    error

	audio AudioSink
}

// Storage returns the persistent key-value cache, opening it on first
// use. The location is set with [WithStoragePath]. The host closes the
// store during shutdown.
func (c *Context) Storage() (storage.Store, error) {
	c.storageOnce.Do(func() {
		c.store, c.storeErr = storage.Open(c.storagePath)
	})
	return c.store, c.storeErr
}

// Audio returns the audio sink attached with [WithAudioSink], or nil.
// The host passes it through unchanged and never closes it.
func (c *Context) Audio() AudioSink { return c.audio }

// release tears down host-owned collaborators. The audio sink is the
// embedder's; it is not closed here.
func (c *Context) release(log *slog.Logger) {
	if c.store != nil {
		if err := c.store.Close(); err != nil {
			log.Warn("app: storage close failed", "err", err)
		}
		c.store = nil
	}
	if c.Graphics != nil {
		c.Graphics.Release()
	}
}
