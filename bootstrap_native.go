//go:build !js

package app

// launchBootstrap resolves the GPU bootstrap synchronously on the
// calling goroutine, the native execution model: Run blocks until the
// device and surface are ready, then enters the event loop. The result
// still travels through the one-shot channel so the dispatch path is
// identical on both targets.
func (c *controller) launchBootstrap() {
	c.bootCh <- c.bootstrap()
}
