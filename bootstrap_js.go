//go:build js

package app

// launchBootstrap schedules the GPU bootstrap on a separate goroutine,
// the cooperative browser execution model: adapter and device requests
// park on promises without blocking the event loop, and the result is
// delivered back through the one-shot channel. The dispatch loop drains
// the channel before any frame or input event reaches application code.
func (c *controller) launchBootstrap() {
	go func() {
		c.bootCh <- c.bootstrap()
	}()
}
