package app

// App is the callback contract implemented by the embedding application.
// The host calls Frame once per redraw on the dispatch goroutine, which
// owns the Context exclusively for the duration of the call.
type App interface {
	// Frame runs one frame of application logic. dt is the wall time in
	// seconds since the previous frame's clock sample (zero on the first
	// frame). Events queued by the input translator during the frame are
	// visible through ctx.Input and are cleared by the host after Frame
	// returns. Returning true requests shutdown.
	Frame(ctx *Context, dt float64) bool

	// Deinit releases the application during shutdown. A non-nil return
	// value is handed back to the embedder by Run and can seed a later
	// Run call (resumable restart).
	Deinit(ctx *Context) any
}

// InitFunc builds the application instance once the window and GPU
// context are ready. payload is the value passed to Run, delivered
// exactly once. Returning an error aborts startup.
type InitFunc func(payload any, ctx *Context) (App, error)
