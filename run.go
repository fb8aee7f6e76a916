package app

import (
	"fmt"

	"github.com/robbyt/go-fsm"

	"github.com/gogpu/app/clock"
	"github.com/gogpu/app/gfx"
	"github.com/gogpu/app/input"
	"github.com/gogpu/app/platform"
)

// bootResult crosses the bootstrap boundary exactly once.
type bootResult struct {
	ctx *Context
	err error
}

// controller is the top-level lifecycle state machine. It owns the
// window, launches the asynchronous GPU bootstrap, and dispatches
// input, resize and redraw events once the context is ready.
type controller struct {
	cfg     *config
	machine *fsm.Machine
	win     platform.Window

	// bootCh is the one-shot completion channel of the GPU bootstrap.
	// Buffered so delivery can never block the bootstrap task.
	bootCh chan bootResult

	pending *pendingInit
	app     App
	ctx     *Context

	lastTick clock.Instant
	ticked   bool

	resume any
	err    error
}

// Run drives the host: it creates a hidden resizable window, launches
// the GPU bootstrap, and runs the event loop until the application
// requests shutdown or startup fails.
//
// payload is handed to init exactly once, together with the freshly
// built Context. The value returned by the application's Deinit is
// passed back as resume, so an embedder can loop:
//
//	var payload any
//	for {
//	    payload, err = app.Run(build, payload)
//	    ...
//	}
//
// Run must be called from the main goroutine on native targets (the
// platform layer locks the OS thread for the event loop).
func Run(init InitFunc, payload any, opts ...Option) (resume any, err error) {
	if init == nil {
		return nil, ErrNilInit
	}
	cfg := newConfig(opts...)
	log := Logger()

	machine, err := newLifecycle(log.Handler())
	if err != nil {
		return nil, fmt.Errorf("app: lifecycle init: %w", err)
	}

	c := &controller{
		cfg:     cfg,
		machine: machine,
		bootCh:  make(chan bootResult, 1),
		pending: &pendingInit{init: init, payload: payload},
	}

	win, err := platform.Create(platform.Config{
		Title:  cfg.title,
		Width:  cfg.width,
		Height: cfg.height,
		Logger: log,
	}, c.pushRaw, c.resize)
	if err != nil {
		return nil, err
	}
	c.win = win
	defer win.Destroy()

	c.launchBootstrap()
	win.Run(c.tick)

	if c.machine.GetState() == stateRunning {
		// Loop ended without an explicit exit (window closed by the
		// platform). Drive the normal shutdown path.
		c.shutdown()
	}
	return c.resume, c.err
}

// tick runs once per redraw. It drains the bootstrap completion channel
// strictly before any frame dispatch, guaranteeing that no frame or
// input event reaches application code ahead of init. Returning false
// stops the platform loop.
func (c *controller) tick() bool {
	select {
	case res := <-c.bootCh:
		if res.err != nil {
			c.fail(res.err)
			return false
		}
		if err := c.becomeRunning(res.ctx); err != nil {
			c.fail(err)
			return false
		}
	default:
	}

	if c.machine.GetState() != stateRunning {
		// Bootstrap still in flight; keep the loop alive.
		return true
	}

	now := clock.Now()
	var dt float64
	if c.ticked {
		dt = clock.Seconds(c.lastTick, now)
	}
	c.lastTick = now
	c.ticked = true

	exit := c.app.Frame(c.ctx, dt)

	// The queue is cleared exactly once per frame, after the callback
	// has observed it.
	c.ctx.Input.Clear()

	if exit {
		c.shutdown()
		return false
	}
	return true
}

// becomeRunning consumes the one-shot init payload and transitions
// booting→running. A second completion fails the transition and is
// reported as ErrAlreadyRunning. On any failure the delivered context
// is released here; it never reaches the application.
func (c *controller) becomeRunning(ctx *Context) error {
	if err := c.machine.Transition(stateRunning); err != nil {
		ctx.release(Logger())
		return fmt.Errorf("%w: %v", ErrAlreadyRunning, err)
	}
	p := c.pending
	c.pending = nil
	if p == nil {
		ctx.release(Logger())
		return ErrAlreadyRunning
	}

	a, err := p.init(p.payload, ctx)
	if err != nil {
		ctx.release(Logger())
		return fmt.Errorf("%w: %v", ErrInitFailed, err)
	}
	c.app = a
	c.ctx = ctx
	Logger().Info("app: running", "title", c.cfg.title)
	return nil
}

// shutdown transitions running→stopping, runs the application's deinit
// callback (which may yield a resumable payload), and releases the
// context.
func (c *controller) shutdown() {
	log := Logger()
	if err := c.machine.Transition(stateStopping); err != nil {
		log.Warn("app: shutdown from unexpected state", "state", c.machine.GetState(), "err", err)
	}
	if c.app != nil {
		c.resume = c.app.Deinit(c.ctx)
		c.app = nil
	}
	if c.ctx != nil {
		c.ctx.release(log)
		c.ctx = nil
	}
	if err := c.machine.Transition(stateStopped); err != nil {
		_ = c.machine.SetState(stateStopped)
	}
	log.Info("app: stopped")
}

// fail records a fatal error and forces the terminal state. Contract
// violations and bootstrap failures both land here; neither is retried.
func (c *controller) fail(err error) {
	Logger().Error("app: fatal", "err", err)
	c.err = err
	if c.machine.GetState() == stateRunning {
		c.shutdown()
		if c.err == nil {
			c.err = err
		}
		return
	}
	_ = c.machine.SetState(stateStopped)
}

// pushRaw feeds a raw platform event into the input translator. Events
// arriving before the context exists are dropped; the ordering contract
// guarantees the application never misses an event it could have seen.
func (c *controller) pushRaw(ev input.RawEvent) {
	if c.ctx == nil {
		return
	}
	c.ctx.Input.Push(ev)
}

// resize clamps both dimensions to at least 1 and forwards them to the
// presentation surface manager.
func (c *controller) resize(width, height int) {
	if c.ctx == nil {
		return
	}
	c.ctx.Graphics.Configure(uint32(max(width, 1)), uint32(max(height, 1)))
}

// bootstrap builds the execution context: presentation surface manager,
// input translator, and the window made visible only after the GPU is
// ready. It runs on the goroutine chosen by launchBootstrap.
func (c *controller) bootstrap() bootResult {
	g, err := gfx.New(c.win.SurfaceDescriptor(),
		gfx.WithPowerPreference(c.cfg.power),
		gfx.WithForceFallbackAdapter(c.cfg.forceFallback),
		gfx.WithLogger(Logger()))
	if err != nil {
		return bootResult{err: err}
	}
	w, h := c.win.Size()
	g.Configure(uint32(max(w, 1)), uint32(max(h, 1)))

	ctx := &Context{
		Window:      c.win,
		Input:       input.NewTranslator(c.win),
		Graphics:    g,
		storagePath: c.cfg.storagePath,
		audio:       c.cfg.audio,
	}
	c.win.Show()
	return bootResult{ctx: ctx}
}
