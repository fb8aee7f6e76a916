package app

import (
	"log/slog"

	"github.com/robbyt/go-fsm"
)

// Lifecycle states of the host. Exactly one is active at any time; the
// legal edges are enforced by the state machine so that an out-of-order
// event (most importantly a second bootstrap completion) fails the
// transition instead of corrupting the running application.
const (
	stateBooting  = "booting"  // window created, GPU bootstrap in flight
	stateRunning  = "running"  // application instance active, frames dispatched
	stateStopping = "stopping" // deinit in progress
	stateStopped  = "stopped"  // terminal
)

// lifecycleTransitions is the legal edge set. booting→stopped covers
// bootstrap failure; there is no edge back into running.
var lifecycleTransitions = map[string][]string{
	stateBooting:  {stateRunning, stateStopped},
	stateRunning:  {stateStopping},
	stateStopping: {stateStopped},
	stateStopped:  {},
}

func newLifecycle(handler slog.Handler) (*fsm.Machine, error) {
	return fsm.New(handler, stateBooting, lifecycleTransitions)
}

// pendingInit is the one-shot payload held while booting. It is moved
// out (set to nil) on the transition to running; observing it nil during
// that transition means a double consumption.
type pendingInit struct {
	init    InitFunc
	payload any
}
