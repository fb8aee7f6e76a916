package app

import "errors"

// Package errors for the lifecycle controller.
var (
	// ErrAlreadyRunning is returned when a second bootstrap completion is
	// delivered while an application instance is already running, or when
	// the one-shot init payload would be consumed twice. Both are
	// programming-contract violations: the host stops instead of silently
	// replacing the running application.
	ErrAlreadyRunning = errors.New("app: init completion already consumed")

	// ErrInitFailed is returned when the application's build callback
	// rejects the freshly constructed context.
	ErrInitFailed = errors.New("app: application init failed")

	// ErrNilInit is returned by Run when no InitFunc is supplied.
	ErrNilInit = errors.New("app: nil InitFunc")
)
