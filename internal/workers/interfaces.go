package workers

import "context"

// Job is a background task with an explicit lifecycle. Start launches the
// job's goroutine; Stop cancels it and blocks until it has exited. Stop is
// safe to call on a job that is not running.
type Job interface {
	Start(ctx context.Context)
	Stop()
}

// Locker is the slice of the vault service the auto-lock job needs.
type Locker interface {
	Lock()
}
