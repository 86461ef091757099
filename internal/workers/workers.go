package workers

import "context"

// Workers runs a set of background jobs as one unit.
type Workers struct {
	jobs []Job
}

// New collects jobs into a runner.
func New(jobs ...Job) *Workers {
	return &Workers{jobs: jobs}
}

// Start launches every job.
func (w *Workers) Start(ctx context.Context) {
	for _, job := range w.jobs {
		job.Start(ctx)
	}
}

// Stop stops every job and waits for each to exit.
func (w *Workers) Stop() {
	for _, job := range w.jobs {
		job.Stop()
	}
}
