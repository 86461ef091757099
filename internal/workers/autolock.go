// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mark Karev

package workers

import (
	"context"
	"sync"
	"time"
)

// AutoLockJob locks the vault after a period of user inactivity. The UI
// calls Touch on every user action; when the time since the last touch
// reaches the idle threshold the job locks the vault and fires the
// notification callback so the UI can switch to the unlock screen.
type AutoLockJob struct {
	locker Locker
	idle   time.Duration
	onLock func()

	mu     sync.Mutex
	last   time.Time
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAutoLockJob creates an idle-lock job. An idle duration of zero or
// less disables the job entirely (Start becomes a no-op). onLock may be
// nil.
func NewAutoLockJob(locker Locker, idle time.Duration, onLock func()) *AutoLockJob {
	return &AutoLockJob{locker: locker, idle: idle, onLock: onLock, last: time.Now()}
}

// SetNotify replaces the lock notification callback. Call before Start.
func (j *AutoLockJob) SetNotify(fn func()) {
	j.mu.Lock()
	j.onLock = fn
	j.mu.Unlock()
}

// Touch records user activity, pushing the idle deadline out.
func (j *AutoLockJob) Touch() {
	j.mu.Lock()
	j.last = time.Now()
	j.mu.Unlock()
}

// Start implements Job. It stops any previously running instance, then
// launches a goroutine that checks the idle deadline a few times per idle
// period. The goroutine exits when ctx is cancelled or Stop is called.
func (j *AutoLockJob) Start(ctx context.Context) {
	if j.idle <= 0 {
		return
	}

	j.Stop()

	j.mu.Lock()
	j.last = time.Now()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	interval := j.idle / 4
	if interval < time.Second {
		interval = time.Second
	}

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.mu.Lock()
				expired := time.Since(j.last) >= j.idle
				if expired {
					j.last = time.Now()
				}
				notify := j.onLock
				j.mu.Unlock()

				if expired {
					j.locker.Lock()
					if notify != nil {
						notify()
					}
				}
			}
		}
	}()
}

// Stop implements Job. It cancels the background goroutine and blocks
// until it has fully exited. Safe to call when the job is not running.
func (j *AutoLockJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
