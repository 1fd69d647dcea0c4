package resolver

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Executor schedules the continuations of asynchronous exchanges. Go must
// return without blocking the submitting goroutine; any queueing or
// admission control happens off the caller's back.
type Executor interface {
	Go(task func())
}

// BoundedExecutor runs tasks on goroutines admitted through a weighted
// semaphore, capping how many execute at once. Submission never blocks:
// tasks over the cap wait for admission inside their own goroutine.
type BoundedExecutor struct {
	sem *semaphore.Weighted
}

// NewBoundedExecutor returns an executor running at most n tasks
// concurrently. n below 1 is raised to 1.
func NewBoundedExecutor(n int) *BoundedExecutor {
	if n < 1 {
		n = 1
	}
	return &BoundedExecutor{sem: semaphore.NewWeighted(int64(n))}
}

// Go schedules task and returns immediately.
func (e *BoundedExecutor) Go(task func()) {
	go func() {
		// Acquire cannot fail with a background context.
		_ = e.sem.Acquire(context.Background(), 1)
		defer e.sem.Release(1)
		task()
	}()
}

var (
	defaultExecOnce sync.Once
	defaultExec     *BoundedExecutor
)

// DefaultExecutor returns the shared bounded executor used when SendAsync
// is given a nil executor. It is sized to GOMAXPROCS and shared across the
// process; callers issuing many concurrent blocking sends should supply a
// dedicated executor instead of starving this one.
func DefaultExecutor() Executor {
	defaultExecOnce.Do(func() {
		defaultExec = NewBoundedExecutor(runtime.GOMAXPROCS(0))
	})
	return defaultExec
}
