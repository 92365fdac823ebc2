// Package task runs one unit of work on its own goroutine and lets the
// submitting context await its result. Single submission, single await;
// there is no retry, timeout, or cancellation of the running body.
//
// Values the closure captures move with it: once submitted, the submitting
// context must not touch them again. The package cannot enforce that —
// transfer the captures through an own.Owned cell when a loud failure on
// reuse is wanted.
package task

import "context"

// Task is a handle to one submitted unit of work.
type Task[T any] struct {
	done chan result[T]
}

type result[T any] struct {
	val T
	err error
}

// Go submits fn for concurrent execution and returns immediately.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Task[T] {
	t := &Task[T]{done: make(chan result[T], 1)}
	go func() {
		val, err := fn(ctx)
		t.done <- result[T]{val: val, err: err}
	}()
	return t
}

// Await suspends the caller until the task finishes or ctx is done,
// whichever comes first. Call it exactly once.
func (t *Task[T]) Await(ctx context.Context) (T, error) {
	select {
	case res := <-t.done:
		return res.val, res.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
