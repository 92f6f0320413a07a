package task

import (
	"context"
	"sync/atomic"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Task is a container that has not settled yet. It resolves exactly
// once; later settle attempts are dropped.
type Task[T any] struct {
	done    chan struct{}
	res     outcome.Result[T]
	settled atomic.Bool
}

func newTask[T any]() *Task[T] {
	return &Task[T]{done: make(chan struct{})}
}

func (t *Task[T]) settle(r outcome.Result[T]) bool {
	if !t.settled.CompareAndSwap(false, true) {
		return false
	}
	t.res = r
	close(t.done)
	return true
}

// Done exposes the settle signal for use in select statements.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Settled reports whether the task has resolved.
func (t *Task[T]) Settled() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Await blocks until the task settles or ctx is done. A canceled wait
// yields a failed container carrying ctx.Err() and leaves the task
// untouched; every successful wait returns the same settled container,
// so its payload can still be extracted only once overall.
func (t *Task[T]) Await(ctx context.Context) outcome.Result[T] {
	select {
	case <-t.done:
		return t.res
	default:
	}
	select {
	case <-t.done:
		return t.res
	case <-ctx.Done():
		return outcome.Err[T](ctx.Err())
	}
}

// Go runs fn on a new goroutine and settles the task with its outcome:
// errors become failures, nullish values become absences and panics
// become failures carrying a PanicError.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Task[T] {
	t := newTask[T]()
	go func() {
		t.settle(outcome.Try(func() (T, error) { return fn(ctx) }))
	}()
	return t
}

// GoResult runs fn on a new goroutine and settles the task with the
// container fn built. Panics still settle the task as failures.
func GoResult[T any](ctx context.Context, fn func(context.Context) outcome.Result[T]) *Task[T] {
	t := newTask[T]()
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				t.settle(outcome.Err[T](outcome.NewPanicError(rec)))
			}
		}()
		t.settle(fn(ctx))
	}()
	return t
}

// Resolved returns a task already settled with v, normalized the same
// way synchronous constructors normalize it.
func Resolved[T any](v T) *Task[T] {
	t := newTask[T]()
	t.settle(outcome.ResultOf(v))
	return t
}

// Rejected returns a task already settled as a failure.
func Rejected[T any](err error) *Task[T] {
	t := newTask[T]()
	t.settle(outcome.Err[T](err))
	return t
}
