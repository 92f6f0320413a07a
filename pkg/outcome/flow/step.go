package flow

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/task"
)

// Step is one hop of a pipeline. Exactly one shape is set; a zero Step
// fails its pipeline with ErrBadStep.
type Step[T any] struct {
	then  func(T) T
	try   func(context.Context, T) (T, error)
	await func(context.Context, T) *task.Task[T]
}

// Then wraps a pure transform.
func Then[T any](fn func(T) T) Step[T] {
	return Step[T]{then: fn}
}

// Try wraps a fallible boundary call.
func Try[T any](fn func(context.Context, T) (T, error)) Step[T] {
	return Step[T]{try: fn}
}

// Await wraps a step that hands the value to a task and waits for it.
func Await[T any](fn func(context.Context, T) *task.Task[T]) Step[T] {
	return Step[T]{await: fn}
}

// run extracts the payload and applies the step. Absence feeds the zero
// value forward; a consumed payload or a panicking step comes back as a
// failure.
func (s Step[T]) run(ctx context.Context, r outcome.Result[T]) (out outcome.Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			out = outcome.Err[T](outcome.NewPanicError(rec))
		}
	}()

	v, err := r.Get()
	if err != nil {
		return outcome.Err[T](err)
	}

	switch {
	case s.then != nil:
		return outcome.ResultOf(s.then(v))
	case s.try != nil:
		next, err := s.try(ctx, v)
		if err != nil {
			return outcome.Err[T](err)
		}
		return outcome.ResultOf(next)
	case s.await != nil:
		tk := s.await(ctx, v)
		if tk == nil {
			return outcome.Err[T](ErrBadStep)
		}
		return tk.Await(ctx)
	default:
		return outcome.Err[T](ErrBadStep)
	}
}
