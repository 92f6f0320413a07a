package flow

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/observe"
	"github.com/ib-77/outcome/pkg/outcome/task"
)

// ErrBadStep marks a pipeline built from a step that cannot run, such
// as a zero Step or an async step that produced no task.
var ErrBadStep = errors.New("flow: step is not callable")

// Flow threads r through steps in order. A failed container skips every
// remaining step; an absent one keeps flowing. Each hop's outcome is
// reported to the hooks on ctx.
func Flow[T any](ctx context.Context, r outcome.Result[T], steps ...Step[T]) outcome.Result[T] {
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return observe.Report(ctx, outcome.Err[T](err))
		}
		if r.IsErr() {
			return r
		}
		r = observe.Report(ctx, s.run(ctx, r))
	}
	return r
}

// Run seeds a pipeline with a raw value, normalized the same way the
// synchronous constructors normalize it.
func Run[T any](ctx context.Context, seed T, steps ...Step[T]) outcome.Result[T] {
	return Flow(ctx, outcome.ResultOf(seed), steps...)
}

// Start runs a pipeline from absence, so the first step receives the
// zero value.
func Start[T any](ctx context.Context, steps ...Step[T]) outcome.Result[T] {
	return Flow(ctx, outcome.Nil[T](), steps...)
}

// Go runs the whole pipeline on a task of its own.
func Go[T any](ctx context.Context, r outcome.Result[T], steps ...Step[T]) *task.Task[T] {
	return task.GoResult(ctx, func(ctx context.Context) outcome.Result[T] {
		return Flow(ctx, r, steps...)
	})
}

// Repeat loops the pipeline until stop approves the current container,
// the pipeline fails or ctx ends. stop sees each container before the
// next round; it must not extract the payload it approves.
func Repeat[T any](ctx context.Context, r outcome.Result[T], stop func(outcome.Result[T]) bool, steps ...Step[T]) outcome.Result[T] {
	if stop == nil {
		return outcome.Err[T](ErrBadStep)
	}
	for {
		if err := ctx.Err(); err != nil {
			return outcome.Err[T](err)
		}
		if stop(r) {
			return r
		}
		r = Flow(ctx, r, steps...)
		if r.IsErr() {
			return r
		}
	}
}
