package task

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// All awaits every task in order and collects the payloads. The first
// failure wins and keeps its cause; the first absence turns the whole
// join absent. Collecting extracts each payload, so the joined tasks
// count as read.
func All[T any](ctx context.Context, tasks ...*Task[T]) outcome.Result[[]T] {
	out := make([]T, 0, len(tasks))
	for _, t := range tasks {
		r := t.Await(ctx)
		switch {
		case r.IsErr():
			return outcome.ErrFrom[T, []T](r)
		case r.IsNil():
			return outcome.Nil[[]T]()
		}
		v, err := r.Get()
		if err != nil {
			return outcome.Err[[]T](err)
		}
		out = append(out, v)
	}
	return outcome.Ok(out)
}

// Race returns the container of whichever task settles first. Without
// competitors the race resolves absent.
func Race[T any](ctx context.Context, tasks ...*Task[T]) outcome.Result[T] {
	if len(tasks) == 0 {
		return outcome.Nil[T]()
	}

	winner := make(chan outcome.Result[T], len(tasks))
	for _, t := range tasks {
		go func(t *Task[T]) {
			winner <- t.Await(ctx)
		}(t)
	}

	select {
	case r := <-winner:
		return r
	case <-ctx.Done():
		return outcome.Err[T](ctx.Err())
	}
}
