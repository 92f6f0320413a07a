package stream

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// FromValues emits one container per argument, normalized the same way
// the synchronous constructors normalize values. The channel closes
// after the last value or as soon as ctx ends.
func FromValues[T any](ctx context.Context, values ...T) <-chan outcome.Result[T] {
	return FromSlice(ctx, values)
}

// FromSlice emits one container per element of values.
func FromSlice[T any](ctx context.Context, values []T) <-chan outcome.Result[T] {
	in := make(chan outcome.Result[T])

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- outcome.ResultOf(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Emit feeds pre-built containers into a stream, failures and absences
// included.
func Emit[T any](ctx context.Context, rs ...outcome.Result[T]) <-chan outcome.Result[T] {
	in := make(chan outcome.Result[T])

	go func() {
		defer close(in)

		for _, r := range rs {
			select {
			case in <- r:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Gather drains the stream into a slice. When ctx ends first, the slice
// closes with one failed container carrying ctx.Err() so the caller can
// tell a cancellation from a clean drain.
func Gather[T any](ctx context.Context, in <-chan outcome.Result[T]) []outcome.Result[T] {
	var out []outcome.Result[T]

	for {
		select {
		case <-ctx.Done():
			return append(out, outcome.Err[T](ctx.Err()))
		case r, ok := <-in:
			if !ok {
				return out
			}
			out = append(out, r)
		}
	}
}
