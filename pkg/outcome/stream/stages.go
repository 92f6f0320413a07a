package stream

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/observe"
)

// Map lifts a pure transform over present payloads; failed and absent
// items ride through on their own tracks.
func Map[In, Out any](fn func(context.Context, In) Out) Engine[In, Out] {
	return func(ctx context.Context, r outcome.Result[In]) outcome.Result[Out] {
		return outcome.Map(r, func(v In) Out { return fn(ctx, v) })
	}
}

// AndThen lifts a container-producing continuation, for stages that
// decide the track themselves.
func AndThen[In, Out any](fn func(context.Context, In) outcome.Result[Out]) Engine[In, Out] {
	return func(ctx context.Context, r outcome.Result[In]) outcome.Result[Out] {
		return outcome.AndThen(r, func(v In) outcome.Result[Out] { return fn(ctx, v) })
	}
}

// Try lifts a fallible call; errors and panics fail the item, not the
// stream.
func Try[In, Out any](fn func(context.Context, In) (Out, error)) Engine[In, Out] {
	return func(ctx context.Context, r outcome.Result[In]) outcome.Result[Out] {
		return outcome.AndThen(r, func(v In) outcome.Result[Out] {
			return outcome.Try(func() (Out, error) { return fn(ctx, v) })
		})
	}
}

// Filter turns rejected payloads absent. Failed items keep their track.
func Filter[T any](pred func(context.Context, T) bool) Engine[T, T] {
	return func(ctx context.Context, r outcome.Result[T]) outcome.Result[T] {
		if r.IsErr() {
			return r
		}
		return r.Filter(func(v T) bool { return pred(ctx, v) }).ToResult()
	}
}

// Validate fails payloads the check rejects, with the message the check
// produced.
func Validate[T any](check func(context.Context, T) (valid bool, errMsg string)) Engine[T, T] {
	return func(ctx context.Context, r outcome.Result[T]) outcome.Result[T] {
		return outcome.AndThen(r, func(v T) outcome.Result[T] {
			valid, errMsg := check(ctx, v)
			if !valid {
				return outcome.Err[T](errors.New(errMsg))
			}
			return outcome.Ok(v)
		})
	}
}

// Catch lets failed items rejoin the stream.
func Catch[T any](fn func(context.Context, error) outcome.Result[T]) Engine[T, T] {
	return func(ctx context.Context, r outcome.Result[T]) outcome.Result[T] {
		return r.Catch(func(err error) outcome.Result[T] { return fn(ctx, err) })
	}
}

// Tee runs a side effect on present payloads without consuming them.
func Tee[T any](effect func(context.Context, T)) Engine[T, T] {
	return func(ctx context.Context, r outcome.Result[T]) outcome.Result[T] {
		return r.Tee(func(v T) { effect(ctx, v) })
	}
}

// Observe reports every passing item to the hooks on ctx.
func Observe[T any]() Engine[T, T] {
	return func(ctx context.Context, r outcome.Result[T]) outcome.Result[T] {
		return observe.Report(ctx, r)
	}
}

// Compose fuses two engines into one stage, saving a channel hop.
func Compose[In, Mid, Out any](first Engine[In, Mid], second Engine[Mid, Out]) Engine[In, Out] {
	return func(ctx context.Context, r outcome.Result[In]) outcome.Result[Out] {
		return second(ctx, first(ctx, r))
	}
}
