package task

import (
	"context"
	"time"

	"github.com/ib-77/outcome/pkg/outcome/observe"
)

// Backoff maps a 1-based retry attempt to the wait before the next try.
type Backoff func(attempt int) time.Duration

// Constant waits the same duration between attempts.
func Constant(d time.Duration) Backoff {
	return func(int) time.Duration { return d }
}

// Linear grows the wait by step for every attempt made.
func Linear(step time.Duration) Backoff {
	return func(attempt int) time.Duration { return step * time.Duration(attempt) }
}

// Exponential doubles the wait on every attempt, starting at initial
// and never exceeding max.
func Exponential(initial, max time.Duration) Backoff {
	return func(attempt int) time.Duration {
		d := initial
		for i := 1; i < attempt && d < max; i++ {
			d *= 2
		}
		if d > max {
			return max
		}
		return d
	}
}

// Retry runs fn up to attempts times on a single task, waiting between
// tries according to wait. Each failed attempt is reported to the error
// hook on ctx; the task settles with the first success or the last
// failure.
func Retry[T any](ctx context.Context, attempts int, wait Backoff, fn func(context.Context) (T, error)) *Task[T] {
	return RetryIf(ctx, attempts, wait, nil, fn)
}

// RetryIf is Retry with a gate: a failure for which retryable returns
// false settles the task immediately. A nil gate retries every failure.
func RetryIf[T any](ctx context.Context, attempts int, wait Backoff, retryable func(error) bool, fn func(context.Context) (T, error)) *Task[T] {
	return Go(ctx, func(ctx context.Context) (T, error) {
		return retryLoop(ctx, attempts, wait, retryable, fn)
	})
}

func retryLoop[T any](ctx context.Context, attempts int, wait Backoff, retryable func(error) bool, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if attempts < 1 {
		attempts = 1
	}

	var last error
	for attempt := 1; attempt <= attempts; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		last = err
		observe.Error(ctx, err)

		if retryable != nil && !retryable(err) {
			break
		}
		if attempt == attempts {
			break
		}

		var delay time.Duration
		if wait != nil {
			delay = wait(attempt)
		}
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
	}
	return zero, last
}
