package stream

import "context"

type workersKey struct{}

const defaultWorkers = 1

// WithWorkers sets how many drivers Turnout and Run spawn for each
// stage started under this context.
func WithWorkers(ctx context.Context, n int) context.Context {
	return context.WithValue(ctx, workersKey{}, n)
}

// Workers reports the configured driver count, at least one.
func Workers(ctx context.Context) int {
	if n, ok := ctx.Value(workersKey{}).(int); ok && n > 0 {
		return n
	}
	return defaultWorkers
}
