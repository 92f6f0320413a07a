package observe

import (
	"context"
	"strings"

	"github.com/ib-77/outcome/pkg/outcome"
)

type valueKey[T any] struct{}

type errorKey struct{}

type absenceKey struct{}

// WithValueHook registers fn to run whenever a present payload of type T
// is reported on this context.
func WithValueHook[T any](ctx context.Context, fn func(T)) context.Context {
	return context.WithValue(ctx, valueKey[T]{}, fn)
}

// WithErrorHook registers fn to run whenever a failure is reported on
// this context.
func WithErrorHook(ctx context.Context, fn func(error)) context.Context {
	return context.WithValue(ctx, errorKey{}, fn)
}

// WithAbsenceHook registers fn to run whenever an absence is reported on
// this context.
func WithAbsenceHook(ctx context.Context, fn func()) context.Context {
	return context.WithValue(ctx, absenceKey{}, fn)
}

// Value fires the value hook registered for T, if any.
func Value[T any](ctx context.Context, v T) {
	if fn, ok := ctx.Value(valueKey[T]{}).(func(T)); ok {
		fn(v)
	}
}

// Error fires the error hook, if any. Nil errors are ignored.
func Error(ctx context.Context, err error) {
	if err == nil {
		return
	}
	if fn, ok := ctx.Value(errorKey{}).(func(error)); ok {
		fn(err)
	}
}

// Absence fires the absence hook, if any.
func Absence(ctx context.Context) {
	if fn, ok := ctx.Value(absenceKey{}).(func()); ok {
		fn()
	}
}

// Report routes r to the hooks registered on ctx without consuming its
// payload, then hands the container back unchanged.
func Report[T any](ctx context.Context, r outcome.Result[T]) outcome.Result[T] {
	switch {
	case r.IsOk():
		return r.Tee(func(v T) { Value(ctx, v) })
	case r.IsErr():
		Error(ctx, r.Err())
	default:
		Absence(ctx)
	}
	return r
}

// Describe renders a short lowercase tag for any container, suitable for
// log fields and metric attributes.
func Describe(c outcome.Container) string {
	tag := strings.ToLower(c.Kind().String())
	if c.Consumed() {
		tag += "+consumed"
	}
	return tag
}
