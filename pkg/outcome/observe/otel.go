package observe

import (
	"context"

	"go.opentelemetry.io/otel/metric"
)

// MeterHooks registers counter-backed hooks for T on ctx: present
// payloads increment <prefix>.ok, failures <prefix>.err and absences
// <prefix>.nil. Earlier registrations for the same hook are shadowed.
func MeterHooks[T any](ctx context.Context, meter metric.Meter, prefix string) (context.Context, error) {
	okCount, err := meter.Int64Counter(prefix+".ok",
		metric.WithDescription("present payloads reported under "+prefix))
	if err != nil {
		return ctx, err
	}
	errCount, err := meter.Int64Counter(prefix+".err",
		metric.WithDescription("failures reported under "+prefix))
	if err != nil {
		return ctx, err
	}
	nilCount, err := meter.Int64Counter(prefix+".nil",
		metric.WithDescription("absences reported under "+prefix))
	if err != nil {
		return ctx, err
	}

	base := ctx
	ctx = WithValueHook(ctx, func(T) { okCount.Add(base, 1) })
	ctx = WithErrorHook(ctx, func(error) { errCount.Add(base, 1) })
	ctx = WithAbsenceHook(ctx, func() { nilCount.Add(base, 1) })
	return ctx, nil
}
