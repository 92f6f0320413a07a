// Package observe carries reporting hooks through context.Context so
// pipelines can surface what flows through them without owning a logger
// or a metrics registry.
//
// Key constructs:
//   - WithValueHook, WithErrorHook, WithAbsenceHook register callbacks
//     on a context; the innermost registration wins.
//   - Report routes a container to whichever hook matches its state.
//   - MeterHooks backs the three hooks with OpenTelemetry counters.
package observe
