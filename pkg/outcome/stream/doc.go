// Package stream processes channels of containers with controlled
// concurrency. Sources emit one container per input value, engines
// transform them item by item on a configurable number of drivers, and
// sinks gather or fold whatever reaches the end, failed items included.
//
// Key constructs:
//   - FromValues, FromSlice, Emit: sources.
//   - Map, AndThen, Try, Filter, Validate, Catch, Tee, Observe,
//     Compose: per-item engines.
//   - Turnout, Run: fan an input channel across workers.
//   - Gather, Finalize: sinks.
//   - WithWorkers: context-carried driver count.
package stream
