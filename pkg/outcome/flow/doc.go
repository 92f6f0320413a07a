// Package flow sequences container-aware steps over a single value.
// Failures short-circuit the rest of the pipeline, absence flows on
// feeding the zero value forward, and every hop is reported to the
// hooks carried by the context.
//
// Key constructs:
//   - Then, Try, Await: the three step shapes (pure, fallible, async).
//   - Flow, Run, Start: thread a container or a raw seed through steps.
//   - Go: run a whole pipeline as a task.
//   - Repeat: loop a pipeline until a stop condition holds.
package flow
