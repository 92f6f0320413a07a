// Package task settles containers asynchronously. A Task starts work on
// its own goroutine and resolves exactly once into an outcome.Result;
// any number of callers can await it, and cancellation of an awaiting
// context never disturbs the task itself.
//
// Key constructs:
//   - Go, GoResult: spawn work that settles the task; panics become
//     failed containers.
//   - Await: block for the settled container or the caller's context.
//   - All, Race: join a set of tasks into one container.
//   - Retry, RetryIf, Backoff: run flaky work under a wait schedule.
package task
