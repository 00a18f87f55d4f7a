// Package schedule is the timer facility behind the delayed and throttled
// decorators in [github.com/hasbyte1/go-underbar/decorate].
//
// A [Scheduler] runs a callback no earlier than a given duration from now
// without blocking the caller. Two implementations ship with the package:
//
//   - [Real] wraps [time.AfterFunc]. Every task gets a UUID, scheduling is
//     logged at debug level and a panic inside a callback is recovered and
//     logged instead of crashing the process.
//   - [Manual] is a virtual clock for tests. Nothing fires until
//     [Manual.Advance] moves the clock forward.
//
// Scheduled tasks are fire-and-forget. The [Task] handle returned by
// AfterFunc may be ignored; [Task.Stop] is available for callers that want
// to cancel.
package schedule
