// Package decorate wraps functions with call-control behaviour: run once,
// cache per argument list, run later and rate-limit.
//
// Each decorator returns a value that owns its state (a called flag, a
// result cache, a cooldown flag) for as long as the wrapper is reachable.
// All wrappers are safe for concurrent use.
//
//	init := decorate.Once(func(...any) *DB { return connect() })
//	db := init.Call()
//
//	fib := decorate.Memoize1(func(n int) int { ... })
//
//	save := decorate.Throttle(func(...any) { flush() }, time.Second)
//	save.Call() // runs
//	save.Call() // dropped until a second has passed
//
// Timed decorators run on a [schedule.Scheduler]; tests inject a
// [schedule.Manual] through [WithScheduler] to control time.
package decorate
