package decorate

import "sync"

// OnceFunc runs its function on the first call only.
type OnceFunc[R any] struct {
	once   sync.Once
	fn     func(...any) R
	result R
}

// Once returns a wrapper whose first Call runs fn with that call's
// arguments. Every later call, whatever its arguments, returns the first
// result without running fn. Concurrent first calls run fn once; the others
// block until it returns.
func Once[R any](fn func(...any) R) *OnceFunc[R] {
	return &OnceFunc[R]{fn: fn}
}

// Call runs the wrapped function if it has not run yet and returns its
// result.
func (o *OnceFunc[R]) Call(args ...any) R {
	o.once.Do(func() {
		o.result = o.fn(args...)
		o.fn = nil
	})
	return o.result
}

// Func returns Call as a plain function value.
func (o *OnceFunc[R]) Func() func(...any) R { return o.Call }

// Once0 is [Once] for a function without arguments.
func Once0[R any](fn func() R) func() R {
	o := Once(func(...any) R { return fn() })
	return func() R { return o.Call() }
}

// Once1 is [Once] for a function of one argument.
func Once1[A, R any](fn func(A) R) func(A) R {
	o := Once(func(args ...any) R { return fn(argAt[A](args, 0)) })
	return func(a A) R { return o.Call(a) }
}

// Once2 is [Once] for a function of two arguments.
func Once2[A, B, R any](fn func(A, B) R) func(A, B) R {
	o := Once(func(args ...any) R { return fn(argAt[A](args, 0), argAt[B](args, 1)) })
	return func(a A, b B) R { return o.Call(a, b) }
}

// argAt returns args[i] as a T. A nil interface, as produced by passing a
// nil error or pointer through ...any, yields the zero T.
func argAt[T any](args []any, i int) T {
	v, _ := args[i].(T)
	return v
}
