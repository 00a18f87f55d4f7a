package decorate

import (
	"sync"

	"go.uber.org/zap"

	"github.com/hasbyte1/go-underbar/value"
)

// Memoized caches the results of a function per distinct argument list.
//
// Entries are never evicted: the cache holds one entry per distinct argument
// list for the lifetime of the Memoized value.
type Memoized[R any] struct {
	fn     func(...any) R
	eq     value.Equality
	logger *zap.Logger

	mu sync.Mutex
	// buckets groups entries by the shape of their argument list, so only
	// structurally alike lists are compared.
	buckets map[uint64][]*memoEntry[R]
	size    int
}

type memoEntry[R any] struct {
	args   []any
	ready  chan struct{}
	result R
	ok     bool
}

// Memoize returns a wrapper that runs fn once per distinct argument list and
// replays the cached result for later calls with an equal list.
//
// Argument lists are compared position by position with the configured
// equality, [value.LooseEqual] unless [WithEquality] says otherwise; lists
// of different length never match. Sequences and mappings in the arguments
// are compared by content, and a snapshot of them is cached, so mutating an
// argument after the call does not disturb the cache.
//
// Concurrent calls with an equal list run fn once; the others wait for its
// result. If fn panics nothing is cached and waiting callers retry.
func Memoize[R any](fn func(...any) R, opts ...Option) *Memoized[R] {
	cfg := newConfig(opts)
	return &Memoized[R]{
		fn:      fn,
		eq:      cfg.Equality,
		logger:  cfg.Logger,
		buckets: make(map[uint64][]*memoEntry[R]),
	}
}

// Call returns the cached result for args, running the wrapped function on
// a miss.
func (m *Memoized[R]) Call(args ...any) R {
	shape := value.Shape(args)
	for {
		e, owner := m.reserve(shape, args)
		if owner {
			return m.compute(shape, e, args)
		}
		<-e.ready
		if e.ok {
			return e.result
		}
	}
}

// Func returns Call as a plain function value.
func (m *Memoized[R]) Func() func(...any) R { return m.Call }

// Len returns the number of cached argument lists.
func (m *Memoized[R]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.size
}

// reserve returns the entry matching args, adding a pending one when there
// is none. owner reports whether the caller added it and must compute it.
func (m *Memoized[R]) reserve(shape uint64, args []any) (e *memoEntry[R], owner bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, cached := range m.buckets[shape] {
		if value.EqualArgs(m.eq, cached.args, args) {
			return cached, false
		}
	}

	snapshot := make([]any, len(args))
	for i, a := range args {
		snapshot[i] = value.Clone(a)
	}
	e = &memoEntry[R]{args: snapshot, ready: make(chan struct{})}
	m.buckets[shape] = append(m.buckets[shape], e)
	m.size++
	m.logger.Debug("memoize miss",
		zap.Uint64("shape", shape),
		zap.Int("entries", m.size),
	)
	return e, true
}

func (m *Memoized[R]) compute(shape uint64, e *memoEntry[R], args []any) R {
	defer func() {
		if !e.ok {
			m.drop(shape, e)
		}
		close(e.ready)
	}()
	e.result = m.fn(args...)
	e.ok = true
	return e.result
}

func (m *Memoized[R]) drop(shape uint64, target *memoEntry[R]) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bucket := m.buckets[shape]
	for i, e := range bucket {
		if e == target {
			m.buckets[shape] = append(bucket[:i:i], bucket[i+1:]...)
			m.size--
			return
		}
	}
}

// Memoize1 is [Memoize] for a function of one argument.
func Memoize1[A, R any](fn func(A) R, opts ...Option) func(A) R {
	m := Memoize(func(args ...any) R { return fn(argAt[A](args, 0)) }, opts...)
	return func(a A) R { return m.Call(a) }
}

// Memoize2 is [Memoize] for a function of two arguments.
func Memoize2[A, B, R any](fn func(A, B) R, opts ...Option) func(A, B) R {
	m := Memoize(func(args ...any) R { return fn(argAt[A](args, 0), argAt[B](args, 1)) }, opts...)
	return func(a A, b B) R { return m.Call(a, b) }
}
