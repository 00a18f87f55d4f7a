package decorate

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hasbyte1/go-underbar/schedule"
)

// Throttled runs its function at most once per cooldown window.
type Throttled struct {
	fn        func(...any)
	wait      time.Duration
	scheduler schedule.Scheduler
	logger    *zap.Logger

	mu      sync.Mutex
	cooling bool
}

// Throttle returns a leading-edge throttle around fn.
//
// A call made while no cooldown is active runs fn immediately and, once fn
// returns, starts a cooldown of wait. Calls made during the cooldown are
// dropped: they are neither queued nor replayed when it ends. The cooldown is
// ended by a callback on the configured scheduler.
func Throttle(fn func(...any), wait time.Duration, opts ...Option) *Throttled {
	cfg := newConfig(opts)
	return &Throttled{
		fn:        fn,
		wait:      wait,
		scheduler: cfg.Scheduler,
		logger:    cfg.Logger,
	}
}

// Call runs the wrapped function with args unless a cooldown is active.
// It reports whether the function ran.
func (t *Throttled) Call(args ...any) bool {
	t.mu.Lock()
	if t.cooling {
		t.mu.Unlock()
		t.logger.Debug("throttled call dropped", zap.Duration("wait", t.wait))
		return false
	}
	t.cooling = true
	t.mu.Unlock()

	defer t.scheduler.AfterFunc(t.wait, t.cooldownOver)
	t.fn(args...)
	return true
}

// Func returns Call as a plain function value that discards the result.
func (t *Throttled) Func() func(...any) {
	return func(args ...any) { t.Call(args...) }
}

func (t *Throttled) cooldownOver() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cooling = false
}
