package decorate

import (
	"time"

	"go.uber.org/zap"

	"github.com/hasbyte1/go-underbar/schedule"
)

// Delay runs fn(args...) once, no earlier than wait from now, on the default
// scheduler. It returns immediately.
//
// The call is fire-and-forget: ignoring the returned task is the normal use.
// Callers that do need to cancel may call its Stop method before it fires.
func Delay(fn func(...any), wait time.Duration, args ...any) schedule.Task {
	return DelayWith(DefaultConfig(), fn, wait, args...)
}

// DelayWith is [Delay] using the scheduler and logger from cfg. Nil fields
// fall back to [DefaultConfig].
func DelayWith(cfg Config, fn func(...any), wait time.Duration, args ...any) schedule.Task {
	cfg = cfg.withDefaults()
	bound := make([]any, len(args))
	copy(bound, args)

	task := cfg.Scheduler.AfterFunc(wait, func() { fn(bound...) })
	cfg.Logger.Debug("call delayed",
		zap.String("task_id", task.ID()),
		zap.Duration("wait", wait),
		zap.Int("args", len(bound)),
	)
	return task
}
