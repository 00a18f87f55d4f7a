package schedule

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Task is a handle to a scheduled callback.
type Task interface {
	// ID uniquely identifies the task.
	ID() string

	// Stop cancels the task. It returns false if the task already ran or
	// was already stopped.
	Stop() bool
}

// Scheduler runs callbacks after a delay.
type Scheduler interface {
	// AfterFunc arranges for fn to run in its own goroutine (or, for test
	// schedulers, during a clock advance) once at least d has elapsed.
	// Negative durations are treated as zero.
	AfterFunc(d time.Duration, fn func()) Task
}

// Real is a [Scheduler] backed by [time.AfterFunc].
type Real struct {
	logger *zap.Logger
}

var _ Scheduler = (*Real)(nil)

// NewReal returns a Real scheduler that logs through logger.
// A nil logger disables logging.
func NewReal(logger *zap.Logger) *Real {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Real{logger: logger}
}

var defaultReal = NewReal(nil)

// Default returns the shared, non-logging Real scheduler.
func Default() *Real { return defaultReal }

// AfterFunc implements [Scheduler].
func (r *Real) AfterFunc(d time.Duration, fn func()) Task {
	if d < 0 {
		d = 0
	}
	t := &realTask{id: uuid.NewString()}
	r.logger.Debug("task scheduled",
		zap.String("task_id", t.id),
		zap.Duration("delay", d),
	)
	t.timer = time.AfterFunc(d, func() { r.run(t.id, fn) })
	return t
}

func (r *Real) run(id string, fn func()) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("scheduled task panicked",
				zap.String("task_id", id),
				zap.Any("panic", p),
			)
		}
	}()
	fn()
}

type realTask struct {
	id    string
	timer *time.Timer
}

func (t *realTask) ID() string { return t.id }

func (t *realTask) Stop() bool { return t.timer.Stop() }
