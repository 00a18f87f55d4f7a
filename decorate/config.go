package decorate

import (
	"go.uber.org/zap"

	"github.com/hasbyte1/go-underbar/schedule"
	"github.com/hasbyte1/go-underbar/value"
)

// Config holds the collaborators shared by the decorators.
type Config struct {
	// Scheduler runs delayed calls and ends throttle cooldowns.
	Scheduler schedule.Scheduler

	// Logger receives debug events such as dropped throttled calls.
	Logger *zap.Logger

	// Equality compares memoized argument values.
	Equality value.Equality
}

// DefaultConfig returns the real-time scheduler, a no-op logger and
// [value.LooseEqual].
func DefaultConfig() Config {
	return Config{
		Scheduler: schedule.Default(),
		Logger:    zap.NewNop(),
		Equality:  value.LooseEqual,
	}
}

// Option customises a decorator.
type Option func(*Config)

// WithScheduler replaces the scheduler, e.g. with a [schedule.Manual] in
// tests.
func WithScheduler(s schedule.Scheduler) Option {
	return func(c *Config) { c.Scheduler = s }
}

// WithLogger replaces the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithEquality replaces the argument comparison used by [Memoize]. Pass
// [value.Equal] to stop 1 and "1" from sharing a cache entry.
func WithEquality(eq value.Equality) Option {
	return func(c *Config) { c.Equality = eq }
}

func newConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg.withDefaults()
}

// withDefaults fills any nil field from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Scheduler == nil {
		c.Scheduler = def.Scheduler
	}
	if c.Logger == nil {
		c.Logger = def.Logger
	}
	if c.Equality == nil {
		c.Equality = def.Equality
	}
	return c
}
