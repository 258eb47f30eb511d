package analytics

import "time"

// Clock supplies the current time to date-dependent computations.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// Engine turns workout logs and journal memos into analyses and advice.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	clock      Clock
	thresholds Thresholds
}

type Option func(*Engine)

func WithClock(clock Clock) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

func WithThresholds(t Thresholds) Option {
	return func(e *Engine) {
		e.thresholds = t
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		clock:      systemClock{},
		thresholds: DefaultThresholds(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Thresholds() Thresholds {
	return e.thresholds
}

// Now is the engine clock's current time.
func (e *Engine) Now() time.Time {
	return e.clock.Now()
}

// Today is the start of the engine clock's current day. Plans and predictions depend on it.
func (e *Engine) Today() time.Time {
	return dayStart(e.clock.Now())
}
