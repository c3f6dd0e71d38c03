// Package timer tracks elapsed time for multi-stage operations.
package timer

import (
	"sync"
	"time"
)

// Timer measures the total duration since Start and the duration of the current stage.
type Timer interface {
	// Start resets the timer and begins the first stage.
	Start()
	// NewStage begins a new stage without resetting the total.
	NewStage()
	// GetTiming returns the total elapsed time and the elapsed time of the current stage.
	GetTiming() (time.Duration, time.Duration)
}

// StageTimer is the default Timer.
type StageTimer struct {
	now func() time.Time

	mu         sync.Mutex
	start      time.Time
	stageStart time.Time
}

// New returns a StageTimer backed by the wall clock.
func New() *StageTimer {
	return NewWithClock(time.Now)
}

// NewWithClock returns a StageTimer that reads time from now.
func NewWithClock(now func() time.Time) *StageTimer {
	return &StageTimer{now: now}
}

// Start implements Timer.
func (t *StageTimer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.start = t.now()
	t.stageStart = t.start
}

// NewStage implements Timer.
func (t *StageTimer) NewStage() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stageStart = t.now()
}

// GetTiming implements Timer. Both durations are zero before Start.
func (t *StageTimer) GetTiming() (time.Duration, time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.start.IsZero() {
		return 0, 0
	}

	now := t.now()

	return now.Sub(t.start), now.Sub(t.stageStart)
}
