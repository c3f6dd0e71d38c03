package timer_test

import (
	"testing"
	"time"

	"github.com/devantler-tech/k3d-manager/pkg/utils/timer"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func TestStageTimer(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	tmr := timer.NewWithClock(clock.Now)

	total, stage := tmr.GetTiming()
	assert.Zero(t, total)
	assert.Zero(t, stage)

	tmr.Start()
	clock.advance(4 * time.Second)
	tmr.NewStage()
	clock.advance(10 * time.Second)

	total, stage = tmr.GetTiming()
	assert.Equal(t, 14*time.Second, total)
	assert.Equal(t, 10*time.Second, stage)
}

func TestNew(t *testing.T) {
	t.Parallel()

	tmr := timer.New()
	tmr.Start()

	total, stage := tmr.GetTiming()
	assert.GreaterOrEqual(t, total, stage)
}
