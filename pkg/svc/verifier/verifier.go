package verifier

import (
	"context"
	"fmt"
	"time"

	"github.com/devantler-tech/k3d-manager/pkg/client/kubectl"
	"github.com/devantler-tech/k3d-manager/pkg/utils/runner"
	"github.com/sirupsen/logrus"
)

// DefaultSettleDelay is the pause between cluster creation and the node listing.
const DefaultSettleDelay = 10 * time.Second

// Sleeper blocks for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Option configures a Verifier.
type Option func(*Verifier)

// WithDelay overrides the settle delay. Negative values are treated as zero.
func WithDelay(delay time.Duration) Option {
	return func(v *Verifier) {
		v.delay = max(delay, 0)
	}
}

// WithSleeper replaces the clock-based sleeper, typically in tests.
func WithSleeper(sleep Sleeper) Option {
	return func(v *Verifier) {
		if sleep != nil {
			v.sleep = sleep
		}
	}
}

// Verifier waits for the cluster to settle and lists its nodes.
type Verifier struct {
	runner runner.CommandRunner
	delay  time.Duration
	sleep  Sleeper
}

// NewVerifier creates a Verifier that issues kubectl through cmdRunner.
func NewVerifier(cmdRunner runner.CommandRunner, opts ...Option) *Verifier {
	v := &Verifier{
		runner: cmdRunner,
		delay:  DefaultSettleDelay,
		sleep:  ContextSleep,
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Delay returns the configured settle delay.
func (v *Verifier) Delay() time.Duration {
	return v.delay
}

// Verify sleeps for the settle delay and then runs `kubectl get nodes -o wide`.
// Runner errors are returned unchanged so callers can inspect exit codes.
func (v *Verifier) Verify(ctx context.Context) error {
	logrus.WithField("delay", v.delay).Debug("waiting for cluster to settle")

	err := v.sleep(ctx, v.delay)
	if err != nil {
		return fmt.Errorf("settle delay interrupted: %w", err)
	}

	_, err = v.runner.Run(ctx, kubectl.GetNodesWide())
	if err != nil {
		return err //nolint:wrapcheck // runner errors already name the failing command
	}

	return nil
}

// ContextSleep is the default Sleeper. It returns ctx.Err() if ctx ends first.
func ContextSleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
