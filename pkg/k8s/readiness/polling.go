package readiness

import (
	"context"
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/util/wait"
)

// DefaultPollInterval is the pause between readiness checks.
const DefaultPollInterval = 2 * time.Second

// CheckFunc reports whether a resource is ready. A non-nil error aborts polling.
type CheckFunc func(ctx context.Context) (bool, error)

// PollForReadiness runs check immediately and then every interval until it reports
// ready, returns an error, or deadline elapses.
//
// Returns ErrTimeoutExceeded when deadline elapses first, and the parent
// context's error when ctx is cancelled.
func PollForReadiness(
	ctx context.Context,
	deadline time.Duration,
	interval time.Duration,
	check CheckFunc,
) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	err := wait.PollUntilContextTimeout(ctx, interval, deadline, true, wait.ConditionWithContextFunc(check))
	if err == nil {
		return nil
	}

	if ctx.Err() == nil && wait.Interrupted(err) {
		return fmt.Errorf("%w after %s", ErrTimeoutExceeded, deadline)
	}

	return fmt.Errorf("failed to poll for readiness: %w", err)
}
