package di

import (
	"fmt"

	"github.com/devantler-tech/k3d-manager/pkg/svc/verifier"
	"github.com/devantler-tech/k3d-manager/pkg/utils/runner"
	"github.com/devantler-tech/k3d-manager/pkg/utils/timer"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// Dependency resolvers.

// ResolveTimer retrieves the timer dependency from the injector with consistent error handling.
func ResolveTimer(injector Injector) (timer.Timer, error) {
	tmr, err := do.Invoke[timer.Timer](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve timer dependency: %w", err)
	}

	return tmr, nil
}

// ResolveCommandRunner retrieves the command runner dependency from the injector.
func ResolveCommandRunner(injector Injector) (runner.CommandRunner, error) {
	cmdRunner, err := do.Invoke[runner.CommandRunner](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve command runner dependency: %w", err)
	}

	return cmdRunner, nil
}

// ResolveSleeper retrieves the settle sleeper dependency from the injector.
func ResolveSleeper(injector Injector) (verifier.Sleeper, error) {
	sleep, err := do.Invoke[verifier.Sleeper](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve sleeper dependency: %w", err)
	}

	return sleep, nil
}

// Handler decorators.

// WithTimer decorates a handler to automatically resolve the timer dependency.
// This higher-order function simplifies command handlers that need timer access.
func WithTimer(
	handler func(cmd *cobra.Command, injector Injector, tmr timer.Timer) error,
) func(cmd *cobra.Command, injector Injector) error {
	return func(cmd *cobra.Command, injector Injector) error {
		tmr, err := ResolveTimer(injector)
		if err != nil {
			return err
		}

		return handler(cmd, injector, tmr)
	}
}
