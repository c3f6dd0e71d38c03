package di

import (
	"github.com/devantler-tech/k3d-manager/pkg/svc/verifier"
	"github.com/devantler-tech/k3d-manager/pkg/utils/runner"
	"github.com/devantler-tech/k3d-manager/pkg/utils/timer"
	"github.com/samber/do/v2"
)

// Dependency providers.

// NewRuntime constructs the shared runtime container used by root command and tests.
// It registers default implementations for the timer, command runner and sleeper.
func NewRuntime() *Runtime {
	return New(
		provideTimer,
		provideCommandRunner,
		provideSleeper,
	)
}

// provideTimer registers the timer dependency with the injector.
func provideTimer(i Injector) error {
	do.Provide(i, func(Injector) (timer.Timer, error) {
		return timer.New(), nil
	})

	return nil
}

// provideCommandRunner registers a runner that forwards child output to the process streams.
func provideCommandRunner(i Injector) error {
	do.Provide(i, func(Injector) (runner.CommandRunner, error) {
		return runner.NewExecCommandRunner(nil, nil), nil
	})

	return nil
}

// provideSleeper registers the clock-based settle sleeper.
func provideSleeper(i Injector) error {
	do.Provide(i, func(Injector) (verifier.Sleeper, error) {
		return verifier.ContextSleep, nil
	})

	return nil
}

// CommandRunnerModule returns a module that registers cmdRunner as the command runner.
func CommandRunnerModule(cmdRunner runner.CommandRunner) Module {
	return func(i Injector) error {
		do.ProvideValue(i, cmdRunner)

		return nil
	}
}

// SleeperModule returns a module that registers sleep as the settle sleeper.
func SleeperModule(sleep verifier.Sleeper) Module {
	return func(i Injector) error {
		do.ProvideValue(i, sleep)

		return nil
	}
}

// TimerModule returns a module that registers tmr as the timer.
func TimerModule(tmr timer.Timer) Module {
	return func(i Injector) error {
		do.ProvideValue(i, tmr)

		return nil
	}
}
