// Package runnertest provides a scripted runner.CommandRunner for tests.
package runnertest

import (
	"context"
	"io"
	"sync"

	"github.com/devantler-tech/k3d-manager/pkg/utils/runner"
)

// Handler decides the outcome of a single invocation.
type Handler func(invocation runner.Invocation) (runner.Result, error)

// FakeRunner records every invocation and answers with Handler.
// When Stdout is set, each result's Stdout is written to it, mimicking the
// forwarding behaviour of the real runner.
type FakeRunner struct {
	Handler Handler
	Stdout  io.Writer

	mu    sync.Mutex
	calls []runner.Invocation
}

// NewFakeRunner returns a FakeRunner that succeeds with empty output unless handler is given.
func NewFakeRunner(handler Handler) *FakeRunner {
	return &FakeRunner{Handler: handler}
}

// Run implements runner.CommandRunner.
func (f *FakeRunner) Run(_ context.Context, invocation runner.Invocation) (runner.Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, invocation)
	f.mu.Unlock()

	if f.Handler == nil {
		return runner.Result{}, nil
	}

	result, err := f.Handler(invocation)
	if f.Stdout != nil && result.Stdout != "" {
		_, _ = io.WriteString(f.Stdout, result.Stdout)
	}

	return result, err
}

// Calls returns a copy of the recorded invocations in order.
func (f *FakeRunner) Calls() []runner.Invocation {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]runner.Invocation, len(f.calls))
	copy(out, f.calls)

	return out
}

// FailWith returns a Handler that fails invocations of name with a CommandFailedError
// carrying exitCode and succeeds for everything else.
func FailWith(name string, exitCode int) Handler {
	return func(invocation runner.Invocation) (runner.Result, error) {
		if invocation.Name != name {
			return runner.Result{}, nil
		}

		return runner.Result{ExitCode: exitCode}, &runner.CommandFailedError{
			Name:     invocation.Name,
			Args:     invocation.Args,
			ExitCode: exitCode,
		}
	}
}

// Respond returns a Handler that answers invocations of name with stdout and
// succeeds with empty output for everything else.
func Respond(name, stdout string) Handler {
	return func(invocation runner.Invocation) (runner.Result, error) {
		if invocation.Name != name {
			return runner.Result{}, nil
		}

		return runner.Result{Stdout: stdout}, nil
	}
}
