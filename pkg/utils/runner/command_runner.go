package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
)

// CommandRunner executes external commands.
// Implementations should display output to stdout/stderr in real-time while also
// capturing it for programmatic access via Result.
type CommandRunner interface {
	Run(ctx context.Context, invocation Invocation) (Result, error)
}

// ExecCommandRunner runs invocations as child processes of the current process.
// It holds no state between calls; one child runs per Run call.
type ExecCommandRunner struct {
	stdout io.Writer
	stderr io.Writer
}

// NewExecCommandRunner creates a runner that forwards child output to stdout and stderr.
//
// If stdout or stderr are nil, they default to os.Stdout and os.Stderr respectively.
func NewExecCommandRunner(stdout, stderr io.Writer) *ExecCommandRunner {
	if stdout == nil {
		stdout = os.Stdout
	}

	if stderr == nil {
		stderr = os.Stderr
	}

	return &ExecCommandRunner{
		stdout: stdout,
		stderr: stderr,
	}
}

// Run spawns the invocation, waits for it to exit, and returns its captured output.
//
// A non-zero exit status yields a *CommandFailedError carrying the exit code.
// An executable that cannot be resolved or started yields a *SpawnFailedError.
func (r *ExecCommandRunner) Run(ctx context.Context, invocation Invocation) (Result, error) {
	err := validate(invocation)
	if err != nil {
		return Result{}, &SpawnFailedError{Name: invocation.Name, Err: err}
	}

	path, err := exec.LookPath(invocation.Name)
	if err != nil {
		return Result{}, &SpawnFailedError{Name: invocation.Name, Err: err}
	}

	logrus.WithFields(logrus.Fields{
		"command": invocation.Name,
		"path":    path,
		"args":    invocation.Args,
	}).Debug("running command")

	var outBuf, errBuf bytes.Buffer

	//nolint:gosec // G204: invocations are built by this program, not taken from user input verbatim
	cmd := exec.CommandContext(ctx, path, invocation.Args...)
	cmd.Stdout = io.MultiWriter(&outBuf, r.stdout)
	cmd.Stderr = io.MultiWriter(&errBuf, r.stderr)

	runErr := cmd.Run()

	result := Result{
		Stdout: outBuf.String(),
		Stderr: errBuf.String(),
	}

	if runErr == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		result.ExitCode = exitErr.ExitCode()

		logrus.WithFields(logrus.Fields{
			"command":   invocation.Name,
			"exit_code": result.ExitCode,
		}).Debug("command exited with non-zero status")

		return result, &CommandFailedError{
			Name:     invocation.Name,
			Args:     invocation.Args,
			ExitCode: result.ExitCode,
			Stderr:   result.Stderr,
		}
	}

	return result, &SpawnFailedError{Name: invocation.Name, Err: runErr}
}

func validate(invocation Invocation) error {
	if invocation.Name == "" {
		return ErrEmptyCommandName
	}

	for i, arg := range invocation.Args {
		if arg == "" {
			return fmt.Errorf("%w: position %d", ErrEmptyArgument, i)
		}
	}

	return nil
}
