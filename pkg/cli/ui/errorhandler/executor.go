package errorhandler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/devantler-tech/k3d-manager/pkg/utils/runner"
	"github.com/spf13/cobra"
)

// ExitCodeFailure is the process exit status for any failed run.
const ExitCodeFailure = 1

// Normalizer cleans up text cobra wrote to its error stream.
type Normalizer interface {
	Normalize(raw string) string
}

// Executor type.

// Executor coordinates Cobra execution, capturing stderr output and surfacing aggregated errors.
type Executor struct {
	normalizer Normalizer
}

// NewExecutor constructs an Executor using DefaultNormalizer.
func NewExecutor() *Executor {
	return &Executor{normalizer: DefaultNormalizer{}}
}

// Execute runs cmd with a background context. See ExecuteContext.
func (e *Executor) Execute(cmd *cobra.Command) error {
	return e.ExecuteContext(context.Background(), cmd)
}

// ExecuteContext runs cmd while intercepting Cobra's error stream.
// It returns nil on success, or a *CommandError holding the normalized stderr text
// and the original error so errors.Is and errors.As keep working.
func (e *Executor) ExecuteContext(ctx context.Context, cmd *cobra.Command) error {
	if cmd == nil {
		return nil
	}

	var errBuf bytes.Buffer

	originalErrWriter := cmd.ErrOrStderr()

	cmd.SetErr(&errBuf)
	defer cmd.SetErr(originalErrWriter)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	return &CommandError{
		message: e.normalizer.Normalize(errBuf.String()),
		cause:   err,
	}
}

// CommandError type.

// CommandError represents a Cobra execution failure augmented with normalized stderr output.
type CommandError struct {
	message string
	cause   error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	switch {
	case e == nil:
		return ""
	case e.cause == nil:
		return e.message
	case e.message != "":
		if strings.Contains(e.message, e.cause.Error()) {
			return e.message
		}

		return e.message + ": " + e.cause.Error()
	default:
		return e.cause.Error()
	}
}

// Unwrap exposes the underlying cause for errors.Is/errors.As consumers.
func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// ExitCode maps err to the process exit status: 0 for nil, ExitCodeFailure otherwise.
// The exit status of a failed child process is reported in the message, not forwarded.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	return ExitCodeFailure
}

// Hint returns a follow-up suggestion for well-known failures, or "" when there is none.
func Hint(err error) string {
	var spawnErr *runner.SpawnFailedError
	if errors.As(err, &spawnErr) {
		return fmt.Sprintf("make sure %s is installed and available on PATH", spawnErr.Name)
	}

	var cmdErr *runner.CommandFailedError
	if errors.As(err, &cmdErr) {
		return fmt.Sprintf("see the %s output above for details", cmdErr.Name)
	}

	return ""
}

// DefaultNormalizer implementation.

// DefaultNormalizer strips cobra's "Error:" prefix and keeps usage hints that follow it.
type DefaultNormalizer struct{}

// Normalize trims whitespace, removes redundant "Error:" prefixes, and preserves multi-line usage hints.
func (DefaultNormalizer) Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	lines := strings.Split(trimmed, "\n")
	lines[0] = strings.TrimPrefix(strings.TrimSpace(lines[0]), "Error: ")

	return strings.Join(lines, "\n")
}
