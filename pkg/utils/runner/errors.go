package runner

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSpawnFailed matches any *SpawnFailedError via errors.Is.
	ErrSpawnFailed = errors.New("failed to spawn command")
	// ErrCommandFailed matches any *CommandFailedError via errors.Is.
	ErrCommandFailed = errors.New("command failed")
	// ErrEmptyCommandName is returned when an invocation has no executable name.
	ErrEmptyCommandName = errors.New("command name is empty")
	// ErrEmptyArgument is returned when an invocation carries an empty-string argument.
	ErrEmptyArgument = errors.New("command argument is empty")
)

// SpawnFailedError reports an executable that could not be launched,
// e.g. because it is not on PATH or is not executable.
type SpawnFailedError struct {
	Name string
	Err  error
}

// Error implements the error interface.
func (e *SpawnFailedError) Error() string {
	return fmt.Sprintf("failed to spawn %q: %v", e.Name, e.Err)
}

// Unwrap exposes the underlying OS-level cause.
func (e *SpawnFailedError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrSpawnFailed.
func (e *SpawnFailedError) Is(target error) bool {
	return target == ErrSpawnFailed
}

// CommandFailedError reports an executable that ran and exited with a non-zero status.
type CommandFailedError struct {
	Name     string
	Args     []string
	ExitCode int
	// Stderr holds the captured error stream. It has already been forwarded to the
	// operator, so it is not repeated in Error().
	Stderr string
}

// Error implements the error interface.
func (e *CommandFailedError) Error() string {
	return fmt.Sprintf(
		"command %q with args [%s] failed with exit code %d",
		e.Name,
		strings.Join(e.Args, " "),
		e.ExitCode,
	)
}

// Is reports whether target is ErrCommandFailed.
func (e *CommandFailedError) Is(target error) bool {
	return target == ErrCommandFailed
}
