// Package runner executes external command-line tools as child processes.
//
// The [ExecCommandRunner] resolves an executable through PATH, forwards the child's
// stdout and stderr to the configured writers in real time while capturing both,
// and blocks until the process exits. Failures are reported as one of two typed
// errors:
//
//   - [SpawnFailedError] when the executable could not be launched at all
//   - [CommandFailedError] when the executable ran and exited with a non-zero status
package runner
