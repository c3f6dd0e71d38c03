package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunSafely_ReturnsRunnerExitCode(t *testing.T) {
	t.Parallel()

	var errOut bytes.Buffer

	assert.Equal(t, 0, runSafely(nil, func([]string) int { return 0 }, &errOut))
	assert.Equal(t, 1, runSafely(nil, func([]string) int { return 1 }, &errOut))
	assert.Empty(t, errOut.String())
}

func TestRunSafely_RecoversPanics(t *testing.T) {
	t.Parallel()

	var errOut bytes.Buffer

	exitCode := runSafely([]string{"boom"}, func(args []string) int {
		panic("unexpected " + args[0])
	}, &errOut)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, errOut.String(), "✗ panic recovered: unexpected boom")
}

func TestRunSafely_PassesArgs(t *testing.T) {
	t.Parallel()

	var received []string

	runSafely([]string{"cluster", "info", "dev"}, func(args []string) int {
		received = args

		return 0
	}, &bytes.Buffer{})

	assert.Equal(t, []string{"cluster", "info", "dev"}, received)
}
