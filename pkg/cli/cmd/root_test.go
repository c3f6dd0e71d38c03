package cmd_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/devantler-tech/k3d-manager/pkg/cli/cmd"
	"github.com/devantler-tech/k3d-manager/pkg/cli/helpers"
	"github.com/devantler-tech/k3d-manager/pkg/di"
	"github.com/devantler-tech/k3d-manager/pkg/utils/runner"
	"github.com/devantler-tech/k3d-manager/pkg/utils/runner/runnertest"
	"github.com/devantler-tech/k3d-manager/pkg/utils/timer"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noSleep(context.Context, time.Duration) error { return nil }

func newTestRoot(fake *runnertest.FakeRunner, out *bytes.Buffer, args ...string) *cobra.Command {
	root := cmd.NewRootCmdWithRuntime(
		di.New(di.TimerModule(timer.New()), di.CommandRunnerModule(fake), di.SleeperModule(noSleep)),
		"test", "test", "test",
	)
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)

	return root
}

func TestNewRootCmdVersionFormatting(t *testing.T) {
	t.Parallel()

	root := cmd.NewRootCmd("1.2.3", "abc123", "2025-08-17")

	assert.Equal(t, "1.2.3 (Built on 2025-08-17 from Git SHA abc123)", root.Version)
}

func TestExecuteShowsVersion(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	root := cmd.NewRootCmd("1.2.3", "abc123", "2025-08-17")
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "k3d-manager version 1.2.3 (Built on 2025-08-17 from Git SHA abc123)\n", out.String())
}

func TestRootFlagsDefaults(t *testing.T) {
	t.Parallel()

	root := cmd.NewRootCmd("test", "test", "test")

	timing, err := root.PersistentFlags().GetBool(helpers.TimingFlagName)
	require.NoError(t, err)
	assert.False(t, timing)

	level, err := root.PersistentFlags().GetString(helpers.LogLevelFlagName)
	require.NoError(t, err)
	assert.Equal(t, "warn", level)
}

//nolint:paralleltest // PersistentPreRunE configures the global logger.
func TestRootWithoutSubcommandBootstrapsDefaultCluster(t *testing.T) {
	var out bytes.Buffer

	fake := runnertest.NewFakeRunner(runnertest.Respond("kubectl", "node-a Ready\nnode-b Ready\n"))
	fake.Stdout = &out

	require.NoError(t, cmd.Execute(newTestRoot(fake, &out)))

	calls := fake.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t,
		[]string{"cluster", "create", "rusty-cluster", "--servers", "3", "--agents", "3", "--wait"},
		calls[0].Args,
	)
	assert.Equal(t, "kubectl get nodes -o wide", calls[1].String())
	assert.Contains(t, out.String(), "node-a Ready\nnode-b Ready")
	assert.NotContains(t, out.String(), "⏲")
}

//nolint:paralleltest // PersistentPreRunE configures the global logger.
func TestRootTimingFlagPrintsTiming(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, cmd.Execute(newTestRoot(runnertest.NewFakeRunner(nil), &out, "--timing")))

	assert.Contains(t, out.String(), "⏲ current:")
	assert.Contains(t, out.String(), "total:")
}

//nolint:paralleltest // PersistentPreRunE configures the global logger.
func TestRootProvisionFailure(t *testing.T) {
	var out bytes.Buffer

	fake := runnertest.NewFakeRunner(runnertest.FailWith("k3d", 1))

	err := cmd.Execute(newTestRoot(fake, &out))
	require.Error(t, err)

	var cmdErr *runner.CommandFailedError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, 1, cmdErr.ExitCode)
	assert.Contains(t, err.Error(), "command execution failed")
	assert.Contains(t, err.Error(), `command "k3d" with args [cluster create rusty-cluster --servers 3 --agents 3 --wait] failed with exit code 1`)
	assert.Len(t, fake.Calls(), 1)
}

//nolint:paralleltest // PersistentPreRunE configures the global logger.
func TestRootRejectsInvalidLogLevel(t *testing.T) {
	var out bytes.Buffer

	fake := runnertest.NewFakeRunner(nil)

	err := cmd.Execute(newTestRoot(fake, &out, "--log-level", "loud"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log-level "loud"`)
	assert.Empty(t, fake.Calls())

	require.NoError(t, helpers.ConfigureLogging(helpers.DefaultLogLevel, &bytes.Buffer{}))
}

func TestExecuteUnknownCommand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	fake := runnertest.NewFakeRunner(nil)

	err := cmd.Execute(newTestRoot(fake, &out, "bogus"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "bogus" for "k3d-manager"`)
	assert.Empty(t, fake.Calls())
}

func TestRootHelpListsClusterCommand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	fake := runnertest.NewFakeRunner(nil)

	require.NoError(t, cmd.Execute(newTestRoot(fake, &out, "--help")))
	assert.Contains(t, out.String(), "cluster")
	assert.Contains(t, out.String(), "--log-level")
	assert.Empty(t, fake.Calls())
}
