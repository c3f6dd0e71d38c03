package cmd

import (
	"fmt"
	"os"

	cluster "github.com/devantler-tech/k3d-manager/pkg/cli/cmd/cluster"
	"github.com/devantler-tech/k3d-manager/pkg/cli/helpers"
	"github.com/devantler-tech/k3d-manager/pkg/cli/ui/errorhandler"
	runtime "github.com/devantler-tech/k3d-manager/pkg/di"
	"github.com/devantler-tech/k3d-manager/pkg/utils/notify"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command with version info and subcommands.
func NewRootCmd(version, commit, date string) *cobra.Command {
	return NewRootCmdWithRuntime(runtime.NewRuntime(), version, commit, date)
}

// NewRootCmdWithRuntime is like NewRootCmd but resolves collaborators from runtimeContainer.
func NewRootCmdWithRuntime(runtimeContainer *runtime.Runtime, version, commit, date string) *cobra.Command {
	viperInstance := helpers.NewViper()

	cmd := &cobra.Command{
		Use:   "k3d-manager",
		Short: "Bootstrap a local multi-node k3d cluster and list its nodes",
		Long: `k3d-manager creates a k3d cluster with three control-plane and three worker
nodes, waits for it to settle and lists its nodes with kubectl.

Run without a subcommand to bootstrap the default cluster. Use
'k3d-manager cluster create' to change the topology.`,
		RunE:         cluster.NewDefaultRunE(runtimeContainer),
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return helpers.ConfigureLogging(viperInstance.GetString(helpers.LogLevelFlagName), os.Stderr)
		},
	}

	// Set version if available
	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	cmd.PersistentFlags().Bool(
		helpers.TimingFlagName,
		false,
		"Show per-activity timing output",
	)
	cmd.PersistentFlags().String(
		helpers.LogLevelFlagName,
		helpers.DefaultLogLevel,
		"Diagnostic log level (trace, debug, info, warn, error)",
	)
	_ = viperInstance.BindPFlag(helpers.LogLevelFlagName, cmd.PersistentFlags().Lookup(helpers.LogLevelFlagName))

	cmd.SetOut(notify.NewStageSeparatingWriter(os.Stdout))

	cmd.AddCommand(cluster.NewClusterCmd(runtimeContainer))

	return cmd
}

// Execute runs the provided root command and handles errors.
func Execute(cmd *cobra.Command) error {
	executor := errorhandler.NewExecutor()

	err := executor.Execute(cmd)
	if err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}
