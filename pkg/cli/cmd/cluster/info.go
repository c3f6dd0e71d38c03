package cluster

import (
	"fmt"

	"github.com/devantler-tech/k3d-manager/pkg/apis/cluster/v1alpha1"
	"github.com/devantler-tech/k3d-manager/pkg/client/kubectl"
	"github.com/devantler-tech/k3d-manager/pkg/di"
	"github.com/devantler-tech/k3d-manager/pkg/utils/notify"
	"github.com/devantler-tech/k3d-manager/pkg/utils/runner"
	"github.com/spf13/cobra"
)

type infoStep struct {
	emoji      string
	title      string
	invocation runner.Invocation
}

// NewInfoCmd creates the cluster info command.
func NewInfoCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <name>",
		Short: "Show nodes, pods and services of a cluster",
		Long: `Switch kubectl to the cluster's k3d context and list its nodes,
pods and services across all namespaces.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runtimeContainer.Invoke(func(injector di.Injector) error {
			return runInfo(cmd, injector, args[0])
		})
	}

	return cmd
}

func runInfo(cmd *cobra.Command, injector di.Injector, name string) error {
	cmdRunner, err := di.ResolveCommandRunner(injector)
	if err != nil {
		return err
	}

	spec := v1alpha1.ClusterSpec{Name: name}

	steps := []infoStep{
		{emoji: "🔀", title: "Switch context...", invocation: kubectl.UseContext(spec.ContextName())},
		{emoji: "🖥️", title: "Nodes...", invocation: kubectl.GetNodesWide()},
		{emoji: "📦", title: "Pods...", invocation: kubectl.GetPodsAllNamespaces()},
		{emoji: "🌐", title: "Services...", invocation: kubectl.GetServicesAllNamespaces()},
	}

	for _, step := range steps {
		notify.Titlef(cmd.OutOrStdout(), step.emoji, "%s", step.title)

		_, err = cmdRunner.Run(cmd.Context(), step.invocation)
		if err != nil {
			return fmt.Errorf("failed to show info for cluster %q: %w", name, err)
		}
	}

	return nil
}
