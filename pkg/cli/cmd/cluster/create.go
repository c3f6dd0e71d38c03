package cluster

import (
	"fmt"

	"github.com/devantler-tech/k3d-manager/pkg/cli/helpers"
	"github.com/devantler-tech/k3d-manager/pkg/di"
	"github.com/devantler-tech/k3d-manager/pkg/svc/bootstrapper"
	k3dprovisioner "github.com/devantler-tech/k3d-manager/pkg/svc/provisioner/cluster/k3d"
	"github.com/devantler-tech/k3d-manager/pkg/svc/verifier"
	"github.com/devantler-tech/k3d-manager/pkg/utils/runner"
	"github.com/devantler-tech/k3d-manager/pkg/utils/timer"
	"github.com/spf13/cobra"
)

// NewCreateCmd wires the cluster create command using the shared runtime container.
func NewCreateCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a cluster",
		Long: `Create a k3d cluster, wait for it to settle and list its nodes.

Every flag can also be set through an environment variable prefixed with
K3D_MANAGER_, e.g. K3D_MANAGER_SERVERS=1 or K3D_MANAGER_SETTLE_DELAY=30s.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}

	addCreateFlags(cmd.Flags())

	viperInstance := helpers.NewViper()
	_ = helpers.BindFlags(viperInstance, cmd.Flags())

	cmd.RunE = di.RunEWithRuntime(
		runtimeContainer,
		di.WithTimer(func(cmd *cobra.Command, injector di.Injector, tmr timer.Timer) error {
			return runCreate(cmd, injector, tmr, createOptionsFromViper(viperInstance))
		}),
	)

	return cmd
}

// NewDefaultRunE returns a RunE that bootstraps the compiled-in cluster.
// It backs the root command when no subcommand is given.
func NewDefaultRunE(runtimeContainer *di.Runtime) func(*cobra.Command, []string) error {
	return di.RunEWithRuntime(
		runtimeContainer,
		di.WithTimer(func(cmd *cobra.Command, injector di.Injector, tmr timer.Timer) error {
			return runCreate(cmd, injector, tmr, defaultCreateOptions())
		}),
	)
}

func runCreate(cmd *cobra.Command, injector di.Injector, tmr timer.Timer, opts createOptions) error {
	if opts.DryRun {
		return printDryRun(cmd, opts)
	}

	cmdRunner, err := di.ResolveCommandRunner(injector)
	if err != nil {
		return err
	}

	sleep, err := di.ResolveSleeper(injector)
	if err != nil {
		return err
	}

	bootstrapOpts := []bootstrapper.Option{
		bootstrapper.WithWriter(cmd.OutOrStdout()),
		bootstrapper.WithTimer(helpers.MaybeTimer(cmd, tmr)),
	}

	if opts.WaitNodesTimeout > 0 {
		bootstrapOpts = append(bootstrapOpts, bootstrapper.WithNodeWaiter(
			bootstrapper.NewClientsetNodeWaiter(opts.Kubeconfig, opts.WaitNodesTimeout),
		))
	}

	flow := bootstrapper.New(
		k3dprovisioner.NewK3dClusterProvisioner(cmdRunner),
		verifier.NewVerifier(cmdRunner, verifier.WithDelay(opts.SettleDelay), verifier.WithSleeper(sleep)),
		bootstrapOpts...,
	)

	return flow.Run(cmd.Context(), opts.Spec)
}

func printDryRun(cmd *cobra.Command, opts createOptions) error {
	err := opts.Spec.Validate()
	if err != nil {
		return fmt.Errorf("invalid cluster spec %q: %w", opts.Spec.Name, err)
	}

	out, err := opts.Spec.ToYAML()
	if err != nil {
		return err //nolint:wrapcheck // already wrapped by ToYAML
	}

	invocation := runner.NewInvocation(k3dprovisioner.DefaultBinary, k3dprovisioner.CreateArgs(opts.Spec)...)

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s# %s\n", out, invocation)
	if err != nil {
		return fmt.Errorf("write dry-run output: %w", err)
	}

	return nil
}
