// Package k3dprovisioner creates k3d clusters by invoking the k3d CLI.
package k3dprovisioner

import (
	"context"
	"fmt"
	"strconv"

	"github.com/devantler-tech/k3d-manager/pkg/apis/cluster/v1alpha1"
	clusterprovisioner "github.com/devantler-tech/k3d-manager/pkg/svc/provisioner/cluster"
	"github.com/devantler-tech/k3d-manager/pkg/utils/runner"
	"github.com/sirupsen/logrus"
)

// DefaultBinary is the k3d executable resolved through PATH.
const DefaultBinary = "k3d"

// K3dClusterProvisioner creates clusters with `k3d cluster create`.
type K3dClusterProvisioner struct {
	binary string
	runner runner.CommandRunner
}

// Compile-time interface compliance verification.
var _ clusterprovisioner.ClusterProvisioner = (*K3dClusterProvisioner)(nil)

// NewK3dClusterProvisioner constructs a provisioner that runs k3d through cmdRunner.
func NewK3dClusterProvisioner(cmdRunner runner.CommandRunner) *K3dClusterProvisioner {
	return NewK3dClusterProvisionerWithBinary(cmdRunner, DefaultBinary)
}

// NewK3dClusterProvisionerWithBinary is like NewK3dClusterProvisioner but runs binary
// instead of DefaultBinary. An empty binary falls back to DefaultBinary.
func NewK3dClusterProvisionerWithBinary(
	cmdRunner runner.CommandRunner,
	binary string,
) *K3dClusterProvisioner {
	if binary == "" {
		binary = DefaultBinary
	}

	return &K3dClusterProvisioner{binary: binary, runner: cmdRunner}
}

// Create validates spec and runs the k3d create invocation once.
// Runner errors are wrapped with the cluster name; no retry or rollback is attempted,
// so partially created resources are left for the operator to clean up.
func (k *K3dClusterProvisioner) Create(ctx context.Context, spec v1alpha1.ClusterSpec) error {
	err := spec.Validate()
	if err != nil {
		return fmt.Errorf("invalid cluster spec %q: %w", spec.Name, err)
	}

	invocation := k.CreateInvocation(spec)

	logrus.WithFields(logrus.Fields{
		"cluster": spec.Name,
		"servers": spec.ControlPlanes,
		"agents":  spec.Workers,
		"wait":    spec.WaitForReady,
	}).Debug("creating k3d cluster")

	_, err = k.runner.Run(ctx, invocation)
	if err != nil {
		return fmt.Errorf("create cluster %q: %w", spec.Name, err)
	}

	return nil
}

// CreateInvocation builds the k3d invocation for spec without running it.
func (k *K3dClusterProvisioner) CreateInvocation(spec v1alpha1.ClusterSpec) runner.Invocation {
	return runner.Invocation{Name: k.binary, Args: CreateArgs(spec)}
}

// CreateArgs returns the arguments of `k3d cluster create` for spec:
//
//	cluster create <name> --servers <c> --agents <w> [--wait] [--port <p>]...
//
// The name is passed through verbatim.
func CreateArgs(spec v1alpha1.ClusterSpec) []string {
	args := []string{
		"cluster", "create", spec.Name,
		"--servers", strconv.Itoa(spec.ControlPlanes),
		"--agents", strconv.Itoa(spec.Workers),
	}

	if spec.WaitForReady {
		args = append(args, "--wait")
	}

	for _, port := range spec.Ports {
		args = append(args, "--port", port)
	}

	return args
}
