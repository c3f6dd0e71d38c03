package clusterprovisioner

import (
	"context"

	"github.com/devantler-tech/k3d-manager/pkg/apis/cluster/v1alpha1"
)

// ClusterProvisioner creates Kubernetes clusters.
type ClusterProvisioner interface {
	// Create requests a cluster matching spec. Success means the provisioning tool
	// reported a created cluster; it does not guarantee the API server is reachable yet.
	Create(ctx context.Context, spec v1alpha1.ClusterSpec) error
}
