// Package v1alpha1 defines the cluster topology requested from the provisioning tool.
package v1alpha1

import "fmt"

const (
	// APIVersion is the version string used when rendering a ClusterSpec.
	APIVersion = "k3d-manager.devantler.tech/v1alpha1"
	// Kind is the kind string used when rendering a ClusterSpec.
	Kind = "Cluster"
)

// ClusterSpec describes the desired topology of a k3d cluster.
// It is built once at the top of a run and passed by value afterwards.
type ClusterSpec struct {
	// Name identifies the cluster and namespaces every resource k3d creates for it.
	Name string `json:"name"`
	// ControlPlanes is the number of server nodes. Must be at least 1.
	ControlPlanes int `json:"controlPlanes"`
	// Workers is the number of agent nodes. May be 0.
	Workers int `json:"workers"`
	// WaitForReady asks k3d to block until its own readiness signal fires.
	WaitForReady bool `json:"waitForReady"`
	// Ports are k3d port mappings such as "8080:80@loadbalancer".
	Ports []string `json:"ports,omitempty"`
}

// ContextName returns the kubeconfig context k3d writes for the cluster.
func (s ClusterSpec) ContextName() string {
	return ContextPrefix + s.Name
}

// String implements fmt.Stringer.
func (s ClusterSpec) String() string {
	return fmt.Sprintf(
		"%s (control-planes=%d, workers=%d, wait=%t)",
		s.Name, s.ControlPlanes, s.Workers, s.WaitForReady,
	)
}
