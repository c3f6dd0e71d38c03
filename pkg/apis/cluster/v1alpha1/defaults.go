package v1alpha1

const (
	// DefaultClusterName is the name of the compiled-in cluster.
	DefaultClusterName = "rusty-cluster"
	// DefaultControlPlanes is the compiled-in number of server nodes.
	DefaultControlPlanes = 3
	// DefaultWorkers is the compiled-in number of agent nodes.
	DefaultWorkers = 3
	// DefaultWaitForReady is the compiled-in k3d --wait behaviour.
	DefaultWaitForReady = true
	// ContextPrefix is prepended by k3d to cluster names to form kubeconfig contexts.
	ContextPrefix = "k3d-"
)

// NewDefaultClusterSpec returns the compiled-in topology: three servers, three agents,
// blocking on k3d's readiness signal.
func NewDefaultClusterSpec() ClusterSpec {
	return ClusterSpec{
		Name:          DefaultClusterName,
		ControlPlanes: DefaultControlPlanes,
		Workers:       DefaultWorkers,
		WaitForReady:  DefaultWaitForReady,
	}
}
