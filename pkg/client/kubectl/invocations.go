package kubectl

import "github.com/devantler-tech/k3d-manager/pkg/utils/runner"

// Binary is the kubectl executable looked up on PATH.
const Binary = "kubectl"

// GetNodesWide lists the cluster's nodes with extended columns.
func GetNodesWide() runner.Invocation {
	return runner.NewInvocation(Binary, "get", "nodes", "-o", "wide")
}

// UseContext switches the active kubeconfig context.
func UseContext(contextName string) runner.Invocation {
	return runner.NewInvocation(Binary, "config", "use-context", contextName)
}

// GetPodsAllNamespaces lists pods across every namespace.
func GetPodsAllNamespaces() runner.Invocation {
	return runner.NewInvocation(Binary, "get", "pods", "-A")
}

// GetServicesAllNamespaces lists services across every namespace.
func GetServicesAllNamespaces() runner.Invocation {
	return runner.NewInvocation(Binary, "get", "svc", "-A")
}
