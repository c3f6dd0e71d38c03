package bootstrapper

import (
	"context"
	"fmt"
	"time"

	"github.com/devantler-tech/k3d-manager/pkg/apis/cluster/v1alpha1"
	"github.com/devantler-tech/k3d-manager/pkg/k8s"
	"github.com/devantler-tech/k3d-manager/pkg/k8s/readiness"
	"k8s.io/client-go/kubernetes"
)

// ClientsetFactory returns a clientset for the named kubeconfig context.
type ClientsetFactory func(contextName string) (kubernetes.Interface, error)

// ClientsetNodeWaiter waits for nodes through the Kubernetes API.
type ClientsetNodeWaiter struct {
	timeout      time.Duration
	newClientset ClientsetFactory
}

var _ NodeWaiter = (*ClientsetNodeWaiter)(nil)

// NewClientsetNodeWaiter creates a NodeWaiter that reads kubeconfig (empty for the
// default loading rules) and waits up to timeout.
func NewClientsetNodeWaiter(kubeconfig string, timeout time.Duration) *ClientsetNodeWaiter {
	return NewClientsetNodeWaiterWithFactory(timeout, func(contextName string) (kubernetes.Interface, error) {
		return k8s.NewClientset(kubeconfig, contextName)
	})
}

// NewClientsetNodeWaiterWithFactory is like NewClientsetNodeWaiter with a custom clientset factory.
func NewClientsetNodeWaiterWithFactory(timeout time.Duration, factory ClientsetFactory) *ClientsetNodeWaiter {
	return &ClientsetNodeWaiter{timeout: timeout, newClientset: factory}
}

// WaitForNodes waits until control planes plus workers nodes are Ready in the
// context k3d created for spec.
func (w *ClientsetNodeWaiter) WaitForNodes(ctx context.Context, spec v1alpha1.ClusterSpec) error {
	clientset, err := w.newClientset(spec.ContextName())
	if err != nil {
		return fmt.Errorf("connect to cluster %q: %w", spec.Name, err)
	}

	err = readiness.WaitForNodesReady(ctx, clientset, spec.ControlPlanes+spec.Workers, w.timeout)
	if err != nil {
		return fmt.Errorf("wait for %d nodes: %w", spec.ControlPlanes+spec.Workers, err)
	}

	return nil
}
