package readiness

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// NodePollInterval is how often WaitForNodesReady lists nodes.
var NodePollInterval = time.Second

// WaitForNodesReady polls until at least expected nodes have condition Ready=True.
// An expected count below one is treated as one.
func WaitForNodesReady(
	ctx context.Context,
	clientset kubernetes.Interface,
	expected int,
	deadline time.Duration,
) error {
	expected = max(expected, 1)

	return PollForReadiness(ctx, deadline, NodePollInterval, func(ctx context.Context) (bool, error) {
		nodes, err := clientset.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
		if err != nil {
			// Continue polling on transient errors
			logrus.WithError(err).Debug("listing nodes failed, retrying")

			return false, nil //nolint:nilerr // returning nil to continue polling
		}

		ready := CountReadyNodes(nodes.Items)
		logrus.WithFields(logrus.Fields{"ready": ready, "expected": expected}).Debug("polled node readiness")

		return ready >= expected, nil
	})
}

// CountReadyNodes returns how many nodes have condition Ready=True.
func CountReadyNodes(nodes []corev1.Node) int {
	count := 0

	for i := range nodes {
		if isNodeReady(&nodes[i]) {
			count++
		}
	}

	return count
}

// isNodeReady returns true if the node has condition Ready=True.
func isNodeReady(node *corev1.Node) bool {
	for _, cond := range node.Status.Conditions {
		if cond.Type == corev1.NodeReady {
			return cond.Status == corev1.ConditionTrue
		}
	}

	return false
}
