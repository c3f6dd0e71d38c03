package kubectl_test

import (
	"testing"

	"github.com/devantler-tech/k3d-manager/pkg/client/kubectl"
	"github.com/devantler-tech/k3d-manager/pkg/utils/runner"
	"github.com/stretchr/testify/assert"
)

func TestInvocations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		invocation runner.Invocation
		want       string
	}{
		{name: "nodes wide", invocation: kubectl.GetNodesWide(), want: "kubectl get nodes -o wide"},
		{
			name:       "use context",
			invocation: kubectl.UseContext("k3d-rusty-cluster"),
			want:       "kubectl config use-context k3d-rusty-cluster",
		},
		{name: "pods", invocation: kubectl.GetPodsAllNamespaces(), want: "kubectl get pods -A"},
		{name: "services", invocation: kubectl.GetServicesAllNamespaces(), want: "kubectl get svc -A"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, kubectl.Binary, tc.invocation.Name)
			assert.Equal(t, tc.want, tc.invocation.String())
		})
	}
}

func TestGetNodesWide_ExactArgs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"get", "nodes", "-o", "wide"}, kubectl.GetNodesWide().Args)
}
