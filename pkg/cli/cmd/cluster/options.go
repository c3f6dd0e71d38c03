package cluster

import (
	"time"

	"github.com/devantler-tech/k3d-manager/pkg/apis/cluster/v1alpha1"
	"github.com/devantler-tech/k3d-manager/pkg/svc/verifier"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Flag names double as viper keys and, upper-cased with the K3D_MANAGER_ prefix,
// as environment variable names.
const (
	nameFlag             = "name"
	serversFlag          = "servers"
	agentsFlag           = "agents"
	waitFlag             = "wait"
	portFlag             = "port"
	settleDelayFlag      = "settle-delay"
	waitNodesTimeoutFlag = "wait-nodes-timeout"
	kubeconfigFlag       = "kubeconfig"
	dryRunFlag           = "dry-run"
)

// createOptions is everything a bootstrap run needs, resolved once before it starts.
type createOptions struct {
	Spec             v1alpha1.ClusterSpec
	SettleDelay      time.Duration
	WaitNodesTimeout time.Duration
	Kubeconfig       string
	DryRun           bool
}

// defaultCreateOptions is the compiled-in bootstrap run.
func defaultCreateOptions() createOptions {
	return createOptions{
		Spec:        v1alpha1.NewDefaultClusterSpec(),
		SettleDelay: verifier.DefaultSettleDelay,
	}
}

func addCreateFlags(flags *pflag.FlagSet) {
	defaults := defaultCreateOptions()

	flags.String(nameFlag, defaults.Spec.Name, "Name of the cluster")
	flags.Int(serversFlag, defaults.Spec.ControlPlanes, "Number of control-plane (server) nodes")
	flags.Int(agentsFlag, defaults.Spec.Workers, "Number of worker (agent) nodes")
	flags.Bool(waitFlag, defaults.Spec.WaitForReady, "Ask k3d to wait until the cluster reports ready")
	flags.StringArray(portFlag, nil,
		"Port mapping passed to k3d (repeatable), e.g. 8080:80@loadbalancer")
	flags.Duration(settleDelayFlag, defaults.SettleDelay, "Pause between creation and the node listing")
	flags.Duration(waitNodesTimeoutFlag, 0,
		"Wait up to this long for every node to report Ready through the Kubernetes API (0 disables)")
	flags.String(kubeconfigFlag, "", "Kubeconfig used by --wait-nodes-timeout (defaults to KUBECONFIG or ~/.kube/config)")
	flags.Bool(dryRunFlag, false, "Print the resolved cluster spec and k3d invocation without running anything")
}

func createOptionsFromViper(viperInstance *viper.Viper) createOptions {
	return createOptions{
		Spec: v1alpha1.ClusterSpec{
			Name:          viperInstance.GetString(nameFlag),
			ControlPlanes: viperInstance.GetInt(serversFlag),
			Workers:       viperInstance.GetInt(agentsFlag),
			WaitForReady:  viperInstance.GetBool(waitFlag),
			Ports:         viperInstance.GetStringSlice(portFlag),
		},
		SettleDelay:      viperInstance.GetDuration(settleDelayFlag),
		WaitNodesTimeout: viperInstance.GetDuration(waitNodesTimeoutFlag),
		Kubeconfig:       viperInstance.GetString(kubeconfigFlag),
		DryRun:           viperInstance.GetBool(dryRunFlag),
	}
}
