// Package k8s builds client-go clients for the clusters k3d-manager creates.
//
// Kubeconfig resolution follows the standard client-go loading rules
// (KUBECONFIG, then ~/.kube/config) unless an explicit path is given, which
// matches where k3d writes the context for a new cluster.
//
// For node readiness polling, see the [readiness] sub-package.
package k8s
