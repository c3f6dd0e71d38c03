// Package clusterprovisioner defines the contract for creating clusters through an
// external provisioning tool.
//
// Distribution-specific implementations live in subpackages (see k3d) and translate a
// v1alpha1.ClusterSpec into an invocation of that tool.
package clusterprovisioner
