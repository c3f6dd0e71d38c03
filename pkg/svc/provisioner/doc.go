// Package provisioner provides cluster provisioning services.
//
//   - cluster: the ClusterProvisioner contract and its k3d implementation
package provisioner
