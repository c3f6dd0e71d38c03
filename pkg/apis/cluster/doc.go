// Package cluster provides cluster topology API types.
//
//   - v1alpha1: the ClusterSpec handed from the CLI to the provisioner
package cluster
