// Package apis provides API type definitions for k3d-manager resources.
//
//   - cluster: the cluster topology requested from k3d
package apis
