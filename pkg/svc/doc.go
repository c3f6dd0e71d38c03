// Package svc provides service layer components for k3d-manager.
//
// Subpackages:
//   - bootstrapper: the create, settle, list and optional node wait flow
//   - provisioner: cluster creation through the k3d CLI
//   - verifier: settle delay followed by a kubectl node listing
package svc
