// Package bootstrapper runs the k3d-manager bootstrap flow: create the cluster,
// let it settle, list its nodes and optionally wait for every node to report
// Ready.
//
// The flow is strictly linear. The first failing step stops it and its error
// is returned wrapped with the step that failed, so callers can still match
// runner errors with errors.As.
package bootstrapper
