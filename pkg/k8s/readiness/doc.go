// Package readiness polls a cluster until its nodes report Ready.
//
// Key features:
//   - Generic polling mechanism (PollForReadiness)
//   - Node readiness polling (WaitForNodesReady)
package readiness
