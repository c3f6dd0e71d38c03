// Package kubectl builds the kubectl invocations k3d-manager issues against a
// freshly created cluster.
//
// The builders only describe commands. Running them is left to a
// runner.CommandRunner, which forwards kubectl's own output to the operator.
package kubectl
