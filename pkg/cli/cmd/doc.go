// Package cmd provides the command-line interface for k3d-manager.
//
// Running the root command without a subcommand bootstraps the compiled-in
// cluster. The cluster subcommand package exposes the same flow with flags
// together with cluster inspection.
package cmd
