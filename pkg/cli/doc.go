// Package cli provides the command tree and the helpers used to wire it.
//
//   - cli/cmd: root command and the cluster command group
//   - cli/helpers: timing detection, viper binding and log level setup
//   - cli/ui/errorhandler: cobra execution with normalized error messages and exit codes
//
// Commands resolve their collaborators from the di runtime container so tests
// can replace the command runner and sleeper.
package cli
