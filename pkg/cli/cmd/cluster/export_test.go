package cluster

import "github.com/spf13/cobra"

// SetHelpRunnerForTest swaps the help runner and returns a restore function.
func SetHelpRunnerForTest(fn func(*cobra.Command) error) func() {
	previous := helpRunner
	helpRunner = fn

	return func() { helpRunner = previous }
}
