package helpers

import (
	"errors"
	"fmt"

	"github.com/devantler-tech/k3d-manager/pkg/utils/timer"
	"github.com/spf13/cobra"
)

// TimingFlagName is the persistent flag that enables timing output on success markers.
const TimingFlagName = "timing"

var (
	// ErrNilCommand is returned when a flag is looked up on a nil command.
	ErrNilCommand = errors.New("command is nil")
	// ErrFlagNotFound is returned when a flag is not defined on the command or its parents.
	ErrFlagNotFound = errors.New("flag not found")
)

// IsTimingEnabled reports whether --timing is set on cmd, including inherited persistent flags.
func IsTimingEnabled(cmd *cobra.Command) (bool, error) {
	if cmd == nil {
		return false, fmt.Errorf("resolve %s flag: %w", TimingFlagName, ErrNilCommand)
	}

	flag := cmd.Flags().Lookup(TimingFlagName)
	if flag == nil {
		flag = cmd.InheritedFlags().Lookup(TimingFlagName)
	}

	if flag == nil {
		flag = cmd.PersistentFlags().Lookup(TimingFlagName)
	}

	if flag == nil {
		return false, fmt.Errorf("resolve %s flag: %w", TimingFlagName, ErrFlagNotFound)
	}

	return flag.Value.String() == "true", nil
}

// MaybeTimer returns tmr when timing output is enabled for cmd and nil otherwise.
func MaybeTimer(cmd *cobra.Command, tmr timer.Timer) timer.Timer {
	if tmr == nil {
		return nil
	}

	enabled, err := IsTimingEnabled(cmd)
	if err != nil || !enabled {
		return nil
	}

	return tmr
}
