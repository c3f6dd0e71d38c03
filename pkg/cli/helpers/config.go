package helpers

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable k3d-manager reads,
// e.g. K3D_MANAGER_SERVERS for --servers.
const EnvPrefix = "K3D_MANAGER"

// LogLevelFlagName selects the logrus level for diagnostic output.
const LogLevelFlagName = "log-level"

// DefaultLogLevel keeps diagnostics quiet unless asked for.
const DefaultLogLevel = "warn"

// NewViper returns a viper instance that resolves keys from bound flags first,
// then K3D_MANAGER_* environment variables, then flag defaults. No config files are read.
func NewViper() *viper.Viper {
	viperInstance := viper.New()
	viperInstance.SetEnvPrefix(EnvPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viperInstance.AutomaticEnv()

	return viperInstance
}

// BindFlags binds every flag in flags to the viper key of the same name.
func BindFlags(viperInstance *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error

	flags.VisitAll(func(flag *pflag.Flag) {
		if bindErr != nil {
			return
		}

		err := viperInstance.BindPFlag(flag.Name, flag)
		if err != nil {
			bindErr = fmt.Errorf("bind flag %q: %w", flag.Name, err)
		}
	})

	return bindErr
}

// ConfigureLogging sets the global logrus level from level and directs output to writer.
func ConfigureLogging(level string, writer io.Writer) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", LogLevelFlagName, level, err)
	}

	logrus.SetLevel(parsed)
	logrus.SetOutput(writer)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return nil
}
