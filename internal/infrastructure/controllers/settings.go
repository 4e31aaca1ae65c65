package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/leaferjs/create-leafer/config"
)

// AddGlobalFlags registers the flags shared by every controller.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().String("registry", "",
		"Primary npm registry (overrides npm_config_registry)")
	cmd.PersistentFlags().Bool("sequential", false,
		"Query registries one after another instead of racing them")
	cmd.PersistentFlags().Duration("timeout", 0,
		"Timeout of each version lookup, e.g. 5s")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")
}

// loadSettings builds the Settings of one invocation from the environment and the global flags.
func loadSettings(cmd *cobra.Command, environment *config.Environment) (*config.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	registry, _ := cmd.Flags().GetString("registry")
	sequential, _ := cmd.Flags().GetBool("sequential")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if verbose || environment.Debug {
		logger.SetLevel(logger.DebugLevel)
	}

	return config.NewSettings(environment, config.Overrides{
		ConfigPath: configPath,
		Registry:   registry,
		Sequential: sequential,
		Timeout:    timeout,
	})
}
