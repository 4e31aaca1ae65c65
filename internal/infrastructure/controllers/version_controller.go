package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leaferjs/create-leafer/config"
	"github.com/leaferjs/create-leafer/internal/domain/commands"
	"github.com/leaferjs/create-leafer/internal/domain/entities"
)

// VersionController handles the "version" subcommand.
type VersionController struct {
	command     commands.Version
	environment *config.Environment
}

// NewVersionController creates a new VersionController.
func NewVersionController(command commands.Version, environment *config.Environment) *VersionController {
	return &VersionController{command: command, environment: environment}
}

// GetBind returns the Cobra command metadata for the version controller.
func (it *VersionController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "version",
		Short: "Print the latest published version of a package",
		Long: `Resolve the latest version of a package the same way new projects do:
the local npm first, then the registries, then the default version.`,
	}
}

// AddFlags adds the version-specific flags to the given command.
func (it *VersionController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("package", "p", entities.LeaferPackage,
		"Package to look up")
}

// Execute prints the resolved version.
func (it *VersionController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd, it.environment)
	if err != nil {
		return err
	}
	packageName, _ := cmd.Flags().GetString("package")

	fmt.Fprintln(cmd.OutOrStdout(), it.command.Execute(context.Background(), settings, packageName))
	return nil
}
