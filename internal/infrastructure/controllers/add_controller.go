package controllers

import (
	"context"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/leaferjs/create-leafer/config"
	"github.com/leaferjs/create-leafer/internal/domain/commands"
	"github.com/leaferjs/create-leafer/internal/domain/entities"
)

// AddController handles the "add" subcommand.
type AddController struct {
	command     commands.Add
	environment *config.Environment
}

// NewAddController creates a new AddController.
func NewAddController(command commands.Add, environment *config.Environment) *AddController {
	return &AddController{command: command, environment: environment}
}

// GetBind returns the Cobra command metadata for the add controller.
func (it *AddController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "add [plugins...]",
		Short: "Add @leafer-in plugins to the current project",
		Long: `Add the scene package and @leafer-in plugins to the package.json of the
current leafer project. The presets "editor" and "game" expand to the
plugins bundled by those scenes.`,
	}
}

// AddFlags adds the add-specific flags to the given command.
func (it *AddController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("scene", "",
		"Scene to depend on: ui, draw, game, editor, full (default: detected)")
}

// Execute adds the plugins given as arguments, prompting when there are none.
func (it *AddController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd, it.environment)
	if err != nil {
		return err
	}
	messages := settings.Messages()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	scene, _ := cmd.Flags().GetString("scene")
	plugins := args
	if len(plugins) == 0 {
		if plugins, err = newPrompter(cmd).selectMany(
			messages.Plugins, messages.PluginsHint, entities.LeaferInPlugins(), nil,
		); err != nil {
			return err
		}
	}

	result, err := it.command.Execute(context.Background(), settings, commands.AddOptions{
		Cwd:     cwd,
		Scene:   scene,
		Plugins: plugins,
	})
	if err != nil {
		return err
	}

	logger.Infof("Added %d dependencies to %s", len(result.Added), entities.ManifestFileName)
	printDependencies(cmd.OutOrStdout(), result.Added, result.Version)
	printNextSteps(cmd.OutOrStdout(), messages, &result.ScaffoldResult)
	return nil
}
