package controllers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/leaferjs/create-leafer/config"
	"github.com/leaferjs/create-leafer/internal/domain/commands"
	"github.com/leaferjs/create-leafer/internal/domain/entities"
)

// PluginController handles the "plugin" subcommand.
type PluginController struct {
	command     commands.Plugin
	fs          afero.Fs
	environment *config.Environment
}

// NewPluginController creates a new PluginController.
func NewPluginController(
	command commands.Plugin,
	fs afero.Fs,
	environment *config.Environment,
) *PluginController {
	return &PluginController{command: command, fs: fs, environment: environment}
}

// GetBind returns the Cobra command metadata for the plugin controller.
func (it *PluginController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "plugin [project-name]",
		Short: "Scaffold a new leafer-x plugin",
		Long: `Scaffold a leafer-x plugin package built with rollup.

The plugin global name is derived from the package name, e.g.
leafer-x-dot-matrix is exposed as LeaferX.DotMatrix.`,
	}
}

// AddFlags adds the plugin-specific flags to the given command.
func (it *PluginController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("package-name", "",
		"Plugin package name, must start with leafer-x")
	cmd.Flags().StringSlice("platforms", nil,
		"Supported platforms: web, worker, node, miniapp (default: all)")
	cmd.Flags().Bool("overwrite", false,
		"Empty the target directory when it is not empty")
	cmd.Flags().Bool("git", false,
		"Initialize a git repository in the new project")
	cmd.Flags().BoolP("yes", "y", false,
		"Accept the defaults instead of prompting")
}

// Execute asks for the missing answers and scaffolds the plugin.
func (it *PluginController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd, it.environment)
	if err != nil {
		return err
	}
	messages := settings.Messages()
	prompt := newPrompter(cmd)

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	yes, _ := cmd.Flags().GetBool("yes")
	overwrite, _ := cmd.Flags().GetBool("overwrite")
	initGit, _ := cmd.Flags().GetBool("git")
	packageName, _ := cmd.Flags().GetString("package-name")
	platforms, _ := cmd.Flags().GetStringSlice("platforms")

	projectName := ""
	if len(args) > 0 {
		projectName = strings.TrimSpace(args[0])
	}
	if projectName == "" && !yes {
		if projectName, err = prompt.text(messages.ProjectName, "leafer-x-"); err != nil {
			return err
		}
	}
	if projectName == "" {
		return fmt.Errorf("%s: project name is required", messages.InvalidPackageName)
	}

	if !overwrite && !commands.CanSkipOverwrite(it.fs, filepath.Join(cwd, projectName)) {
		if overwrite, err = askOverwrite(prompt, messages, projectName, yes); err != nil {
			return err
		}
	}

	if packageName == "" {
		packageName = projectName
		if !entities.IsValidPluginName(packageName) && !yes {
			fmt.Fprintln(cmd.OutOrStdout(), messages.PackageNameHint)
			suggestion := entities.ToValidPluginName(projectName)
			if packageName, err = prompt.text(messages.PackageName, suggestion); err != nil {
				return err
			}
		}
	}

	if len(platforms) == 0 && !yes {
		if platforms, err = prompt.selectMany(
			messages.Platforms, messages.PlatformsHint, entities.Platforms(), entities.Platforms(),
		); err != nil {
			return err
		}
	}

	result, err := it.command.Execute(context.Background(), settings, commands.PluginOptions{
		Cwd:         cwd,
		ProjectName: projectName,
		PackageName: packageName,
		Platforms:   platforms,
		Overwrite:   overwrite,
		InitGit:     initGit,
	})
	if err != nil {
		return err
	}

	printNextSteps(cmd.OutOrStdout(), messages, result)
	return nil
}
