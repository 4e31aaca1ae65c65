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

const defaultVariant = "vanilla-ts"

// CreateController handles the root command and the "create" subcommand.
type CreateController struct {
	command     commands.Create
	fs          afero.Fs
	environment *config.Environment
}

// NewCreateController creates a new CreateController.
func NewCreateController(
	command commands.Create,
	fs afero.Fs,
	environment *config.Environment,
) *CreateController {
	return &CreateController{command: command, fs: fs, environment: environment}
}

// GetBind returns the Cobra command metadata for the create controller.
func (it *CreateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "create [project-name]",
		Short: "Scaffold a new leafer project",
		Long: `Scaffold a new leafer project from one of the bundled templates.

Every leafer dependency of the template is pinned to the latest published
version, looked up with the local npm and the configured registries.`,
		Aliases: []string{"init"},
	}
}

// AddFlags adds the create-specific flags to the given command.
func (it *CreateController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("template", "t", "",
		"Template variant, e.g. vanilla-ts, vue-js, react-ts")
	cmd.Flags().String("package-name", "",
		"Package name written to package.json (default: project name)")
	cmd.Flags().Bool("overwrite", false,
		"Empty the target directory when it is not empty")
	cmd.Flags().Bool("git", false,
		"Initialize a git repository in the new project")
	cmd.Flags().BoolP("yes", "y", false,
		"Accept the defaults instead of prompting")
}

// Execute asks for the missing answers and scaffolds the project.
func (it *CreateController) Execute(cmd *cobra.Command, args []string) error {
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
	variant, _ := cmd.Flags().GetString("template")

	projectName := ""
	if len(args) > 0 {
		projectName = strings.TrimSpace(args[0])
	}
	if projectName == "" && !yes {
		if projectName, err = prompt.text(messages.ProjectName, entities.DefaultProjectName); err != nil {
			return err
		}
	}
	if projectName == "" {
		projectName = entities.DefaultProjectName
	}

	if !overwrite && !commands.CanSkipOverwrite(it.fs, filepath.Join(cwd, projectName)) {
		if overwrite, err = askOverwrite(prompt, messages, projectName, yes); err != nil {
			return err
		}
	}

	if packageName == "" {
		if packageName, err = askPackageName(prompt, messages, projectName, cwd, yes); err != nil {
			return err
		}
	}

	if variant == "" {
		if variant, err = askVariant(prompt, messages, yes); err != nil {
			return err
		}
	}

	result, err := it.command.Execute(context.Background(), settings, commands.CreateOptions{
		Cwd:         cwd,
		ProjectName: projectName,
		PackageName: packageName,
		Variant:     variant,
		Overwrite:   overwrite,
		InitGit:     initGit,
	})
	if err != nil {
		return err
	}

	printNextSteps(cmd.OutOrStdout(), messages, result)
	return nil
}

func askOverwrite(prompt *prompter, messages entities.Messages, projectName string, yes bool) (bool, error) {
	if yes {
		return false, fmt.Errorf("%w: %s", commands.ErrTargetNotEmpty, projectName)
	}
	label := fmt.Sprintf("%s %q %s", messages.OverwriteTarget, projectName, messages.Overwrite)
	if projectName == "." {
		label = messages.OverwriteCurrent + " " + messages.Overwrite
	}
	ok, err := prompt.confirm(label)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, ErrOperationCancelled
	}
	return true, nil
}

func askPackageName(
	prompt *prompter,
	messages entities.Messages,
	projectName, cwd string,
	yes bool,
) (string, error) {
	candidate := projectName
	if candidate == "." {
		candidate = filepath.Base(cwd)
	}
	if entities.IsValidNpmPackageName(candidate) {
		return candidate, nil
	}

	suggestion := entities.ToValidPackageName(candidate)
	if yes {
		return suggestion, nil
	}
	answer, err := prompt.text(messages.PackageName, suggestion)
	if err != nil {
		return "", err
	}
	if !entities.IsValidNpmPackageName(answer) {
		return "", fmt.Errorf("%s: %q", messages.InvalidPackageName, answer)
	}
	return answer, nil
}

func askVariant(prompt *prompter, messages entities.Messages, yes bool) (string, error) {
	if yes {
		return defaultVariant, nil
	}

	frameworks := entities.Frameworks()
	names := make([]string, 0, len(frameworks))
	for _, framework := range frameworks {
		names = append(names, framework.Display)
	}
	frameworkIdx, err := prompt.selectOne(messages.Framework, names)
	if err != nil {
		return "", err
	}

	variants := frameworks[frameworkIdx].Variants
	names = names[:0]
	for _, variant := range variants {
		names = append(names, variant.Display)
	}
	variantIdx, err := prompt.selectOne(messages.Variant, names)
	if err != nil {
		return "", err
	}
	return variants[variantIdx].Name, nil
}
