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

// UpdateController handles the "update" subcommand.
type UpdateController struct {
	command     commands.Update
	environment *config.Environment
}

// NewUpdateController creates a new UpdateController.
func NewUpdateController(command commands.Update, environment *config.Environment) *UpdateController {
	return &UpdateController{command: command, environment: environment}
}

// GetBind returns the Cobra command metadata for the update controller.
func (it *UpdateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "update",
		Short: "Update the leafer dependencies of the current project",
		Long: `Compare every leafer dependency of package.json with the latest
published version and rewrite the outdated constraints to ^latest.`,
		Aliases: []string{"upgrade"},
	}
}

// AddFlags adds the update-specific flags to the given command.
func (it *UpdateController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("dry-run", false,
		"Show what would be done without making changes")
	cmd.Flags().BoolP("yes", "y", false,
		"Update without asking for confirmation")
}

// Execute lists the outdated dependencies and applies the update once confirmed.
func (it *UpdateController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd, it.environment)
	if err != nil {
		return err
	}
	messages := settings.Messages()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	yes, _ := cmd.Flags().GetBool("yes")

	plan, err := it.command.Check(context.Background(), settings, cwd)
	if err != nil {
		return err
	}
	if len(plan.Outdated) == 0 {
		logger.Infof("All leafer dependencies are on %s", plan.Latest)
		return nil
	}

	out := cmd.OutOrStdout()
	for _, dep := range plan.Outdated {
		fmt.Fprintln(out, commandStyle.Render(fmt.Sprintf("%s %s -> %s", dep.Name, dep.Current, entities.Caret(dep.Latest))))
	}

	if dryRun {
		logger.Infof("[DRY RUN] Would update %d dependencies", len(plan.Outdated))
		return nil
	}
	if !yes {
		ok, confirmErr := newPrompter(cmd).confirm(messages.ConfirmUpdate)
		if confirmErr != nil {
			return confirmErr
		}
		if !ok {
			logger.Info(messages.OperationCancelled)
			return nil
		}
	}

	if applyErr := it.command.Apply(plan); applyErr != nil {
		return applyErr
	}
	logger.Infof("Updated %d dependencies to %s", len(plan.Outdated), entities.Caret(plan.Latest))
	return nil
}
