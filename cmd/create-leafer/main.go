package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/leaferjs/create-leafer/internal"
	"github.com/leaferjs/create-leafer/internal/infrastructure/controllers"
)

// version is set at build time with -ldflags "-X main.version=...".
//
//nolint:gochecknoglobals // build metadata
var version = "dev"

func buildRootCommand(createController *controllers.CreateController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "create-leafer [project-name]",
		Short: "Scaffold leafer projects and plugins",
		Long: `Scaffold leafer projects from bundled templates and keep their leafer
dependencies on the latest published release.

Usage modes:
  create-leafer my-app          Create a project (same as "create-leafer create")
  create-leafer plugin my-x     Create a leafer-x plugin
  create-leafer add editor      Add @leafer-in plugins to the current project
  create-leafer update          Update the leafer dependencies of the current project`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          createController.Execute,
	}

	controllers.AddGlobalFlags(cmd)
	createController.AddFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:     bind.Use,
			Short:   bind.Short,
			Long:    bind.Long,
			Aliases: bind.Aliases,
			RunE:    controller.Execute,
		}

		// Add controller-specific flags
		controller.AddFlags(subCmd)

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	appContext := injectAppContext()
	cobraRoot := buildRootCommand(appContext.GetCreateController())

	// Add all subcommands
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'create-leafer': %s", err)
	}
}
