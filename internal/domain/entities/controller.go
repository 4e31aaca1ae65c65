package entities

import "github.com/spf13/cobra"

// ControllerBind carries the Cobra metadata of a controller.
type ControllerBind struct {
	Use     string
	Short   string
	Long    string
	Aliases []string
}

// Controller is a CLI entry point bound to a Cobra command. A returned error
// makes the process exit with a non-zero status.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string) error
	AddFlags(cmd *cobra.Command)
}
