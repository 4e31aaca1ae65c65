//go:build unit

package controllers_test

import (
	"bytes"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leaferjs/create-leafer/internal/domain/entities"
	"github.com/leaferjs/create-leafer/internal/infrastructure/controllers"
)

// newCobraCommand builds a command carrying the controller flags, the given
// stdin and a captured stdout.
func newCobraCommand(controller entities.Controller, input string, flags map[string]string) (*cobra.Command, *bytes.Buffer) {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{Use: controller.GetBind().Use}
	controllers.AddGlobalFlags(cmd)
	controller.AddFlags(cmd)

	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	args := make([]string, 0, len(flags))
	for name, value := range flags {
		args = append(args, "--"+name+"="+value)
	}
	if err := cmd.ParseFlags(args); err != nil {
		panic(err)
	}
	return cmd, &out
}
