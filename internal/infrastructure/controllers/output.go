package controllers

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/leaferjs/create-leafer/internal/domain/commands"
	"github.com/leaferjs/create-leafer/internal/domain/entities"
)

//nolint:gochecknoglobals // shared terminal styles
var (
	doneStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	commandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).PaddingLeft(2)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// nextSteps lists the commands the user runs after a scaffold.
func nextSteps(result *commands.ScaffoldResult) []string {
	var steps []string
	if result.Root != result.Cwd {
		relative, err := filepath.Rel(result.Cwd, result.Root)
		if err != nil {
			relative = result.Root
		}
		if strings.Contains(relative, " ") {
			relative = `"` + relative + `"`
		}
		steps = append(steps, "cd "+relative)
	}
	steps = append(steps, entities.InstallCommand(result.PackageManager))
	if result.Script != "" {
		steps = append(steps, entities.ScriptCommand(result.PackageManager, result.Script))
	}
	return steps
}

func printNextSteps(w io.Writer, messages entities.Messages, result *commands.ScaffoldResult) {
	fmt.Fprintf(w, "\n%s\n\n", doneStyle.Render(messages.Done))
	for _, step := range nextSteps(result) {
		fmt.Fprintln(w, commandStyle.Render(step))
	}
	fmt.Fprintln(w)
}

func printDependencies(w io.Writer, deps []entities.PluginDependency, version string) {
	for _, dep := range deps {
		line := dep.Name + "@" + entities.Caret(version)
		if dep.Dev {
			line += dimStyle.Render(" (dev)")
		}
		fmt.Fprintln(w, commandStyle.Render(line))
	}
}
