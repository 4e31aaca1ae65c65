package commands

import (
	"context"
	"strings"

	"github.com/leaferjs/create-leafer/config"
	"github.com/leaferjs/create-leafer/internal/domain/entities"
	"github.com/leaferjs/create-leafer/internal/domain/repositories"
)

// Version is the interface for the version command.
type Version interface {
	Execute(ctx context.Context, settings *config.Settings, packageName string) string
}

// VersionCommand resolves the latest published version of a package.
type VersionCommand struct {
	versions repositories.VersionRepository
}

// NewVersionCommand creates a new VersionCommand.
func NewVersionCommand(versions repositories.VersionRepository) *VersionCommand {
	return &VersionCommand{versions: versions}
}

// Execute returns the latest version of packageName, defaulting to leafer.
func (it *VersionCommand) Execute(ctx context.Context, settings *config.Settings, packageName string) string {
	name := strings.TrimSpace(packageName)
	if name == "" {
		name = entities.LeaferPackage
	}
	return it.versions.LatestVersion(ctx, settings.VersionQuery(name))
}
