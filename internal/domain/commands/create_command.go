package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/leaferjs/create-leafer/config"
	"github.com/leaferjs/create-leafer/internal/domain/entities"
	"github.com/leaferjs/create-leafer/internal/domain/repositories"
)

// Create is the interface for the create command.
type Create interface {
	Execute(ctx context.Context, settings *config.Settings, opts CreateOptions) (*ScaffoldResult, error)
}

// CreateOptions holds the answers collected for a new application.
type CreateOptions struct {
	Cwd         string
	ProjectName string
	PackageName string
	Variant     string
	Overwrite   bool
	InitGit     bool
}

// CreateCommand scaffolds a leafer application from a framework template and
// pins every leafer dependency to the latest published version.
type CreateCommand struct {
	scaffolder
}

// NewCreateCommand creates a new CreateCommand.
func NewCreateCommand(
	fs afero.Fs,
	versions repositories.VersionRepository,
	templates repositories.TemplateRepository,
	identity repositories.IdentityRepository,
	git repositories.GitRepository,
	packageManagers repositories.PackageManagerRepository,
) *CreateCommand {
	return &CreateCommand{scaffolder{
		fs:              fs,
		versions:        versions,
		templates:       templates,
		identity:        identity,
		git:             git,
		packageManagers: packageManagers,
	}}
}

// Execute generates the project described by opts.
func (it *CreateCommand) Execute(
	ctx context.Context,
	settings *config.Settings,
	opts CreateOptions,
) (*ScaffoldResult, error) {
	templatePath, err := entities.VariantTemplate(opts.Variant)
	if err != nil {
		return nil, err
	}

	dir := targetDir(opts.ProjectName, entities.DefaultProjectName)
	packageName := entities.ResolvePackageName(opts.PackageName, dir)
	if packageName == "." {
		packageName = filepath.Base(opts.Cwd)
	}
	if !entities.IsValidNpmPackageName(packageName) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPackageName, packageName)
	}

	return it.scaffold(ctx, settings, scaffoldJob{
		Cwd:         opts.Cwd,
		TargetDir:   dir,
		PackageName: packageName,
		Overwrite:   opts.Overwrite,
		InitGit:     opts.InitGit,
		Template:    templatePath,
		Script:      "dev",
		Patch: func(_ string, manifest *entities.Manifest, version string) error {
			entities.UpdateLeaferDeps(manifest.Dependencies(), version)
			entities.UpdateLeaferDeps(manifest.DevDependencies(), version)
			return nil
		},
	})
}
