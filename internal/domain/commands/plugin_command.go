package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/spf13/afero"

	"github.com/leaferjs/create-leafer/config"
	"github.com/leaferjs/create-leafer/internal/domain/entities"
	"github.com/leaferjs/create-leafer/internal/domain/repositories"
)

const (
	rollupConfigFile = "rollup.config.js"
	coreDependency   = "@leafer-ui/core"
	uiDependency     = "leafer-ui"
	maxPlatforms     = 4
)

var (
	// ErrInvalidPlatforms is returned for an empty or unknown platform selection.
	ErrInvalidPlatforms = errors.New("invalid platform selection")

	globalNameLine = regexp.MustCompile(`const globalName = 'LeaferX\.selector'`)
	platformsLine  = regexp.MustCompile(`const supportPlatforms = \['web','worker','node','miniapp'\]`)
)

// Plugin is the interface for the plugin command.
type Plugin interface {
	Execute(ctx context.Context, settings *config.Settings, opts PluginOptions) (*ScaffoldResult, error)
}

// PluginOptions holds the answers collected for a new leafer-x plugin.
type PluginOptions struct {
	Cwd         string
	ProjectName string
	PackageName string
	Platforms   []string
	Overwrite   bool
	InitGit     bool
}

// PluginCommand scaffolds a leafer-x plugin package.
type PluginCommand struct {
	scaffolder
}

// NewPluginCommand creates a new PluginCommand.
func NewPluginCommand(
	fs afero.Fs,
	versions repositories.VersionRepository,
	templates repositories.TemplateRepository,
	identity repositories.IdentityRepository,
	git repositories.GitRepository,
	packageManagers repositories.PackageManagerRepository,
) *PluginCommand {
	return &PluginCommand{scaffolder{
		fs:              fs,
		versions:        versions,
		templates:       templates,
		identity:        identity,
		git:             git,
		packageManagers: packageManagers,
	}}
}

// Execute generates the plugin described by opts.
func (it *PluginCommand) Execute(
	ctx context.Context,
	settings *config.Settings,
	opts PluginOptions,
) (*ScaffoldResult, error) {
	dir := targetDir(opts.ProjectName, "leafer-x-")
	packageName := entities.ResolvePackageName(opts.PackageName, dir)
	if !entities.IsValidPluginName(packageName) {
		return nil, fmt.Errorf("%w: %q must start with leafer-x", ErrInvalidPackageName, packageName)
	}

	platforms := opts.Platforms
	if len(platforms) == 0 {
		platforms = entities.Platforms()
	}
	if err := validatePlatforms(platforms); err != nil {
		return nil, err
	}

	return it.scaffold(ctx, settings, scaffoldJob{
		Cwd:         opts.Cwd,
		TargetDir:   dir,
		PackageName: packageName,
		Overwrite:   opts.Overwrite,
		InitGit:     opts.InitGit,
		Template:    entities.PluginTemplate,
		Script:      "start",
		Patch: func(root string, manifest *entities.Manifest, version string) error {
			if err := it.patchRollupConfig(root, entities.GlobalName(packageName), platforms); err != nil {
				return err
			}
			manifest.SetDependency(coreDependency, entities.Caret(version), false)
			manifest.SetDependency(uiDependency, entities.Caret(version), true)
			return nil
		},
	})
}

// patchRollupConfig writes the plugin global name and platforms into the
// bundled rollup configuration. A project without one is left alone.
func (it *PluginCommand) patchRollupConfig(root, globalName string, platforms []string) error {
	path := filepath.Join(root, rollupConfigFile)
	exists, err := afero.Exists(it.fs, path)
	if err != nil || !exists {
		return nil //nolint:nilerr // the rollup config is optional
	}

	content, err := afero.ReadFile(it.fs, path)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", path, err)
	}

	encoded, err := json.Marshal(platforms)
	if err != nil {
		return fmt.Errorf("failed to encode platforms: %w", err)
	}

	patched := globalNameLine.ReplaceAllLiteral(content, []byte("const globalName = '"+globalName+"'"))
	patched = platformsLine.ReplaceAllLiteral(patched, []byte("const supportPlatforms = "+string(encoded)))

	if writeErr := afero.WriteFile(it.fs, path, patched, fileMode); writeErr != nil {
		return fmt.Errorf("failed to write %q: %w", path, writeErr)
	}
	return nil
}

func validatePlatforms(platforms []string) error {
	if len(platforms) > maxPlatforms {
		return fmt.Errorf("%w: at most %d platforms", ErrInvalidPlatforms, maxPlatforms)
	}
	known := entities.Platforms()
	for _, platform := range platforms {
		if !slices.Contains(known, platform) {
			return fmt.Errorf("%w: unknown platform %q", ErrInvalidPlatforms, platform)
		}
	}
	return nil
}
