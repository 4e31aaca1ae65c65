package commands

import (
	"context"
	"errors"
	"fmt"
	"slices"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/leaferjs/create-leafer/config"
	"github.com/leaferjs/create-leafer/internal/domain/entities"
	"github.com/leaferjs/create-leafer/internal/domain/repositories"
)

var (
	// ErrNoLeaferProject is returned when the manifest has no leafer dependency.
	ErrNoLeaferProject = errors.New("not a leafer project")

	// ErrUnknownPlugin is returned for a plugin outside the @leafer-in catalog.
	ErrUnknownPlugin = errors.New("unknown plugin")

	// ErrUnknownScene is returned for a scene outside the known bundles.
	ErrUnknownScene = errors.New("unknown scene")
)

// Add is the interface for the add command.
type Add interface {
	Execute(ctx context.Context, settings *config.Settings, opts AddOptions) (*AddResult, error)
}

// AddOptions selects what to add to the project in Cwd.
type AddOptions struct {
	Cwd     string
	Scene   string
	Plugins []string
}

// AddResult lists the dependencies written to the manifest.
type AddResult struct {
	ScaffoldResult

	Added []entities.PluginDependency
}

// AddCommand adds scene and @leafer-in plugin dependencies to an existing project.
type AddCommand struct {
	fs              afero.Fs
	versions        repositories.VersionRepository
	packageManagers repositories.PackageManagerRepository
}

// NewAddCommand creates a new AddCommand.
func NewAddCommand(
	fs afero.Fs,
	versions repositories.VersionRepository,
	packageManagers repositories.PackageManagerRepository,
) *AddCommand {
	return &AddCommand{fs: fs, versions: versions, packageManagers: packageManagers}
}

// Execute writes the requested dependencies into the manifest found in opts.Cwd.
func (it *AddCommand) Execute(
	ctx context.Context,
	settings *config.Settings,
	opts AddOptions,
) (*AddResult, error) {
	manifest, err := readManifest(it.fs, opts.Cwd)
	if err != nil {
		return nil, err
	}
	deps := manifest.DependencyNames()
	if !slices.ContainsFunc(deps, entities.IsLeaferPackage) {
		return nil, fmt.Errorf("%w: %s", ErrNoLeaferProject, manifestPath(opts.Cwd))
	}

	scene := opts.Scene
	if scene == "" {
		scene = entities.SceneFromDeps(deps)
	}
	if !slices.Contains(entities.Scenes(), scene) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, scene)
	}
	platform := entities.PlatformFromDeps(deps)

	plugins := entities.ExpandPluginPresets(opts.Plugins)
	known := entities.LeaferInPlugins()
	for _, plugin := range plugins {
		if !slices.Contains(known, plugin) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPlugin, plugin)
		}
	}

	version := it.versions.LatestVersion(ctx, settings.VersionQuery(entities.LeaferPackage))
	logger.Debugf("Adding to %s scene on %s with leafer %s", scene, platform, version)

	added := entities.PluginDependencies(scene, platform, plugins)
	for _, dep := range added {
		manifest.SetDependency(dep.Name, entities.Caret(version), dep.Dev)
	}
	if writeErr := writeManifest(it.fs, opts.Cwd, manifest); writeErr != nil {
		return nil, writeErr
	}

	return &AddResult{
		ScaffoldResult: ScaffoldResult{
			Root:           opts.Cwd,
			Cwd:            opts.Cwd,
			PackageName:    manifest.StringField("name"),
			Version:        version,
			PackageManager: it.packageManagers.Detect(opts.Cwd),
			Script:         "dev",
		},
		Added: added,
	}, nil
}
