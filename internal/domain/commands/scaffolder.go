package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/leaferjs/create-leafer/config"
	"github.com/leaferjs/create-leafer/internal/domain/entities"
	"github.com/leaferjs/create-leafer/internal/domain/repositories"
)

// scaffoldJob describes one project generation.
type scaffoldJob struct {
	Cwd         string
	TargetDir   string
	PackageName string
	Overwrite   bool
	InitGit     bool
	Template    string
	Script      string

	// Patch adjusts the rendered project once the manifest holds name and author.
	Patch func(root string, manifest *entities.Manifest, version string) error
}

// scaffolder owns the steps shared by the create and plugin commands.
type scaffolder struct {
	fs              afero.Fs
	versions        repositories.VersionRepository
	templates       repositories.TemplateRepository
	identity        repositories.IdentityRepository
	git             repositories.GitRepository
	packageManagers repositories.PackageManagerRepository
}

func (it *scaffolder) scaffold(
	ctx context.Context,
	settings *config.Settings,
	job scaffoldJob,
) (*ScaffoldResult, error) {
	root := filepath.Join(job.Cwd, job.TargetDir)

	version := it.versions.LatestVersion(ctx, settings.VersionQuery(entities.LeaferPackage))
	logger.Infof("Using leafer %s", version)

	if err := prepareTargetDir(it.fs, root, job.Overwrite); err != nil {
		return nil, err
	}

	author := it.identity.Author(ctx)
	base := entities.NewManifest(job.PackageName, scaffoldVersion, author)
	if err := writeManifest(it.fs, root, base); err != nil {
		return nil, err
	}

	if err := it.templates.Render(job.Template, root, settings.RenderOptions()); err != nil {
		return nil, fmt.Errorf("failed to render template %q: %w", job.Template, err)
	}

	manifest, err := readManifest(it.fs, root)
	if err != nil {
		return nil, err
	}
	manifest.SetStringField("name", job.PackageName)
	manifest.SetStringField("author", author)
	if job.Patch != nil {
		if patchErr := job.Patch(root, manifest, version); patchErr != nil {
			return nil, patchErr
		}
	}
	if writeErr := writeManifest(it.fs, root, manifest); writeErr != nil {
		return nil, writeErr
	}

	if job.InitGit {
		if gitErr := it.git.Init(root); gitErr != nil {
			return nil, gitErr
		}
	}

	return &ScaffoldResult{
		Root:           root,
		Cwd:            job.Cwd,
		PackageName:    job.PackageName,
		Version:        version,
		PackageManager: it.packageManagers.Detect(root),
		Script:         job.Script,
	}, nil
}

// targetDir trims the project name, falling back to fallback when blank.
func targetDir(projectName, fallback string) string {
	if trimmed := strings.TrimSpace(projectName); trimmed != "" {
		return trimmed
	}
	return fallback
}
