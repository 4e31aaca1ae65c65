package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/leaferjs/create-leafer/internal/domain/entities"
)

const (
	scaffoldVersion = "0.0.0"
	gitDir          = ".git"
	dirMode         = 0o755
	fileMode        = 0o644
)

var (
	// ErrTargetNotEmpty is returned when the target directory has content and overwriting was not allowed.
	ErrTargetNotEmpty = errors.New("target directory is not empty")

	// ErrInvalidPackageName is returned when the manifest name would be rejected by npm.
	ErrInvalidPackageName = errors.New("invalid package name")

	// ErrManifestNotFound is returned when a command needs an existing package.json.
	ErrManifestNotFound = errors.New("no package.json found")
)

// ScaffoldResult describes a generated or updated project.
type ScaffoldResult struct {
	Root           string
	Cwd            string
	PackageName    string
	Version        string
	PackageManager string
	Script         string
}

// CanSkipOverwrite reports whether dir can be used without asking: it does
// not exist, is empty, or only holds a .git directory.
func CanSkipOverwrite(fs afero.Fs, dir string) bool {
	exists, err := afero.DirExists(fs, dir)
	if err != nil || !exists {
		return true
	}
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return false
	}
	return len(entries) == 0 || (len(entries) == 1 && entries[0].Name() == gitDir)
}

// emptyDirectory removes everything inside dir except the top-level .git directory.
func emptyDirectory(fs afero.Fs, dir string) error {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %q: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.Name() == gitDir {
			continue
		}
		if removeErr := fs.RemoveAll(filepath.Join(dir, entry.Name())); removeErr != nil {
			return fmt.Errorf("failed to remove %q: %w", entry.Name(), removeErr)
		}
	}
	return nil
}

// prepareTargetDir makes sure root exists and is empty enough to scaffold into.
func prepareTargetDir(fs afero.Fs, root string, overwrite bool) error {
	if CanSkipOverwrite(fs, root) {
		return fs.MkdirAll(root, dirMode)
	}
	if !overwrite {
		return fmt.Errorf("%w: %s", ErrTargetNotEmpty, root)
	}
	logger.Infof("Emptying %s", root)
	return emptyDirectory(fs, root)
}

func manifestPath(dir string) string {
	return filepath.Join(dir, entities.ManifestFileName)
}

func readManifest(fs afero.Fs, dir string) (*entities.Manifest, error) {
	path := manifestPath(dir)
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w in %s", ErrManifestNotFound, dir)
		}
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	manifest, err := entities.ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	return manifest, nil
}

func writeManifest(fs afero.Fs, dir string, manifest *entities.Manifest) error {
	data, err := manifest.Marshal()
	if err != nil {
		return fmt.Errorf("failed to render manifest: %w", err)
	}
	path := manifestPath(dir)
	if writeErr := afero.WriteFile(fs, path, data, fileMode); writeErr != nil {
		return fmt.Errorf("failed to write %q: %w", path, writeErr)
	}
	return nil
}
