package npm

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/leaferjs/create-leafer/internal/domain/entities"
)

// PackageManagerRepository detects the package manager of a project by its
// lockfile, then by the agent that launched the CLI (npm_config_user_agent).
type PackageManagerRepository struct {
	fs        afero.Fs
	userAgent string
}

// NewPackageManagerRepository creates a detector reading lockfiles from fs.
func NewPackageManagerRepository(fs afero.Fs, userAgent string) *PackageManagerRepository {
	return &PackageManagerRepository{fs: fs, userAgent: userAgent}
}

// Detect returns npm, yarn, pnpm or bun. npm is the default.
func (it *PackageManagerRepository) Detect(dir string) string {
	lockfiles := []struct {
		file  string
		agent string
	}{
		{"pnpm-lock.yaml", entities.PackageManagerPnpm},
		{"yarn.lock", entities.PackageManagerYarn},
		{"bun.lockb", entities.PackageManagerBun},
		{"bun.lock", entities.PackageManagerBun},
		{"package-lock.json", entities.PackageManagerNpm},
	}
	for _, lockfile := range lockfiles {
		if exists, _ := afero.Exists(it.fs, filepath.Join(dir, lockfile.file)); exists {
			return lockfile.agent
		}
	}
	return agentFromUserAgent(it.userAgent)
}

// agentFromUserAgent parses values like "pnpm/9.1.0 npm/? node/v20.11.0 linux x64".
func agentFromUserAgent(userAgent string) string {
	first, _, _ := strings.Cut(userAgent, " ")
	name, _, _ := strings.Cut(first, "/")
	switch name {
	case entities.PackageManagerYarn, entities.PackageManagerPnpm, entities.PackageManagerBun:
		return name
	default:
		return entities.PackageManagerNpm
	}
}
