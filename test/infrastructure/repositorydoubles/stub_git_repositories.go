//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/leaferjs/create-leafer/internal/domain/repositories"
)

// StubIdentityRepository returns a fixed author.
type StubIdentityRepository struct {
	AuthorName string
}

var _ repositories.IdentityRepository = (*StubIdentityRepository)(nil)

func (r *StubIdentityRepository) Author(_ context.Context) string { return r.AuthorName }

// SpyGitRepository records the directories it was asked to initialize.
type SpyGitRepository struct {
	InitErr  error
	InitDirs []string
}

var _ repositories.GitRepository = (*SpyGitRepository)(nil)

func (r *SpyGitRepository) Init(dir string) error {
	r.InitDirs = append(r.InitDirs, dir)
	return r.InitErr
}

// StubPackageManagerRepository detects Agent for every directory.
type StubPackageManagerRepository struct {
	Agent string
}

var _ repositories.PackageManagerRepository = (*StubPackageManagerRepository)(nil)

func (r *StubPackageManagerRepository) Detect(_ string) string {
	if r.Agent == "" {
		return "npm"
	}
	return r.Agent
}
