//go:build unit

package commands_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/leaferjs/create-leafer/config"
	"github.com/leaferjs/create-leafer/internal/domain/entities"
	"github.com/leaferjs/create-leafer/internal/infrastructure/repositories/template"
	"github.com/leaferjs/create-leafer/test/infrastructure/repositorydoubles"
)

const resolvedVersion = "1.2.0"

type fixture struct {
	fs              afero.Fs
	versions        *repositorydoubles.StubVersionRepository
	identity        *repositorydoubles.StubIdentityRepository
	git             *repositorydoubles.SpyGitRepository
	packageManagers *repositorydoubles.StubPackageManagerRepository
	settings        *config.Settings
}

func newFixture() *fixture {
	return &fixture{
		fs:              afero.NewMemMapFs(),
		versions:        &repositorydoubles.StubVersionRepository{Version: resolvedVersion},
		identity:        &repositorydoubles.StubIdentityRepository{AuthorName: "Jane <jane@example.com>"},
		git:             &repositorydoubles.SpyGitRepository{},
		packageManagers: &repositorydoubles.StubPackageManagerRepository{Agent: "pnpm"},
		settings:        &config.Settings{},
	}
}

func (f *fixture) templates() *template.TemplateRepository {
	return template.NewTemplateRepositoryWithSource(template.Bundled(), afero.NewMemMapFs(), f.fs)
}

func (f *fixture) write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(f.fs, path, []byte(content), 0o644))
}

func (f *fixture) read(t *testing.T, path string) string {
	t.Helper()
	data, err := afero.ReadFile(f.fs, path)
	require.NoError(t, err)
	return string(data)
}

func (f *fixture) manifest(t *testing.T, path string) *entities.Manifest {
	t.Helper()
	manifest, err := entities.ParseManifest([]byte(f.read(t, path)))
	require.NoError(t, err)
	return manifest
}
