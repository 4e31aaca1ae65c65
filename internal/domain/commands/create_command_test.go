//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaferjs/create-leafer/internal/domain/commands"
	"github.com/leaferjs/create-leafer/internal/domain/repositories"
	"github.com/leaferjs/create-leafer/test/infrastructure/repositorydoubles"
)

func newCreateCommand(f *fixture, templates repositories.TemplateRepository) *commands.CreateCommand {
	return commands.NewCreateCommand(f.fs, f.versions, templates, f.identity, f.git, f.packageManagers)
}

func TestCreateCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should scaffold the template with the resolved leafer version", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture()
		command := newCreateCommand(f, f.templates())

		// when
		result, err := command.Execute(context.Background(), f.settings, commands.CreateOptions{
			Cwd:         "/work",
			ProjectName: "demo",
			Variant:     "vanilla-ts",
			InitGit:     true,
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, "/work/demo", result.Root)
		assert.Equal(t, "demo", result.PackageName)
		assert.Equal(t, resolvedVersion, result.Version)
		assert.Equal(t, "pnpm", result.PackageManager)
		assert.Equal(t, "dev", result.Script)

		manifest := f.manifest(t, "/work/demo/package.json")
		assert.Equal(t, "demo", manifest.StringField("name"))
		assert.Equal(t, "0.0.0", manifest.StringField("version"))
		assert.Equal(t, "Jane <jane@example.com>", manifest.StringField("author"))
		assert.Equal(t, []string{"name", "version", "author"}, manifest.Root.Keys()[:3])
		assert.Equal(t, "^1.2.0", manifest.Dependencies().Get("leafer-ui").String)
		assert.Equal(t, "^1.2.0", manifest.Dependencies().Get("@leafer-in/state").String)
		assert.Equal(t, "^5.2.0", manifest.DevDependencies().Get("vite").String)

		assert.Contains(t, f.read(t, "/work/demo/.gitignore"), "node_modules")
		assert.Equal(t, []string{"/work/demo"}, f.git.InitDirs)
		assert.Equal(t, "leafer", f.versions.Queries[0].PackageName)
	})

	t.Run("should use the working directory name for the current directory", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture()
		command := newCreateCommand(f, f.templates())

		// when
		result, err := command.Execute(context.Background(), f.settings, commands.CreateOptions{
			Cwd:         "/work/my-app",
			ProjectName: ".",
			Variant:     "react-js",
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, "/work/my-app", result.Root)
		assert.Equal(t, "my-app", f.manifest(t, "/work/my-app/package.json").StringField("name"))
		assert.Empty(t, f.git.InitDirs)
	})

	t.Run("should return error when the target is not empty", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture()
		f.write(t, "/work/demo/notes.txt", "keep me")
		command := newCreateCommand(f, f.templates())

		// when
		_, err := command.Execute(context.Background(), f.settings, commands.CreateOptions{
			Cwd:         "/work",
			ProjectName: "demo",
			Variant:     "vanilla-js",
		})

		// then
		require.ErrorIs(t, err, commands.ErrTargetNotEmpty)
		assert.Equal(t, "keep me", f.read(t, "/work/demo/notes.txt"))
	})

	t.Run("should empty the target but keep .git when overwriting", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture()
		f.write(t, "/work/demo/notes.txt", "old")
		f.write(t, "/work/demo/.git/HEAD", "ref: refs/heads/main")
		command := newCreateCommand(f, f.templates())

		// when
		_, err := command.Execute(context.Background(), f.settings, commands.CreateOptions{
			Cwd:         "/work",
			ProjectName: "demo",
			Variant:     "vanilla-js",
			Overwrite:   true,
		})

		// then
		require.NoError(t, err)
		exists, _ := afero.Exists(f.fs, "/work/demo/notes.txt")
		assert.False(t, exists)
		assert.Equal(t, "ref: refs/heads/main", f.read(t, "/work/demo/.git/HEAD"))
	})

	t.Run("should return error for an unknown variant", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture()
		command := newCreateCommand(f, f.templates())

		// when
		_, err := command.Execute(context.Background(), f.settings, commands.CreateOptions{
			Cwd:         "/work",
			ProjectName: "demo",
			Variant:     "svelte-ts",
		})

		// then
		assert.Error(t, err)
	})

	t.Run("should return error for an invalid package name", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture()
		command := newCreateCommand(f, f.templates())

		// when
		_, err := command.Execute(context.Background(), f.settings, commands.CreateOptions{
			Cwd:         "/work",
			ProjectName: "demo",
			PackageName: "Bad Name",
			Variant:     "vanilla-ts",
		})

		// then
		assert.ErrorIs(t, err, commands.ErrInvalidPackageName)
	})

	t.Run("should return error when the template fails to render", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture()
		renderErr := errors.New("disk full")
		templates := &repositorydoubles.SpyTemplateRepository{RenderErr: renderErr}
		command := newCreateCommand(f, templates)

		// when
		_, err := command.Execute(context.Background(), f.settings, commands.CreateOptions{
			Cwd:         "/work",
			ProjectName: "demo",
			Variant:     "vue-ts",
		})

		// then
		require.ErrorIs(t, err, renderErr)
		require.Len(t, templates.RenderCalls, 1)
		assert.Equal(t, "leafer/vue/ts", templates.RenderCalls[0].Src)
	})
}

func TestCanSkipOverwrite(t *testing.T) {
	t.Parallel()

	t.Run("should skip for a missing, empty or git-only directory", func(t *testing.T) {
		t.Parallel()

		// given
		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("/empty", 0o755))
		require.NoError(t, fs.MkdirAll("/git-only/.git", 0o755))

		// when
		missing := commands.CanSkipOverwrite(fs, "/missing")
		empty := commands.CanSkipOverwrite(fs, "/empty")
		gitOnly := commands.CanSkipOverwrite(fs, "/git-only")

		// then
		assert.True(t, missing)
		assert.True(t, empty)
		assert.True(t, gitOnly)
	})

	t.Run("should not skip a directory with files", func(t *testing.T) {
		t.Parallel()

		// given
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/project/index.html", []byte("<html/>"), 0o644))

		// when
		skip := commands.CanSkipOverwrite(fs, "/project")

		// then
		assert.False(t, skip)
	})
}

func TestEmptyDirectory(t *testing.T) {
	t.Parallel()

	t.Run("should ignore a missing directory", func(t *testing.T) {
		t.Parallel()

		// given
		fs := afero.NewMemMapFs()

		// when
		err := commands.EmptyDirectory(fs, "/missing")

		// then
		assert.NoError(t, err)
	})
}
