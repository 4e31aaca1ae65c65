//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaferjs/create-leafer/internal/domain/entities"
)

func TestUpdateLeaferDeps(t *testing.T) {
	t.Parallel()

	t.Run("should pin only leafer packages to the caret version", func(t *testing.T) {
		t.Parallel()

		// given
		deps, err := entities.ParseNode([]byte(
			`{"leafer-ui":"^1.0.0","vue":"^3.4.0","@leafer-in/editor":"^1.0.0","leafer":"1.0.0"}`,
		))
		require.NoError(t, err)

		// when
		entities.UpdateLeaferDeps(deps, "1.2.0")

		// then
		assert.Equal(t, "^1.2.0", deps.Get("leafer-ui").String)
		assert.Equal(t, "^3.4.0", deps.Get("vue").String)
		assert.Equal(t, "^1.2.0", deps.Get("@leafer-in/editor").String)
		assert.Equal(t, "^1.2.0", deps.Get("leafer").String)
		assert.Equal(t, []string{"leafer-ui", "vue", "@leafer-in/editor", "leafer"}, deps.Keys())
	})

	t.Run("should ignore a missing section", func(t *testing.T) {
		t.Parallel()

		// given
		var deps *entities.Node

		// when / then
		assert.NotPanics(t, func() { entities.UpdateLeaferDeps(deps, "1.2.0") })
	})
}

func TestSceneFromDeps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		deps     []string
		expected string
	}{
		{"should detect the full bundle", []string{"leafer", "vue"}, entities.SceneFull},
		{"should detect the editor bundle", []string{"leafer-editor", "@leafer-in/view"}, entities.SceneEditor},
		{"should detect a scoped platform package", []string{"@leafer-game/worker"}, entities.SceneGame},
		{"should detect the draw bundle", []string{"leafer-draw"}, entities.SceneDraw},
		{"should default to the ui scene", []string{"vue"}, entities.SceneUI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			deps := tt.deps

			// when
			scene := entities.SceneFromDeps(deps)

			// then
			assert.Equal(t, tt.expected, scene)
		})
	}
}

func TestPlatformFromDeps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		deps     []string
		expected string
	}{
		{"should detect worker", []string{"@leafer-ui/worker"}, entities.PlatformWorker},
		{"should detect node", []string{"@leafer-editor/node"}, entities.PlatformNode},
		{"should detect miniapp", []string{"@leafer/miniapp"}, entities.PlatformMiniapp},
		{"should default to web", []string{"leafer-ui"}, entities.PlatformWeb},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			deps := tt.deps

			// when
			platform := entities.PlatformFromDeps(deps)

			// then
			assert.Equal(t, tt.expected, platform)
		})
	}
}

func TestPluginDependencies(t *testing.T) {
	t.Parallel()

	t.Run("should skip plugins already bundled by the scene", func(t *testing.T) {
		t.Parallel()

		// given
		plugins := []string{"viewport", "color", "interface"}

		// when
		deps := entities.PluginDependencies(entities.SceneEditor, entities.PlatformWeb, plugins)

		// then
		assert.Equal(t, []entities.PluginDependency{
			{Name: "leafer-editor"},
			{Name: "@leafer-in/color"},
			{Name: "@leafer-ui/interface", Dev: true},
		}, deps)
	})

	t.Run("should use the platform package of the scene", func(t *testing.T) {
		t.Parallel()

		// given
		plugins := []string{"export"}

		// when
		deps := entities.PluginDependencies(entities.SceneGame, entities.PlatformNode, plugins)

		// then
		assert.Equal(t, []entities.PluginDependency{{Name: "@leafer-game/node"}}, deps)
	})
}

func TestExpandPluginPresets(t *testing.T) {
	t.Parallel()

	t.Run("should expand presets and drop duplicates", func(t *testing.T) {
		t.Parallel()

		// given
		plugins := []string{"game", "find", "color"}

		// when
		expanded := entities.ExpandPluginPresets(plugins)

		// then
		assert.Equal(t, []string{"robot", "state", "motion-path", "find", "color"}, expanded)
	})
}

func TestInstalledPlugins(t *testing.T) {
	t.Parallel()

	t.Run("should list @leafer-in plugins and the interface package", func(t *testing.T) {
		t.Parallel()

		// given
		deps := []string{"leafer-ui", "@leafer-in/view", "@leafer-ui/interface", "@leafer-in/resize"}

		// when
		plugins := entities.InstalledPlugins(deps)

		// then
		assert.Equal(t, []string{"view", "resize", "interface"}, plugins)
	})
}

func TestScenePackage(t *testing.T) {
	t.Parallel()

	t.Run("should return the bare package on web", func(t *testing.T) {
		t.Parallel()

		// given
		scene := entities.SceneFull

		// when
		name := entities.ScenePackage(scene, entities.PlatformWeb)

		// then
		assert.Equal(t, "leafer", name)
	})

	t.Run("should return the scoped package on other platforms", func(t *testing.T) {
		t.Parallel()

		// given
		scene := entities.SceneDraw

		// when
		name := entities.ScenePackage(scene, entities.PlatformWorker)

		// then
		assert.Equal(t, "@leafer-draw/worker", name)
	})
}
