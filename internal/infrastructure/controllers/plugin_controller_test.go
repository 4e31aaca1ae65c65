//go:build unit

package controllers_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaferjs/create-leafer/config"
	"github.com/leaferjs/create-leafer/internal/infrastructure/controllers"
	"github.com/leaferjs/create-leafer/test/domain/commanddoubles"
)

func TestPluginController(t *testing.T) {
	t.Parallel()

	t.Run("should pass a valid plugin name through", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubPluginCommand{}
		controller := controllers.NewPluginController(stub, afero.NewMemMapFs(), &config.Environment{})
		cmd, out := newCobraCommand(controller, "", map[string]string{"yes": "true", "platforms": "web,worker"})

		// when
		err := controller.Execute(cmd, []string{"leafer-x-demo"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "leafer-x-demo", stub.LastOpts.PackageName)
		assert.Equal(t, []string{"web", "worker"}, stub.LastOpts.Platforms)
		assert.Contains(t, out.String(), "npm run start")
	})

	t.Run("should ask for a plugin name and the platforms", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubPluginCommand{}
		controller := controllers.NewPluginController(stub, afero.NewMemMapFs(), &config.Environment{})
		cmd, out := newCobraCommand(controller, "leafer-x-demo\nweb, node\n", nil)

		// when
		err := controller.Execute(cmd, []string{"demo"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "demo", stub.LastOpts.ProjectName)
		assert.Equal(t, "leafer-x-demo", stub.LastOpts.PackageName)
		assert.Equal(t, []string{"web", "node"}, stub.LastOpts.Platforms)
		assert.Contains(t, out.String(), "leafer-x")
	})
}
