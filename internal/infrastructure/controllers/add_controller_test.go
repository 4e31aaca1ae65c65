//go:build unit

package controllers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaferjs/create-leafer/config"
	"github.com/leaferjs/create-leafer/internal/infrastructure/controllers"
	"github.com/leaferjs/create-leafer/test/domain/commanddoubles"
)

func TestAddController(t *testing.T) {
	t.Parallel()

	t.Run("should add the plugins given as arguments", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubAddCommand{}
		controller := controllers.NewAddController(stub, &config.Environment{})
		cmd, _ := newCobraCommand(controller, "", map[string]string{"scene": "draw"})

		// when
		err := controller.Execute(cmd, []string{"view", "color"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "draw", stub.LastOpts.Scene)
		assert.Equal(t, []string{"view", "color"}, stub.LastOpts.Plugins)
	})

	t.Run("should prompt for plugins without arguments", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubAddCommand{}
		controller := controllers.NewAddController(stub, &config.Environment{})
		cmd, _ := newCobraCommand(controller, "editor,, resize\n", nil)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"editor", "resize"}, stub.LastOpts.Plugins)
	})
}
