//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leaferjs/create-leafer/internal/domain/commands"
)

func TestVersionCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should resolve leafer by default", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture()
		command := commands.NewVersionCommand(f.versions)

		// when
		version := command.Execute(context.Background(), f.settings, " ")

		// then
		assert.Equal(t, resolvedVersion, version)
		assert.Equal(t, "leafer", f.versions.Queries[0].PackageName)
		assert.Equal(t, "1.0.2", f.versions.Queries[0].DefaultVersion)
	})

	t.Run("should resolve the requested package", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture()
		command := commands.NewVersionCommand(f.versions)

		// when
		command.Execute(context.Background(), f.settings, "@leafer-ui/core")

		// then
		assert.Equal(t, "@leafer-ui/core", f.versions.Queries[0].PackageName)
	})
}
