//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaferjs/create-leafer/internal/domain/commands"
	"github.com/leaferjs/create-leafer/test/domain/entitybuilders"
)

func TestUpdateCommand(t *testing.T) {
	t.Parallel()

	t.Run("should list and rewrite the outdated leafer dependencies", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture()
		f.write(t, "/app/package.json", string(entitybuilders.NewManifestBuilder().
			WithDependency("leafer-ui", "^1.0.0").
			WithDependency("@leafer-in/view", "^1.2.0").
			WithDependency("vue", "^3.0.0").
			WithDevDependency("@leafer-ui/interface", "workspace:*").
			WithDevDependency("leafer-editor", "~0.9.0").
			BuildJSON()))
		command := commands.NewUpdateCommand(f.fs, f.versions)

		// when
		plan, err := command.Check(context.Background(), f.settings, "/app")
		require.NoError(t, err)
		applyErr := command.Apply(plan)

		// then
		require.NoError(t, applyErr)
		assert.Equal(t, "1.2.0", plan.Latest)
		assert.Equal(t, []commands.OutdatedDependency{
			{Name: "leafer-ui", Current: "^1.0.0", Latest: "1.2.0", InRange: true},
			{Name: "leafer-editor", Current: "~0.9.0", Latest: "1.2.0", Dev: true},
		}, plan.Outdated)

		manifest := f.manifest(t, "/app/package.json")
		assert.Equal(t, "^1.2.0", manifest.Dependencies().Get("leafer-ui").String)
		assert.Equal(t, "^3.0.0", manifest.Dependencies().Get("vue").String)
		assert.Equal(t, "^1.2.0", manifest.DevDependencies().Get("leafer-editor").String)
		assert.Equal(t, "workspace:*", manifest.DevDependencies().Get("@leafer-ui/interface").String)
	})

	t.Run("should leave the manifest untouched when nothing is outdated", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture()
		original := string(entitybuilders.NewManifestBuilder().
			WithDependency("leafer-ui", "^1.2.0").
			BuildJSON())
		f.write(t, "/app/package.json", original)
		command := commands.NewUpdateCommand(f.fs, f.versions)

		// when
		plan, err := command.Check(context.Background(), f.settings, "/app")
		require.NoError(t, err)
		applyErr := command.Apply(plan)

		// then
		require.NoError(t, applyErr)
		assert.Empty(t, plan.Outdated)
		assert.Equal(t, original, f.read(t, "/app/package.json"))
	})

	t.Run("should return error without a manifest", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture()
		command := commands.NewUpdateCommand(f.fs, f.versions)

		// when
		_, err := command.Check(context.Background(), f.settings, "/app")

		// then
		assert.ErrorIs(t, err, commands.ErrManifestNotFound)
	})
}

func TestCompareConstraint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		constraint string
		outdated   bool
		inRange    bool
	}{
		{"should flag an older caret range", "^1.0.0", true, true},
		{"should accept the latest caret range", "^1.2.0", false, true},
		{"should flag a range that excludes latest", ">=0.1.0 <1.0.0", true, false},
		{"should accept a compound range containing latest", ">=1.0.0 <2.0.0", false, true},
		{"should flag an exact older version", "1.1.9", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			constraint := tt.constraint

			// when
			dep, outdated := commands.CompareConstraint("leafer-ui", constraint, "1.2.0")

			// then
			assert.Equal(t, tt.outdated, outdated)
			assert.Equal(t, tt.inRange, dep.InRange)
		})
	}
}

func TestIsPinnedElsewhere(t *testing.T) {
	t.Parallel()

	t.Run("should skip non-registry constraints", func(t *testing.T) {
		t.Parallel()

		// given
		constraints := []string{"", "*", "latest", "workspace:^", "file:../ui", "link:../ui", "npm:leafer@1"}

		// when / then
		for _, constraint := range constraints {
			assert.True(t, commands.IsPinnedElsewhere(constraint), constraint)
		}
		assert.False(t, commands.IsPinnedElsewhere("^1.0.0"))
	})
}
