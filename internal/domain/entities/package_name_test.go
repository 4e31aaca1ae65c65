//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leaferjs/create-leafer/internal/domain/entities"
)

func TestIsValidNpmPackageName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"should accept a plain name", "my-app", true},
		{"should accept a scoped name", "@scope/my-app", true},
		{"should reject upper case letters", "My-App", false},
		{"should reject a leading dot", ".hidden", false},
		{"should reject spaces", "my app", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			input := tt.input

			// when
			valid := entities.IsValidNpmPackageName(input)

			// then
			assert.Equal(t, tt.expected, valid)
		})
	}
}

func TestIsValidPluginName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"should accept a leafer-x name", "leafer-x-selector", true},
		{"should accept a scoped leafer-x name", "@scope/leafer-x-selector", true},
		{"should reject a name without the prefix", "selector", false},
		{"should reject a scoped name without the prefix", "@scope/selector", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			input := tt.input

			// when
			valid := entities.IsValidPluginName(input)

			// then
			assert.Equal(t, tt.expected, valid)
		})
	}
}

func TestToValidPackageName(t *testing.T) {
	t.Parallel()

	t.Run("should lower case and replace invalid characters", func(t *testing.T) {
		t.Parallel()

		// given
		projectName := " _My App@2 "

		// when
		name := entities.ToValidPackageName(projectName)

		// then
		assert.Equal(t, "my-app-2", name)
	})
}

func TestToValidPluginName(t *testing.T) {
	t.Parallel()

	t.Run("should keep a name that already has the prefix", func(t *testing.T) {
		t.Parallel()

		// given
		projectName := "Leafer-X Dots"

		// when
		name := entities.ToValidPluginName(projectName)

		// then
		assert.Equal(t, "leafer-x-dots", name)
	})

	t.Run("should collapse other names to the bare prefix", func(t *testing.T) {
		t.Parallel()

		// given
		projectName := "my plugin"

		// when
		name := entities.ToValidPluginName(projectName)

		// then
		assert.Equal(t, "leafer-x-", name)
	})
}

func TestGlobalName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"should camel case every segment", "leafer-x-dot-matrix", "LeaferX.DotMatrix"},
		{"should drop the scope", "@scope/leafer-x-selector", "LeaferX.Selector"},
		{"should strip a bare leafer prefix", "leafer-ruler", "LeaferX.ruler"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			input := tt.input

			// when
			global := entities.GlobalName(input)

			// then
			assert.Equal(t, tt.expected, global)
		})
	}
}

func TestResolvePackageName(t *testing.T) {
	t.Parallel()

	t.Run("should prefer the explicit package name", func(t *testing.T) {
		t.Parallel()

		// given
		packageName := " custom-name "

		// when
		name := entities.ResolvePackageName(packageName, "dir")

		// then
		assert.Equal(t, "custom-name", name)
	})

	t.Run("should fall back to the project name and then the default", func(t *testing.T) {
		t.Parallel()

		// given
		projectName := "dir"

		// when
		fromProject := entities.ResolvePackageName("", projectName)
		fromDefault := entities.ResolvePackageName("", "")

		// then
		assert.Equal(t, "dir", fromProject)
		assert.Equal(t, entities.DefaultProjectName, fromDefault)
	})
}
