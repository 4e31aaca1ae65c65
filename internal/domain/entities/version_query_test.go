//go:build unit

package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/leaferjs/create-leafer/internal/domain/entities"
)

func TestNewRegistryList(t *testing.T) {
	t.Parallel()

	t.Run("should put the primary registry first and drop duplicates", func(t *testing.T) {
		t.Parallel()

		// given
		primary := "https://registry.npmmirror.com"

		// when
		list := entities.NewRegistryList(primary, entities.FallbackRegistries()...)

		// then
		assert.Equal(t, entities.RegistryList{
			"https://registry.npmmirror.com/",
			"https://registry.npmjs.org/",
			"https://mirrors.huaweicloud.com/repository/npm/",
		}, list)
	})

	t.Run("should skip blank entries", func(t *testing.T) {
		t.Parallel()

		// given
		primary := "   "

		// when
		list := entities.NewRegistryList(primary, "", " https://r1 ")

		// then
		assert.Equal(t, entities.RegistryList{"https://r1/"}, list)
	})
}

func TestLatestURL(t *testing.T) {
	t.Parallel()

	t.Run("should append the package and the latest dist-tag", func(t *testing.T) {
		t.Parallel()

		// given
		registry := "https://r1/"

		// when
		url := entities.LatestURL(registry, "@leafer-ui/core")

		// then
		assert.Equal(t, "https://r1/@leafer-ui/core/latest", url)
	})
}

func TestVersionQueryAttemptTimeout(t *testing.T) {
	t.Parallel()

	t.Run("should default when no timeout is set", func(t *testing.T) {
		t.Parallel()

		// given
		query := entities.VersionQuery{}

		// when
		timeout := query.AttemptTimeout()

		// then
		assert.Equal(t, entities.DefaultLookupTimeout, timeout)
	})

	t.Run("should use the configured timeout", func(t *testing.T) {
		t.Parallel()

		// given
		query := entities.VersionQuery{Timeout: 2 * time.Second}

		// when
		timeout := query.AttemptTimeout()

		// then
		assert.Equal(t, 2*time.Second, timeout)
	})
}
