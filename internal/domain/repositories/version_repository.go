package repositories

import (
	"context"

	"github.com/leaferjs/create-leafer/internal/domain/entities"
)

// VersionRepository looks up the latest published version of a package.
// Implementations never fail: when every source is unreachable the query's
// default version is returned.
type VersionRepository interface {
	LatestVersion(ctx context.Context, query entities.VersionQuery) string
}
