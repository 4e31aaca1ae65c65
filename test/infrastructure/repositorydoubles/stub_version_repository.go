//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/leaferjs/create-leafer/internal/domain/entities"
	"github.com/leaferjs/create-leafer/internal/domain/repositories"
)

// StubVersionRepository always resolves to Version and records every query.
type StubVersionRepository struct {
	Version string
	Queries []entities.VersionQuery
}

var _ repositories.VersionRepository = (*StubVersionRepository)(nil)

func (r *StubVersionRepository) LatestVersion(_ context.Context, query entities.VersionQuery) string {
	r.Queries = append(r.Queries, query)
	return r.Version
}
