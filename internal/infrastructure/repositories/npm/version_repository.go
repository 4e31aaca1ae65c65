package npm

import (
	"context"
	"net/http"

	logger "github.com/sirupsen/logrus"

	"github.com/leaferjs/create-leafer/internal/domain/entities"
)

// VersionRepository resolves the latest version of a package from the local
// npm installation and a list of registries, falling back to a default.
type VersionRepository struct {
	runner     CommandRunner
	client     *http.Client
	concurrent Racer
	sequential Racer
}

// NewVersionRepository creates a VersionRepository with the production racers.
func NewVersionRepository(runner CommandRunner, client *http.Client) *VersionRepository {
	return NewVersionRepositoryWithRacers(runner, client, NewConcurrentRacer(), NewSequentialRacer())
}

// NewVersionRepositoryWithRacers creates a VersionRepository with explicit racers.
func NewVersionRepositoryWithRacers(
	runner CommandRunner,
	client *http.Client,
	concurrent, sequential Racer,
) *VersionRepository {
	return &VersionRepository{
		runner:     runner,
		client:     client,
		concurrent: concurrent,
		sequential: sequential,
	}
}

// LatestVersion never fails. The local npm query runs first and blocks like a
// synchronous subprocess; when it fails the registries are raced (or tried in
// order when the query is sequential). When every source fails the query's
// default version is returned.
func (it *VersionRepository) LatestVersion(ctx context.Context, query entities.VersionQuery) string {
	timeout := query.AttemptTimeout()

	local := NewLocalStrategy(it.runner, timeout)
	version, err := local.Lookup(ctx, query.PackageName)
	if err == nil {
		logger.Debugf("[resolver] %s resolved %s@%s", local.Name(), query.PackageName, version)
		return version
	}
	logger.Warnf("[resolver] Failed to fetch %s version using npm show, trying registries", query.PackageName)

	strategies := make([]Strategy, 0, len(query.Registries))
	for _, registry := range query.Registries {
		strategies = append(strategies, NewRegistryStrategy(it.client, registry, timeout))
	}

	racer := it.concurrent
	if query.Sequential {
		racer = it.sequential
	}

	version, err = racer.Race(ctx, query.PackageName, strategies)
	if err != nil {
		logger.Warnf(
			"[resolver] All version sources failed, using default %s@%s: %v",
			query.PackageName, query.DefaultVersion, err,
		)
		return query.DefaultVersion
	}

	logger.Debugf("[resolver] Resolved %s@%s from registries", query.PackageName, version)
	return version
}
