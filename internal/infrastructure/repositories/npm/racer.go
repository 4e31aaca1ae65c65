package npm

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoStrategies is returned when a race is started without any strategy.
var ErrNoStrategies = errors.New("no version strategies to run")

// Strategy is one independent way of finding the latest version of a package.
type Strategy interface {
	Name() string
	Lookup(ctx context.Context, packageName string) (string, error)
}

// Racer runs strategies and returns the value of the first one that succeeds.
// It fails only when every strategy failed; the returned error joins all causes.
type Racer interface {
	Race(ctx context.Context, packageName string, strategies []Strategy) (string, error)
}

type raceResult struct {
	strategy string
	version  string
	err      error
}

// ConcurrentRacer starts every strategy at once. The first success wins, even
// if a slower strategy would have returned a different version. Remaining
// strategies are cancelled once a winner is known.
type ConcurrentRacer struct{}

// NewConcurrentRacer creates a new ConcurrentRacer.
func NewConcurrentRacer() *ConcurrentRacer {
	return &ConcurrentRacer{}
}

// Race runs all strategies concurrently.
func (it *ConcurrentRacer) Race(
	ctx context.Context,
	packageName string,
	strategies []Strategy,
) (string, error) {
	if len(strategies) == 0 {
		return "", ErrNoStrategies
	}

	raceCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// buffered so losers never block after the winner returned
	results := make(chan raceResult, len(strategies))
	for _, strategy := range strategies {
		go func(s Strategy) {
			version, err := s.Lookup(raceCtx, packageName)
			results <- raceResult{strategy: s.Name(), version: version, err: err}
		}(strategy)
	}

	errs := make([]error, 0, len(strategies))
	for range strategies {
		result := <-results
		if result.err == nil {
			return result.version, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", result.strategy, result.err))
	}
	return "", errors.Join(errs...)
}

// SequentialRacer tries strategies one after another in the given order, each
// one fully resolving before the next starts.
type SequentialRacer struct{}

// NewSequentialRacer creates a new SequentialRacer.
func NewSequentialRacer() *SequentialRacer {
	return &SequentialRacer{}
}

// Race runs the strategies in order and stops at the first success.
func (it *SequentialRacer) Race(
	ctx context.Context,
	packageName string,
	strategies []Strategy,
) (string, error) {
	if len(strategies) == 0 {
		return "", ErrNoStrategies
	}

	errs := make([]error, 0, len(strategies))
	for _, strategy := range strategies {
		version, err := strategy.Lookup(ctx, packageName)
		if err == nil {
			return version, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", strategy.Name(), err))
	}
	return "", errors.Join(errs...)
}
