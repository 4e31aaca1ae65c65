package npm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/leaferjs/create-leafer/internal/domain/entities"
)

const (
	localStrategyName = "npm show"

	// registry responses are tiny; anything larger is not a dist-tag document
	maxResponseBytes = 1 << 20
)

var errEmptyVersion = errors.New("empty version")

// LocalStrategy asks the local npm installation for the latest version.
type LocalStrategy struct {
	runner  CommandRunner
	timeout time.Duration
}

// NewLocalStrategy creates a LocalStrategy running npm through runner.
func NewLocalStrategy(runner CommandRunner, timeout time.Duration) *LocalStrategy {
	return &LocalStrategy{runner: runner, timeout: timeout}
}

func (it *LocalStrategy) Name() string { return localStrategyName }

// Lookup runs `npm show <package> version` and returns its trimmed output.
func (it *LocalStrategy) Lookup(ctx context.Context, packageName string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, it.timeout)
	defer cancel()

	output, err := it.runner.Run(ctx, "npm", "show", packageName, "version")
	if err != nil {
		logger.Debugf("[resolver] %s failed for %s: %v", localStrategyName, packageName, err)
		return "", err
	}

	version := strings.TrimSpace(output)
	if version == "" {
		return "", errEmptyVersion
	}
	return version, nil
}

// RegistryStrategy reads the "latest" dist-tag from one registry.
type RegistryStrategy struct {
	client   *http.Client
	registry string
	timeout  time.Duration
}

// NewRegistryStrategy creates a RegistryStrategy for a normalized registry base URL.
func NewRegistryStrategy(client *http.Client, registry string, timeout time.Duration) *RegistryStrategy {
	return &RegistryStrategy{client: client, registry: registry, timeout: timeout}
}

func (it *RegistryStrategy) Name() string { return it.registry }

type latestResponse struct {
	Version string `json:"version"`
}

// Lookup issues GET <registry><package>/latest bounded by the strategy timeout.
// The timeout cancels only this request.
func (it *RegistryStrategy) Lookup(ctx context.Context, packageName string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, it.timeout)
	defer cancel()

	url := entities.LatestURL(it.registry, packageName)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := it.client.Do(req)
	if err != nil {
		logger.Debugf("[resolver] request to %s failed: %v", url, err)
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Debugf("[resolver] %s answered with status %d", url, resp.StatusCode)
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var latest latestResponse
	if decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&latest); decodeErr != nil {
		return "", fmt.Errorf("failed to parse response from %s: %w", url, decodeErr)
	}
	if latest.Version == "" {
		return "", fmt.Errorf("response from %s has no version: %w", url, errEmptyVersion)
	}
	return latest.Version, nil
}
