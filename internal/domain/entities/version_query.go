package entities

import (
	"strings"
	"time"
)

const (
	// DefaultRegistry is used when no registry is configured in the environment.
	DefaultRegistry = "https://registry.npmjs.org/"

	// DefaultLookupTimeout bounds every single version lookup.
	DefaultLookupTimeout = 10 * time.Second
)

// FallbackRegistries returns the mirrors tried after the primary registry.
func FallbackRegistries() []string {
	return []string{
		"https://registry.npmjs.org/",
		"https://registry.npmmirror.com",
		"https://mirrors.huaweicloud.com/repository/npm/",
	}
}

// RegistryList is an ordered, deduplicated list of registry base URLs, each
// ending with a slash.
type RegistryList []string

// NewRegistryList normalizes primary followed by fallbacks. Empty entries are
// dropped and only the first occurrence of a URL is kept.
func NewRegistryList(primary string, fallbacks ...string) RegistryList {
	list := make(RegistryList, 0, len(fallbacks)+1)
	for _, raw := range append([]string{primary}, fallbacks...) {
		registry := NormalizeRegistry(raw)
		if registry == "" || list.Contains(registry) {
			continue
		}
		list = append(list, registry)
	}
	return list
}

// NormalizeRegistry trims whitespace and ensures a trailing slash.
func NormalizeRegistry(raw string) string {
	registry := strings.TrimSpace(raw)
	if registry == "" {
		return ""
	}
	if !strings.HasSuffix(registry, "/") {
		registry += "/"
	}
	return registry
}

// Contains reports whether registry is already in the list.
func (l RegistryList) Contains(registry string) bool {
	for _, existing := range l {
		if existing == registry {
			return true
		}
	}
	return false
}

// LatestURL returns the dist-tag shorthand URL for packageName on registry.
func LatestURL(registry, packageName string) string {
	return registry + packageName + "/latest"
}

// VersionQuery describes one "latest version" lookup.
type VersionQuery struct {
	PackageName    string
	Registries     RegistryList
	DefaultVersion string
	Timeout        time.Duration

	// Sequential disables concurrent racing: strategies run one after another.
	Sequential bool
}

// AttemptTimeout returns the timeout applied to each individual attempt.
func (q VersionQuery) AttemptTimeout() time.Duration {
	if q.Timeout <= 0 {
		return DefaultLookupTimeout
	}
	return q.Timeout
}
