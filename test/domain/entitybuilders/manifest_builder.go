//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/leaferjs/create-leafer/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

type dependencyEntry struct {
	name       string
	constraint string
	dev        bool
}

// ManifestBuilder helps create test manifests with a fluent interface.
type ManifestBuilder struct {
	*testkit.BaseBuilder
	name    string
	version string
	author  string
	deps    []dependencyEntry
}

// NewManifestBuilder creates a new manifest builder with sensible defaults.
func NewManifestBuilder() *ManifestBuilder {
	return &ManifestBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "test-project",
		version:     "0.0.0",
	}
}

// WithName sets the package name.
func (b *ManifestBuilder) WithName(name string) *ManifestBuilder {
	b.name = name
	return b
}

// WithAuthor sets the author.
func (b *ManifestBuilder) WithAuthor(author string) *ManifestBuilder {
	b.author = author
	return b
}

// WithDependency adds a runtime dependency.
func (b *ManifestBuilder) WithDependency(name, constraint string) *ManifestBuilder {
	b.deps = append(b.deps, dependencyEntry{name: name, constraint: constraint})
	return b
}

// WithDevDependency adds a development dependency.
func (b *ManifestBuilder) WithDevDependency(name, constraint string) *ManifestBuilder {
	b.deps = append(b.deps, dependencyEntry{name: name, constraint: constraint, dev: true})
	return b
}

// Build creates the manifest (satisfies testkit.Builder interface).
func (b *ManifestBuilder) Build() interface{} {
	return b.BuildManifest()
}

// BuildManifest creates the manifest with a concrete return type.
func (b *ManifestBuilder) BuildManifest() *entities.Manifest {
	manifest := entities.NewManifest(b.name, b.version, b.author)
	for _, dep := range b.deps {
		manifest.SetDependency(dep.name, dep.constraint, dep.dev)
	}
	return manifest
}

// BuildJSON renders the manifest as written to package.json.
func (b *ManifestBuilder) BuildJSON() []byte {
	data, err := b.BuildManifest().Marshal()
	if err != nil {
		panic(err)
	}
	return data
}

// Reset clears the builder state, allowing it to be reused.
func (b *ManifestBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-project"
	b.version = "0.0.0"
	b.author = ""
	b.deps = nil
	return b
}

// Clone creates a deep copy of the ManifestBuilder.
func (b *ManifestBuilder) Clone() testkit.Builder {
	return &ManifestBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		version:     b.version,
		author:      b.author,
		deps:        append([]dependencyEntry(nil), b.deps...),
	}
}
