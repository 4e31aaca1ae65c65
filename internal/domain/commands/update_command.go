package commands

import (
	"context"
	"strings"

	"github.com/Masterminds/semver/v3"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	modsemver "golang.org/x/mod/semver"

	"github.com/leaferjs/create-leafer/config"
	"github.com/leaferjs/create-leafer/internal/domain/entities"
	"github.com/leaferjs/create-leafer/internal/domain/repositories"
)

// Update is the interface for the update command.
type Update interface {
	Check(ctx context.Context, settings *config.Settings, cwd string) (*UpdatePlan, error)
	Apply(plan *UpdatePlan) error
}

// OutdatedDependency is one leafer dependency whose constraint lags behind the latest release.
type OutdatedDependency struct {
	Name    string
	Current string
	Latest  string
	Dev     bool

	// InRange is true when the current constraint already accepts Latest.
	InRange bool
}

// UpdatePlan lists the constraints to rewrite in the manifest at Root.
type UpdatePlan struct {
	Root     string
	Latest   string
	Outdated []OutdatedDependency
}

// UpdateCommand keeps the leafer dependencies of a project on the latest release.
type UpdateCommand struct {
	fs       afero.Fs
	versions repositories.VersionRepository
}

// NewUpdateCommand creates a new UpdateCommand.
func NewUpdateCommand(fs afero.Fs, versions repositories.VersionRepository) *UpdateCommand {
	return &UpdateCommand{fs: fs, versions: versions}
}

// Check resolves the latest leafer version and lists every outdated leafer
// dependency of the manifest in cwd.
func (it *UpdateCommand) Check(ctx context.Context, settings *config.Settings, cwd string) (*UpdatePlan, error) {
	manifest, err := readManifest(it.fs, cwd)
	if err != nil {
		return nil, err
	}

	latest := it.versions.LatestVersion(ctx, settings.VersionQuery(entities.LeaferPackage))
	plan := &UpdatePlan{Root: cwd, Latest: latest}
	for _, section := range []struct {
		deps *entities.Node
		dev  bool
	}{
		{manifest.Dependencies(), false},
		{manifest.DevDependencies(), true},
	} {
		for _, name := range section.deps.Keys() {
			if !entities.IsLeaferPackage(name) {
				continue
			}
			node := section.deps.Get(name)
			if node.Kind != entities.KindString || isPinnedElsewhere(node.String) {
				logger.Debugf("[update] Skipping %s@%s", name, node.String)
				continue
			}
			if dep, outdated := compareConstraint(name, node.String, latest); outdated {
				dep.Dev = section.dev
				plan.Outdated = append(plan.Outdated, dep)
			}
		}
	}
	return plan, nil
}

// Apply rewrites every outdated constraint of plan to ^latest.
func (it *UpdateCommand) Apply(plan *UpdatePlan) error {
	if len(plan.Outdated) == 0 {
		return nil
	}
	manifest, err := readManifest(it.fs, plan.Root)
	if err != nil {
		return err
	}
	for _, dep := range plan.Outdated {
		manifest.SetDependency(dep.Name, entities.Caret(dep.Latest), dep.Dev)
	}
	return writeManifest(it.fs, plan.Root, manifest)
}

// isPinnedElsewhere reports constraints that do not name a registry version.
func isPinnedElsewhere(constraint string) bool {
	if constraint == "" || constraint == "*" || constraint == "latest" {
		return true
	}
	for _, prefix := range []string{"workspace:", "file:", "link:", "git", "http:", "https:", "npm:"} {
		if strings.HasPrefix(constraint, prefix) {
			return true
		}
	}
	return false
}

// compareConstraint reports whether constraint lags behind latest. A
// constraint lags when its lower bound is older than latest or when it does
// not accept latest at all.
func compareConstraint(name, constraint, latest string) (OutdatedDependency, bool) {
	dep := OutdatedDependency{Name: name, Current: constraint, Latest: latest}

	latestVersion, err := semver.NewVersion(latest)
	if err != nil {
		logger.Warnf("[update] Latest version %q is not semver: %v", latest, err)
		return dep, false
	}
	if parsed, constraintErr := semver.NewConstraint(constraint); constraintErr == nil {
		dep.InRange = parsed.Check(latestVersion)
	} else {
		logger.Debugf("[update] Unparsable constraint %s@%s: %v", name, constraint, constraintErr)
	}

	base := "v" + strings.TrimLeft(constraint, "^~>=< v")
	if modsemver.IsValid(base) {
		return dep, modsemver.Compare(base, "v"+latestVersion.String()) < 0 || !dep.InRange
	}
	return dep, !dep.InRange
}
