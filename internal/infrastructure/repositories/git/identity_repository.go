package git

import (
	"context"
	"strings"

	gitconfig "github.com/go-git/go-git/v5/config"
	logger "github.com/sirupsen/logrus"

	"github.com/leaferjs/create-leafer/internal/infrastructure/repositories/npm"
)

// Identity is the user name and e-mail known to git or npm.
type Identity struct {
	Name  string
	Email string
}

// String formats the identity as a package.json author.
func (i Identity) String() string {
	if i.Email == "" {
		return i.Name
	}
	if i.Name == "" {
		return "<" + i.Email + ">"
	}
	return i.Name + " <" + i.Email + ">"
}

// GlobalConfigLoader reads the user identity from the global git configuration.
type GlobalConfigLoader func() (Identity, error)

// IdentityRepository resolves the author of a new project. The global git
// configuration is read first; missing fields are filled by running
// `git config` and finally `npm whoami`.
type IdentityRepository struct {
	loadGlobal GlobalConfigLoader
	runner     npm.CommandRunner
}

// NewIdentityRepository creates an IdentityRepository backed by go-git and runner.
func NewIdentityRepository(runner npm.CommandRunner) *IdentityRepository {
	return NewIdentityRepositoryWithLoader(loadGlobalConfig, runner)
}

// NewIdentityRepositoryWithLoader creates an IdentityRepository with a custom config loader.
func NewIdentityRepositoryWithLoader(loader GlobalConfigLoader, runner npm.CommandRunner) *IdentityRepository {
	return &IdentityRepository{loadGlobal: loader, runner: runner}
}

// Author never fails; an unknown identity yields an empty string.
func (it *IdentityRepository) Author(ctx context.Context) string {
	identity, err := it.loadGlobal()
	if err != nil {
		logger.Debugf("[identity] Failed to read global git config: %v", err)
	}

	if identity.Name == "" {
		identity.Name = it.query(ctx, "git", "config", "--get", "user.name")
	}
	if identity.Name == "" {
		identity.Name = it.query(ctx, "npm", "whoami")
	}
	if identity.Email == "" {
		identity.Email = it.query(ctx, "git", "config", "--get", "user.email")
	}
	return identity.String()
}

func (it *IdentityRepository) query(ctx context.Context, name string, args ...string) string {
	output, err := it.runner.Run(ctx, name, args...)
	if err != nil {
		logger.Debugf("[identity] %s %s: %v", name, strings.Join(args, " "), err)
		return ""
	}
	return strings.TrimSpace(output)
}

func loadGlobalConfig() (Identity, error) {
	cfg, err := gitconfig.LoadConfig(gitconfig.GlobalScope)
	if err != nil {
		return Identity{}, err
	}
	return Identity{Name: cfg.User.Name, Email: cfg.User.Email}, nil
}
