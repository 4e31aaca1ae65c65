package repositories

import (
	"net/http"

	"github.com/spf13/afero"
	"go.uber.org/dig"

	"github.com/leaferjs/create-leafer/config"
	domainRepos "github.com/leaferjs/create-leafer/internal/domain/repositories"
	gitRepo "github.com/leaferjs/create-leafer/internal/infrastructure/repositories/git"
	npmRepo "github.com/leaferjs/create-leafer/internal/infrastructure/repositories/npm"
	templateRepo "github.com/leaferjs/create-leafer/internal/infrastructure/repositories/template"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register shared infrastructure
	if err := container.Provide(afero.NewOsFs); err != nil {
		return err
	}
	if err := container.Provide(config.ParseEnvironment); err != nil {
		return err
	}
	if err := container.Provide(func() *http.Client {
		// each lookup carries its own deadline
		return &http.Client{}
	}); err != nil {
		return err
	}
	if err := container.Provide(func() npmRepo.CommandRunner {
		return npmRepo.NewExecRunner()
	}); err != nil {
		return err
	}

	// Register repository constructors
	if err := container.Provide(npmRepo.NewVersionRepository); err != nil {
		return err
	}
	if err := container.Provide(func(fs afero.Fs, env *config.Environment) *npmRepo.PackageManagerRepository {
		return npmRepo.NewPackageManagerRepository(fs, env.UserAgent)
	}); err != nil {
		return err
	}
	if err := container.Provide(templateRepo.NewTemplateRepository); err != nil {
		return err
	}
	if err := container.Provide(gitRepo.NewIdentityRepository); err != nil {
		return err
	}
	if err := container.Provide(gitRepo.NewGitRepository); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *npmRepo.VersionRepository) domainRepos.VersionRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *npmRepo.PackageManagerRepository) domainRepos.PackageManagerRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *templateRepo.TemplateRepository) domainRepos.TemplateRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *gitRepo.IdentityRepository) domainRepos.IdentityRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *gitRepo.GitRepository) domainRepos.GitRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
