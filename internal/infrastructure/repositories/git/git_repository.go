package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"
)

// GitRepository initializes repositories on the local filesystem with go-git.
type GitRepository struct{}

// NewGitRepository creates a new GitRepository.
func NewGitRepository() *GitRepository {
	return &GitRepository{}
}

// Init runs the equivalent of `git init` in dir.
func (it *GitRepository) Init(dir string) error {
	if _, err := gogit.PlainInit(dir, false); err != nil {
		if errors.Is(err, gogit.ErrRepositoryAlreadyExists) {
			logger.Debugf("[git] %s is already a repository", dir)
			return nil
		}
		return fmt.Errorf("failed to initialize git repository in %q: %w", dir, err)
	}
	logger.Infof("[git] Initialized empty repository in %s", dir)
	return nil
}
