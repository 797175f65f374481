package gitsync

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/repositories"
)

const (
	remoteName      = "origin"
	defaultUsername = "x-access-token"
)

// GitSyncRepository keeps <reposDir>/<name> checkouts up to date with go-git.
type GitSyncRepository struct {
	workspace repositories.WorkspaceRepository
	installer *DependencyInstaller
	auth      transport.AuthMethod
}

var _ repositories.SyncRepository = (*GitSyncRepository)(nil)

// NewGitSyncRepository creates a sync repository. A nil installer skips
// dependency installation. Token-based HTTP auth is used when token is set.
func NewGitSyncRepository(
	workspace repositories.WorkspaceRepository,
	installer *DependencyInstaller,
	username, token string,
) *GitSyncRepository {
	var auth transport.AuthMethod
	if token != "" {
		if username == "" {
			username = defaultUsername
		}
		auth = &githttp.BasicAuth{Username: username, Password: token}
	}

	return &GitSyncRepository{
		workspace: workspace,
		installer: installer,
		auth:      auth,
	}
}

// NewGitSyncRepositoryFromSettings wires the sync repository from the sync settings.
func NewGitSyncRepositoryFromSettings(
	settings *entities.Settings,
	workspace repositories.WorkspaceRepository,
) *GitSyncRepository {
	var installer *DependencyInstaller
	if settings.Sync.ShouldInstallDependencies() {
		installer = NewDependencyInstaller(settings.Sync.Installers)
	}
	return NewGitSyncRepository(workspace, installer, settings.Sync.Username, settings.Sync.Token)
}

// Sync clones the repository (single branch) on first use and pulls on later
// calls, then installs declared dependencies.
func (it *GitSyncRepository) Sync(ctx context.Context, identity entities.RepoIdentity) (string, error) {
	path := it.workspace.Path(identity.Name())

	_, statErr := os.Stat(path)
	switch {
	case errors.Is(statErr, os.ErrNotExist):
		if err := it.clone(ctx, identity, path); err != nil {
			return "", err
		}
	case statErr != nil:
		return "", fmt.Errorf("%w: stat %s: %w", entities.ErrSyncFailure, path, statErr)
	default:
		if err := it.pull(ctx, identity, path); err != nil {
			return "", err
		}
	}

	if it.installer != nil {
		if _, err := it.installer.Install(ctx, path); err != nil {
			return "", err
		}
	}

	return path, nil
}

func (it *GitSyncRepository) clone(ctx context.Context, identity entities.RepoIdentity, path string) error {
	logger.Infof("Cloning %s into %s", identity, path)

	opts := &git.CloneOptions{
		URL:          identity.URL,
		Auth:         it.authFor(identity.URL),
		RemoteName:   remoteName,
		SingleBranch: true,
	}
	if identity.HasBranch() {
		opts.ReferenceName = plumbing.NewBranchReferenceName(identity.Branch)
	}

	if _, err := git.PlainCloneContext(ctx, path, false, opts); err != nil {
		// a failed clone leaves a partial directory that would be pulled next time
		_ = os.RemoveAll(path)
		return fmt.Errorf("%w: clone %s: %w", entities.ErrSyncFailure, identity, err)
	}
	return nil
}

func (it *GitSyncRepository) pull(ctx context.Context, identity entities.RepoIdentity, path string) error {
	logger.Infof("Pulling %s in %s", identity, path)

	repo, err := git.PlainOpen(path)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", entities.ErrSyncFailure, path, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("%w: worktree of %s: %w", entities.ErrSyncFailure, path, err)
	}

	opts := &git.PullOptions{
		RemoteName:   remoteName,
		Auth:         it.authFor(identity.URL),
		SingleBranch: true,
	}
	if identity.HasBranch() {
		opts.ReferenceName = plumbing.NewBranchReferenceName(identity.Branch)
	}

	err = worktree.PullContext(ctx, opts)
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		logger.Debugf("%s is already up to date", identity)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: pull %s: %w", entities.ErrSyncFailure, identity, err)
	}
	return nil
}

// authFor only sends the token over HTTP(S); SSH URLs use the agent.
func (it *GitSyncRepository) authFor(url string) transport.AuthMethod {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return it.auth
	}
	return nil
}
