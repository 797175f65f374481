package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
	domainRepos "github.com/rios0rios0/fuzzkeeper/internal/domain/repositories"
	"github.com/rios0rios0/fuzzkeeper/internal/infrastructure/repositories/filesystem"
	"github.com/rios0rios0/fuzzkeeper/internal/infrastructure/repositories/gitsync"
	"github.com/rios0rios0/fuzzkeeper/internal/infrastructure/repositories/process"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register the persisted repository list and the checkout workspace
	if err := container.Provide(func(settings *entities.Settings) domainRepos.RepoListRepository {
		return filesystem.NewRepoListRepository(settings.ReposDir)
	}); err != nil {
		return err
	}
	if err := container.Provide(func(settings *entities.Settings) domainRepos.WorkspaceRepository {
		return filesystem.NewWorkspaceRepository(settings.ReposDir)
	}); err != nil {
		return err
	}

	// Register go-git based checkout sync
	if err := container.Provide(func(
		settings *entities.Settings,
		workspace domainRepos.WorkspaceRepository,
	) domainRepos.SyncRepository {
		return gitsync.NewGitSyncRepositoryFromSettings(settings, workspace)
	}); err != nil {
		return err
	}

	// Register the fuzzer launcher
	if err := container.Provide(func(settings *entities.Settings) domainRepos.ProcessLauncher {
		return process.NewExecLauncherFromSettings(settings)
	}); err != nil {
		return err
	}

	return nil
}
