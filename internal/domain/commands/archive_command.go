package commands

import (
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/campaigns"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/repositories"
)

// Archive is the interface for the archive command.
type Archive interface {
	Execute(name string) error
}

// ArchiveCommand stops tracking a repository: its campaign is interrupted,
// its record moves to the archive list and its checkout to the archive area.
type ArchiveCommand struct {
	registry   *entities.RepoRegistry
	repoList   repositories.RepoListRepository
	workspace  repositories.WorkspaceRepository
	supervisor *campaigns.Supervisor
}

// NewArchiveCommand creates a new ArchiveCommand.
func NewArchiveCommand(
	registry *entities.RepoRegistry,
	repoList repositories.RepoListRepository,
	workspace repositories.WorkspaceRepository,
	supervisor *campaigns.Supervisor,
) *ArchiveCommand {
	return &ArchiveCommand{
		registry:   registry,
		repoList:   repoList,
		workspace:  workspace,
		supervisor: supervisor,
	}
}

func (it *ArchiveCommand) Execute(name string) error {
	identity, ok := it.registry.FindByName(name)
	if !ok {
		return fmt.Errorf("%w: repository %s is not tracked", entities.ErrNotFound, name)
	}

	err := it.supervisor.Stop(name)
	switch {
	case err == nil:
		logger.Infof("Stopped %s before archiving", name)
	case errors.Is(err, entities.ErrNotFound), errors.Is(err, entities.ErrNotRunning):
	default:
		return err
	}

	if err = it.repoList.Remove(identity); err != nil {
		return err
	}
	it.registry.Remove(identity)

	return it.workspace.Archive(name)
}
