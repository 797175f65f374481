package commands

import (
	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/repositories"
)

// Repos is the interface for the repos command.
type Repos interface {
	Execute() ([]entities.RepoIdentity, error)
}

// ReposCommand lists the persisted repository list without starting anything.
type ReposCommand struct {
	repoList repositories.RepoListRepository
}

// NewReposCommand creates a new ReposCommand.
func NewReposCommand(repoList repositories.RepoListRepository) *ReposCommand {
	return &ReposCommand{repoList: repoList}
}

func (it *ReposCommand) Execute() ([]entities.RepoIdentity, error) {
	return it.repoList.Load()
}
