package commands

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/repositories"
)

// NewRepoRegistryFromList seeds the in-memory registry with the persisted list.
func NewRepoRegistryFromList(repoList repositories.RepoListRepository) (*entities.RepoRegistry, error) {
	identities, err := repoList.Load()
	if err != nil {
		return nil, err
	}

	logger.Debugf("Loaded %d tracked repositories", len(identities))
	return entities.NewRepoRegistry(identities...), nil
}
