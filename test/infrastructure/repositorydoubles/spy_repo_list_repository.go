//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"
	"sync"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/repositories"
)

// SpyRepoListRepository is an in-memory repos.txt.
type SpyRepoListRepository struct {
	mu       sync.Mutex
	Records  []entities.RepoIdentity
	Archived []entities.RepoIdentity

	LoadErr   error
	AppendErr error
	RemoveErr error
}

var _ repositories.RepoListRepository = (*SpyRepoListRepository)(nil)

func (r *SpyRepoListRepository) Load() ([]entities.RepoIdentity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.LoadErr != nil {
		return nil, r.LoadErr
	}
	return append([]entities.RepoIdentity(nil), r.Records...), nil
}

func (r *SpyRepoListRepository) Append(identity entities.RepoIdentity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.AppendErr != nil {
		return r.AppendErr
	}
	r.Records = append(r.Records, identity)
	return nil
}

func (r *SpyRepoListRepository) Remove(identity entities.RepoIdentity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.RemoveErr != nil {
		return r.RemoveErr
	}
	for i, record := range r.Records {
		if record == identity {
			r.Records = append(r.Records[:i], r.Records[i+1:]...)
			r.Archived = append(r.Archived, identity)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", entities.ErrNotFound, identity)
}

// Snapshot returns a copy of the persisted records.
func (r *SpyRepoListRepository) Snapshot() []entities.RepoIdentity {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entities.RepoIdentity(nil), r.Records...)
}
