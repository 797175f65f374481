package repositories

import (
	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
)

// RepoListRepository persists the tracked repository list.
// Implementations wrap I/O failures with entities.ErrPersistenceFailure.
type RepoListRepository interface {
	// Load returns every persisted identity in file order.
	Load() ([]entities.RepoIdentity, error)

	// Append records a newly tracked identity.
	Append(identity entities.RepoIdentity) error

	// Remove rewrites the list without the identity and records it in the archive list.
	Remove(identity entities.RepoIdentity) error
}
