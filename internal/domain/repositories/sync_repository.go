package repositories

import (
	"context"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
)

// SyncRepository brings a local checkout up to date before a campaign starts.
type SyncRepository interface {
	// Sync clones (single branch) or pulls the repository, installs its declared
	// dependencies, and returns the working directory.
	Sync(ctx context.Context, identity entities.RepoIdentity) (string, error)
}
