//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"path/filepath"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/repositories"
)

// SpyWorkspaceRepository records archived checkouts without touching the disk.
type SpyWorkspaceRepository struct {
	BaseDir    string
	ArchiveErr error
	Archived   []string
}

var _ repositories.WorkspaceRepository = (*SpyWorkspaceRepository)(nil)

func (w *SpyWorkspaceRepository) Path(name string) string {
	return filepath.Join(w.BaseDir, name)
}

func (w *SpyWorkspaceRepository) Archive(name string) error {
	if w.ArchiveErr != nil {
		return w.ArchiveErr
	}
	w.Archived = append(w.Archived, name)
	return nil
}
