package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/repositories"
)

// WorkspaceRepository lays checkouts out as <reposDir>/<name> and archives
// them under <reposDir>/archive/<name>.
type WorkspaceRepository struct {
	reposDir string
}

var _ repositories.WorkspaceRepository = (*WorkspaceRepository)(nil)

// NewWorkspaceRepository creates a workspace rooted at reposDir.
func NewWorkspaceRepository(reposDir string) *WorkspaceRepository {
	return &WorkspaceRepository{reposDir: reposDir}
}

// Path returns the checkout directory for name.
func (it *WorkspaceRepository) Path(name string) string {
	return filepath.Join(it.reposDir, name)
}

// Archive moves the checkout into the archive directory. When an archived
// checkout with the same name already exists, the new one gets a timestamp suffix.
func (it *WorkspaceRepository) Archive(name string) error {
	source := it.Path(name)
	if _, err := os.Stat(source); errors.Is(err, os.ErrNotExist) {
		logger.Debugf("No checkout to archive for %s", name)
		return nil
	}

	archiveDir := filepath.Join(it.reposDir, archiveDirName)
	if err := os.MkdirAll(archiveDir, dirMode); err != nil {
		return fmt.Errorf("%w: create %s: %w", entities.ErrPersistenceFailure, archiveDir, err)
	}

	target := filepath.Join(archiveDir, name)
	if _, err := os.Stat(target); err == nil {
		target = fmt.Sprintf("%s-%s", target, time.Now().UTC().Format("20060102T150405Z"))
	}

	if err := os.Rename(source, target); err != nil {
		return fmt.Errorf("%w: move %s to %s: %w", entities.ErrPersistenceFailure, source, target, err)
	}

	logger.Infof("Archived checkout %s to %s", source, target)
	return nil
}
