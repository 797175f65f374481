package filesystem

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/repositories"
)

const (
	reposFileName   = "repos.txt"
	archiveDirName  = entities.ArchiveDirName
	archiveFileName = "archive.txt"

	dirMode  = 0o755
	fileMode = 0o644
)

// RepoListRepository stores tracked repositories as newline-delimited
// "url" or "url:branch" records in <reposDir>/repos.txt.
type RepoListRepository struct {
	mu       sync.Mutex
	reposDir string
}

var _ repositories.RepoListRepository = (*RepoListRepository)(nil)

// NewRepoListRepository creates a repository list rooted at reposDir.
func NewRepoListRepository(reposDir string) *RepoListRepository {
	return &RepoListRepository{reposDir: reposDir}
}

// Load reads every record, creating the directory and an empty file when missing.
// Lines that do not parse are logged and skipped.
func (it *RepoListRepository) Load() ([]entities.RepoIdentity, error) {
	it.mu.Lock()
	defer it.mu.Unlock()

	if err := os.MkdirAll(it.reposDir, dirMode); err != nil {
		return nil, fmt.Errorf("%w: create %s: %w", entities.ErrPersistenceFailure, it.reposDir, err)
	}

	file, err := os.OpenFile(it.listPath(), os.O_RDONLY|os.O_CREATE, fileMode)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", entities.ErrPersistenceFailure, it.listPath(), err)
	}
	defer file.Close()

	var identities []entities.RepoIdentity
	scanner := bufio.NewScanner(file)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		identity, parseErr := entities.ParseRepoIdentity(line)
		if parseErr != nil {
			logger.Warnf("Skipping %s line %d: %v", reposFileName, lineNo, parseErr)
			continue
		}
		identities = append(identities, identity)
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return nil, fmt.Errorf("%w: read %s: %w", entities.ErrPersistenceFailure, it.listPath(), scanErr)
	}

	return identities, nil
}

// Append adds one record at the end of repos.txt.
func (it *RepoListRepository) Append(identity entities.RepoIdentity) error {
	it.mu.Lock()
	defer it.mu.Unlock()

	if err := appendLine(it.listPath(), identity.String()); err != nil {
		return fmt.Errorf("%w: %w", entities.ErrPersistenceFailure, err)
	}
	return nil
}

// Remove rewrites repos.txt without the identity's record and appends the
// record to archive/archive.txt. Removing an unknown identity is an error.
func (it *RepoListRepository) Remove(identity entities.RepoIdentity) error {
	it.mu.Lock()
	defer it.mu.Unlock()

	content, err := os.ReadFile(it.listPath())
	if err != nil {
		return fmt.Errorf("%w: read %s: %w", entities.ErrPersistenceFailure, it.listPath(), err)
	}

	record := identity.String()
	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	kept := make([]string, 0, len(lines))
	found := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if !found && trimmed == record {
			found = true
			continue
		}
		kept = append(kept, trimmed)
	}
	if !found {
		return fmt.Errorf("%w: %s is not in %s", entities.ErrNotFound, record, reposFileName)
	}

	if archiveErr := os.MkdirAll(filepath.Join(it.reposDir, archiveDirName), dirMode); archiveErr != nil {
		return fmt.Errorf("%w: create archive directory: %w", entities.ErrPersistenceFailure, archiveErr)
	}
	if appendErr := appendLine(filepath.Join(it.reposDir, archiveDirName, archiveFileName), record); appendErr != nil {
		return fmt.Errorf("%w: %w", entities.ErrPersistenceFailure, appendErr)
	}

	if writeErr := writeFileAtomic(it.listPath(), joinLines(kept)); writeErr != nil {
		return fmt.Errorf("%w: %w", entities.ErrPersistenceFailure, writeErr)
	}

	return nil
}

func (it *RepoListRepository) listPath() string {
	return filepath.Join(it.reposDir, reposFileName)
}

func appendLine(path, line string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, fileMode)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	_, writeErr := file.WriteString(line + "\n")
	closeErr := file.Close()
	if err = errors.Join(writeErr, closeErr); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// writeFileAtomic replaces path through a temp file in the same directory.
func writeFileAtomic(path, content string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	_, writeErr := tmp.WriteString(content)
	closeErr := tmp.Close()
	if err = errors.Join(writeErr, closeErr); err != nil {
		return fmt.Errorf("write temp file for %s: %w", path, err)
	}
	if err = os.Chmod(tmp.Name(), fileMode); err != nil {
		return fmt.Errorf("chmod temp file for %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
