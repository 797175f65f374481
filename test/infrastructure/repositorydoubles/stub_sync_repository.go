//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/repositories"
)

// StubSyncRepository pretends to sync into BaseDir/<name>.
type StubSyncRepository struct {
	mu          sync.Mutex
	synced      []entities.RepoIdentity
	inFlight    map[string]int
	maxInFlight map[string]int

	BaseDir string
	// Errs fails the sync of the named repositories.
	Errs map[string]error
	// Hold keeps every call in flight for this long, so overlapping syncs are observable.
	Hold time.Duration
}

var _ repositories.SyncRepository = (*StubSyncRepository)(nil)

func (s *StubSyncRepository) Sync(_ context.Context, identity entities.RepoIdentity) (string, error) {
	name := identity.Name()

	s.mu.Lock()
	s.synced = append(s.synced, identity)
	if s.inFlight == nil {
		s.inFlight = make(map[string]int)
		s.maxInFlight = make(map[string]int)
	}
	s.inFlight[name]++
	if s.inFlight[name] > s.maxInFlight[name] {
		s.maxInFlight[name] = s.inFlight[name]
	}
	s.mu.Unlock()

	if s.Hold > 0 {
		time.Sleep(s.Hold)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight[name]--

	if err, ok := s.Errs[name]; ok {
		return "", err
	}
	return filepath.Join(s.BaseDir, name), nil
}

// Synced returns the identities passed to Sync in call order.
func (s *StubSyncRepository) Synced() []entities.RepoIdentity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.RepoIdentity(nil), s.synced...)
}

// MaxInFlight returns the highest number of simultaneous syncs seen for name.
func (s *StubSyncRepository) MaxInFlight(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxInFlight[name]
}
