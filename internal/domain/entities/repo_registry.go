package entities

import "sync"

// RepoRegistry is the deduplicated list of tracked repositories.
// Persisting changes is left to the caller: Add and Remove report whether
// the list changed so the caller knows when to write.
type RepoRegistry struct {
	mu    sync.Mutex
	repos []RepoIdentity
}

// NewRepoRegistry creates a registry seeded with the given identities, dropping duplicates.
func NewRepoRegistry(initial ...RepoIdentity) *RepoRegistry {
	registry := &RepoRegistry{repos: make([]RepoIdentity, 0, len(initial))}
	for _, identity := range initial {
		registry.Add(identity)
	}
	return registry
}

// Add inserts the identity unless an equal one is already tracked.
func (r *RepoRegistry) Add(identity RepoIdentity) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(identity) >= 0 {
		return false
	}
	r.repos = append(r.repos, identity)
	return true
}

// Remove deletes the identity, reporting whether it was tracked.
func (r *RepoRegistry) Remove(identity RepoIdentity) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(identity)
	if idx < 0 {
		return false
	}
	r.repos = append(r.repos[:idx], r.repos[idx+1:]...)
	return true
}

// List returns a snapshot in insertion order.
func (r *RepoRegistry) List() []RepoIdentity {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]RepoIdentity, len(r.repos))
	copy(result, r.repos)
	return result
}

// FindByName returns the first tracked identity whose derived name matches.
func (r *RepoRegistry) FindByName(name string) (RepoIdentity, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, identity := range r.repos {
		if identity.Name() == name {
			return identity, true
		}
	}
	return RepoIdentity{}, false
}

func (r *RepoRegistry) indexOf(identity RepoIdentity) int {
	for i, tracked := range r.repos {
		if tracked == identity {
			return i
		}
	}
	return -1
}
