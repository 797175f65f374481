package entities

import "errors"

var (
	// ErrMalformedURL is returned when a repository URL cannot be turned into a RepoIdentity.
	ErrMalformedURL = errors.New("malformed repository URL")

	// ErrNotFound is returned when no campaign (or tracked repository) exists for a name.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyRunning is returned by Start when the campaign is already running.
	// No process is spawned in that case.
	ErrAlreadyRunning = errors.New("campaign already running")

	// ErrNotRunning is returned by Stop when the campaign exists but has already terminated.
	ErrNotRunning = errors.New("campaign not running")

	// ErrSpawnFailure is returned when the fuzzer process could not be created.
	ErrSpawnFailure = errors.New("failed to spawn fuzzer")

	// ErrSignalFailure is returned by Stop when the interrupt could not be delivered.
	// The campaign entry is removed anyway, so the process may be left orphaned.
	ErrSignalFailure = errors.New("failed to signal fuzzer")

	// ErrPersistenceFailure wraps any I/O failure on the persisted repository list or workspace.
	ErrPersistenceFailure = errors.New("persistence failure")

	// ErrSyncFailure wraps failures while cloning, pulling or installing dependencies.
	ErrSyncFailure = errors.New("repository sync failure")
)
