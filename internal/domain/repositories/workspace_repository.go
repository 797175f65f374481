package repositories

// WorkspaceRepository maps repository names to working directories on disk.
type WorkspaceRepository interface {
	// Path returns the deterministic checkout path for a repository name.
	Path(name string) string

	// Archive moves the checkout into the archive area. A missing checkout is not an error.
	Archive(name string) error
}
