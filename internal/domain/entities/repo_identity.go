package entities

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// BranchSeparator splits the optional branch from the repository path.
	BranchSeparator = ":"

	// ArchiveDirName is the archive area inside the repos directory. It is
	// reserved and never used as a repository name.
	ArchiveDirName = "archive"

	gitSuffix       = ".git"
	schemeDelimiter = "://"
)

// RepoIdentity identifies a tracked repository by its URL and an optional branch.
// Two identities are equal iff both fields are equal, so the type is usable as a map key.
type RepoIdentity struct {
	URL    string
	Branch string // empty when no branch was requested
}

// ParseRepoIdentity parses the record form "url" or "url:branch".
// The separator is searched only in the path part of the URL, so the scheme
// and port colons of "https://host:8443/org/repo" and the host colon of
// "git@host:org/repo" are never mistaken for it. Branches may contain slashes.
func ParseRepoIdentity(raw string) (RepoIdentity, error) {
	raw = strings.TrimSpace(raw)

	start, ok := pathStart(raw)
	if !ok {
		return RepoIdentity{}, fmt.Errorf("%w: %q has no path segment", ErrMalformedURL, raw)
	}

	url, branch := raw, ""
	if idx := strings.Index(raw[start:], BranchSeparator); idx >= 0 {
		url = raw[:start+idx]
		branch = raw[start+idx+len(BranchSeparator):]
		if branch == "" {
			return RepoIdentity{}, fmt.Errorf("%w: %q has an empty branch", ErrMalformedURL, raw)
		}
	}

	return NewRepoIdentity(url, branch)
}

// NewRepoIdentity builds an identity from a URL and an optional branch.
func NewRepoIdentity(url, branch string) (RepoIdentity, error) {
	url = strings.TrimSpace(url)
	branch = strings.TrimSpace(branch)

	start, ok := pathStart(url)
	if !ok {
		return RepoIdentity{}, fmt.Errorf("%w: %q has no path segment", ErrMalformedURL, url)
	}
	if strings.Contains(url[start:], BranchSeparator) {
		return RepoIdentity{}, fmt.Errorf(
			"%w: %q contains the reserved %q separator in its path", ErrMalformedURL, url, BranchSeparator,
		)
	}

	identity := RepoIdentity{URL: url, Branch: branch}
	if err := validateName(identity.Name()); err != nil {
		return RepoIdentity{}, fmt.Errorf("%w: %q: %w", ErrMalformedURL, url, err)
	}

	return identity, nil
}

// Name is the last path segment of the URL without a trailing ".git".
// It keys the supervisor map and names the working directory.
func (it RepoIdentity) Name() string {
	start, ok := pathStart(it.URL)
	if !ok {
		return ""
	}
	path := strings.TrimRight(it.URL[start:], "/")
	segment := path[strings.LastIndex(path, "/")+1:]
	return strings.TrimSuffix(segment, gitSuffix)
}

// validateName keeps the name usable as a single directory below the repos directory.
func validateName(name string) error {
	switch {
	case name == "":
		return errors.New("cannot derive a name")
	case name == "." || name == "..":
		return fmt.Errorf("name %q is a relative directory", name)
	case name == ArchiveDirName:
		return fmt.Errorf("name %q is reserved", name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("name %q contains a path separator", name)
	}
	return nil
}

// HasBranch reports whether a branch was requested.
func (it RepoIdentity) HasBranch() bool {
	return it.Branch != ""
}

// String returns the persisted record form, "url" or "url:branch".
func (it RepoIdentity) String() string {
	if it.HasBranch() {
		return it.URL + BranchSeparator + it.Branch
	}
	return it.URL
}

// pathStart returns the index where the repository path begins:
// after the authority of "scheme://host[:port]/", after the host of the
// scp-like "user@host:" form, or 0 for plain filesystem paths.
func pathStart(url string) (int, bool) {
	if idx := strings.Index(url, schemeDelimiter); idx >= 0 {
		authority := idx + len(schemeDelimiter)
		slash := strings.Index(url[authority:], "/")
		if slash < 0 {
			return 0, false
		}
		start := authority + slash + 1
		return start, start < len(url)
	}

	colon := strings.Index(url, BranchSeparator)
	slash := strings.Index(url, "/")
	switch {
	case colon >= 0 && (slash < 0 || colon < slash):
		start := colon + 1
		return start, start < len(url)
	case slash >= 0:
		return 0, true
	default:
		return 0, false
	}
}
