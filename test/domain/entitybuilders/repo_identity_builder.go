//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
)

const (
	defaultIdentityURL = "https://github.com/crytic/test-repo.git"
)

// RepoIdentityBuilder helps create test repository identities with a fluent interface.
type RepoIdentityBuilder struct {
	*testkit.BaseBuilder
	url    string
	branch string
}

// NewRepoIdentityBuilder creates a new identity builder with sensible defaults.
func NewRepoIdentityBuilder() *RepoIdentityBuilder {
	return &RepoIdentityBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		url:         defaultIdentityURL,
	}
}

// WithURL sets the repository URL.
func (b *RepoIdentityBuilder) WithURL(url string) *RepoIdentityBuilder {
	b.url = url
	return b
}

// WithName sets the URL to a GitHub URL whose derived name is name.
func (b *RepoIdentityBuilder) WithName(name string) *RepoIdentityBuilder {
	b.url = "https://github.com/crytic/" + name + ".git"
	return b
}

// WithBranch sets the branch.
func (b *RepoIdentityBuilder) WithBranch(branch string) *RepoIdentityBuilder {
	b.branch = branch
	return b
}

// Build creates the identity (satisfies testkit.Builder interface).
func (b *RepoIdentityBuilder) Build() interface{} {
	return b.BuildIdentity()
}

// BuildIdentity creates the identity with a concrete return type.
func (b *RepoIdentityBuilder) BuildIdentity() entities.RepoIdentity {
	return entities.RepoIdentity{
		URL:    b.url,
		Branch: b.branch,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *RepoIdentityBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.url = defaultIdentityURL
	b.branch = ""
	return b
}

// Clone creates a deep copy of the RepoIdentityBuilder.
func (b *RepoIdentityBuilder) Clone() testkit.Builder {
	return &RepoIdentityBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		url:         b.url,
		branch:      b.branch,
	}
}
