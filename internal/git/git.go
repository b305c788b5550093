// Package git reads commit history and tags for semrel. It uses go-git for
// all repository access so that history can be read without a git binary;
// writes (commit, tag, push) go through the release runner instead.
package git

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/ariel-frischer/semrel/internal/semver"
)

// ErrNoTags is returned when the repository has no semver tag for the
// configured prefix. Callers treat it as "release all history".
var ErrNoTags = errors.New("no version tags found")

// debugLogger is a function that logs debug messages when debug mode is enabled.
// By default, it's a no-op. Set it via SetDebugLogger to enable debug output.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// Repo is a go-git backed repository handle.
type Repo struct {
	repo *git.Repository
}

// Open opens the repository containing path, walking up to the nearest
// .git directory. An empty path means the current working directory.
func Open(path string) (*Repo, error) {
	repo, err := openRepo(path)
	if err != nil {
		return nil, err
	}
	return &Repo{repo: repo}, nil
}

// NewRepo wraps an already opened repository, e.g. an in-memory one.
func NewRepo(repo *git.Repository) *Repo {
	return &Repo{repo: repo}
}

// openRepo opens a git repository at the specified path or current working directory.
// It uses go-git's PlainOpenWithOptions with DetectDotGit enabled to traverse
// up the directory tree to find the repository root.
func openRepo(path string) (*git.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[git] opening repository at %s", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	return repo, nil
}

// Root returns the worktree root directory.
func (r *Repo) Root() (string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}

// CurrentBranch returns the checked out branch name, or "" for a detached HEAD.
func (r *Repo) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD reference: %w", err)
	}
	if !head.Name().IsBranch() {
		logDebug("[git] CurrentBranch: detached HEAD state")
		return "", nil
	}
	return head.Name().Short(), nil
}

// IsClean reports whether the worktree has no modified or untracked files.
func (r *Repo) IsClean() (bool, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("getting worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("reading worktree status: %w", err)
	}
	return status.IsClean(), nil
}

// Tags returns the short names of all tags.
func (r *Repo) Tags() ([]string, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	var tags []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		tags = append(tags, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}

	logDebug("[git] Tags: found %d tags", len(tags))
	return tags, nil
}

// LatestTag returns the highest semver tag carrying prefix, or ErrNoTags.
func (r *Repo) LatestTag(prefix string) (string, error) {
	tags, err := r.Tags()
	if err != nil {
		return "", err
	}
	tag, ok := semver.LatestTag(tags, prefix)
	if !ok {
		return "", ErrNoTags
	}
	logDebug("[git] LatestTag: %s", tag)
	return tag, nil
}

// resolveCommit resolves a tag name, branch or hash to a commit. Annotated
// tags are peeled to the commit they point at.
func (r *Repo) resolveCommit(rev string) (*object.Commit, error) {
	if ref, err := r.repo.Tag(rev); err == nil {
		if tag, err := r.repo.TagObject(ref.Hash()); err == nil {
			return tag.Commit()
		}
		return r.repo.CommitObject(ref.Hash())
	}

	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", rev, err)
	}
	return r.repo.CommitObject(*hash)
}
