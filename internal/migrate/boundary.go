package migrate

import (
	"strings"

	"github.com/ariel-frischer/semrel/internal/commit"
)

// Boundary is the line-in-the-sand commit. Commits at or before it are
// history that predates the convention and are not enforced.
type Boundary struct {
	Hash string
}

// IsSet reports whether a boundary commit is configured.
func (b Boundary) IsSet() bool {
	return strings.TrimSpace(b.Hash) != ""
}

// Apply drops the commits at or before the boundary.
func (b Boundary) Apply(commits []commit.Commit) []commit.Commit {
	since, _ := SinceBoundary(commits, b.Hash)
	return since
}

// MinHashLength is the shortest abbreviated boundary hash accepted, the
// length git prints by default.
const MinHashLength = 7

// SinceBoundary returns the commits newer than the line-in-the-sand commit
// identified by hash. commits must be ordered newest first, as a git log
// returns them. The boundary commit itself is excluded. If hash is empty,
// shorter than MinHashLength, not found, or matches more than one commit,
// every commit is returned and found is false.
func SinceBoundary(commits []commit.Commit, hash string) (since []commit.Commit, found bool) {
	hash = strings.ToLower(strings.TrimSpace(hash))
	if len(hash) < MinHashLength {
		return commits, false
	}

	at := -1
	for i, c := range commits {
		if !matchesHash(c.Hash, hash) {
			continue
		}
		if at >= 0 {
			return commits, false
		}
		at = i
	}
	if at < 0 {
		return commits, false
	}
	return commits[:at], true
}

// matchesHash compares a commit hash with a full or abbreviated hash.
func matchesHash(commitHash, hash string) bool {
	commitHash = strings.ToLower(commitHash)
	if commitHash == "" {
		return false
	}
	if len(hash) >= len(commitHash) {
		return strings.HasPrefix(hash, commitHash)
	}
	return strings.HasPrefix(commitHash, hash)
}
