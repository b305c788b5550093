package semver

import (
	"fmt"
	"strings"

	"github.com/ariel-frischer/semrel/internal/commit"
)

// ReleaseType is the unit of semantic-version increment.
type ReleaseType string

const (
	Major ReleaseType = "major"
	Minor ReleaseType = "minor"
	Patch ReleaseType = "patch"
)

// String returns the string representation of the release type.
func (t ReleaseType) String() string {
	return string(t)
}

// ParseReleaseType parses a user-supplied release type, case-insensitively.
func ParseReleaseType(s string) (ReleaseType, error) {
	switch ReleaseType(strings.ToLower(strings.TrimSpace(s))) {
	case Major:
		return Major, nil
	case Minor:
		return Minor, nil
	case Patch:
		return Patch, nil
	default:
		return "", fmt.Errorf("invalid release type %q (expected: major, minor, patch)", s)
	}
}

// Resolve returns Major if any commit is breaking, Minor if any commit is a
// feature, and Patch otherwise. The result does not depend on commit order.
func Resolve(commits []commit.Commit) ReleaseType {
	hasFeature := false
	for _, c := range commits {
		if c.Breaking {
			return Major
		}
		if c.Type == commit.TypeFeat {
			hasFeature = true
		}
	}
	if hasFeature {
		return Minor
	}
	return Patch
}
