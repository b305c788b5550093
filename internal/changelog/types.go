package changelog

import (
	"time"

	"github.com/ariel-frischer/semrel/internal/commit"
	"github.com/ariel-frischer/semrel/internal/semver"
)

// DateLayout is the layout of the release date in the version header.
const DateLayout = "2006-01-02"

// Section is a titled group of commits of one type. Unknown types share a
// single section whose Type is empty.
type Section struct {
	Type    commit.Type
	Title   string
	Commits []commit.Commit
}

// ReleaseInfo describes one release to render.
type ReleaseInfo struct {
	Version  string
	Date     string
	Type     semver.ReleaseType
	Sections []Section
}

// NewRelease builds the ReleaseInfo for commits released as version on date.
func NewRelease(version string, date time.Time, t semver.ReleaseType, commits []commit.Commit, order SectionOrder) ReleaseInfo {
	return ReleaseInfo{
		Version:  version,
		Date:     date.Format(DateLayout),
		Type:     t,
		Sections: Build(commits, order),
	}
}

// IsEmpty returns true if the release has no commits in any section.
func (r ReleaseInfo) IsEmpty() bool {
	return r.Count() == 0
}

// Count returns the total number of commits across all sections.
func (r ReleaseInfo) Count() int {
	n := 0
	for _, s := range r.Sections {
		n += len(s.Commits)
	}
	return n
}

// Breaking returns the breaking commits in section order.
func (r ReleaseInfo) Breaking() []commit.Commit {
	var out []commit.Commit
	for _, s := range r.Sections {
		for _, c := range s.Commits {
			if c.Breaking {
				out = append(out, c)
			}
		}
	}
	return out
}

// Contributors returns the distinct non-empty authors in first-seen order.
func (r ReleaseInfo) Contributors() []string {
	seen := make(map[string]bool)
	var authors []string
	for _, s := range r.Sections {
		for _, c := range s.Commits {
			if c.Author == "" || seen[c.Author] {
				continue
			}
			seen[c.Author] = true
			authors = append(authors, c.Author)
		}
	}
	return authors
}
