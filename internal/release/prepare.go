package release

import (
	"context"
	"fmt"
	"time"

	"github.com/ariel-frischer/semrel/internal/changelog"
	"github.com/ariel-frischer/semrel/internal/commit"
	"github.com/ariel-frischer/semrel/internal/git"
	"github.com/ariel-frischer/semrel/internal/migrate"
	"github.com/ariel-frischer/semrel/internal/semver"
)

// Input selects the history and version for a pending release.
type Input struct {
	Source  git.LogSource
	Range   git.Range
	Current string
	// ReleaseAs forces the release type when set.
	ReleaseAs semver.ReleaseType
	Date      time.Time
	Order     changelog.SectionOrder
	Boundary  migrate.Boundary
}

// Pending is a resolved but not yet executed release.
type Pending struct {
	Commits []commit.Commit
	Type    semver.ReleaseType
	Current string
	Next    string
	Info    changelog.ReleaseInfo
	Notes   string
}

// Prepare reads history, resolves the release type and next version, and
// renders the changelog entry.
func Prepare(ctx context.Context, in Input) (Pending, error) {
	if in.Source == nil {
		return Pending{}, fmt.Errorf("no commit source")
	}

	records, err := in.Source.Log(ctx, in.Range)
	if err != nil {
		return Pending{}, fmt.Errorf("reading commits %s: %w", in.Range, err)
	}
	commits := in.Boundary.Apply(commit.FromRecords(records))

	typ := in.ReleaseAs
	if typ == "" {
		typ = semver.Resolve(commits)
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	next := semver.Next(in.Current, typ)
	info := changelog.NewRelease(next, date, typ, commits, in.Order)

	logDebug("[release] %d commits, %s release %s -> %s", len(commits), typ, in.Current, next)
	return Pending{
		Commits: commits,
		Type:    typ,
		Current: in.Current,
		Next:    next,
		Info:    info,
		Notes:   changelog.Render(info),
	}, nil
}
