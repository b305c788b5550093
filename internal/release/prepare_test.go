package release

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/semrel/internal/changelog"
	"github.com/ariel-frischer/semrel/internal/commit"
	"github.com/ariel-frischer/semrel/internal/git"
	"github.com/ariel-frischer/semrel/internal/migrate"
	"github.com/ariel-frischer/semrel/internal/semver"
)

type staticSource struct {
	records []commit.Record
	err     error
	gotRng  git.Range
}

func (s *staticSource) Log(_ context.Context, rng git.Range) ([]commit.Record, error) {
	s.gotRng = rng
	return s.records, s.err
}

func TestPrepare(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)
	records := []commit.Record{
		{Hash: "3333333333", Message: "fix: handle nil", Author: "Grace", Date: date},
		{Hash: "2222222222", Message: "feat(api): add endpoint", Author: "Ada", Date: date},
		{Hash: "1111111111", Message: "chore: old", Author: "Ada", Date: date},
	}

	tests := map[string]struct {
		in          Input
		wantType    semver.ReleaseType
		wantNext    string
		wantCommits int
	}{
		"resolved from commits": {
			in:          Input{Current: "1.2.3"},
			wantType:    semver.Minor,
			wantNext:    "1.3.0",
			wantCommits: 3,
		},
		"forced release type": {
			in:          Input{Current: "1.2.3", ReleaseAs: semver.Major},
			wantType:    semver.Major,
			wantNext:    "2.0.0",
			wantCommits: 3,
		},
		"boundary drops older commits": {
			in:          Input{Current: "1.2.3", Boundary: migrate.Boundary{Hash: "2222222222"}},
			wantType:    semver.Patch,
			wantNext:    "1.2.4",
			wantCommits: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			src := &staticSource{records: records}
			in := tt.in
			in.Source = src
			in.Range = git.Range{From: "v1.2.3"}
			in.Date = date
			in.Order = changelog.OrderFirstSeen

			got, err := Prepare(context.Background(), in)
			require.NoError(t, err)

			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantNext, got.Next)
			assert.Len(t, got.Commits, tt.wantCommits)
			assert.Equal(t, "v1.2.3", src.gotRng.From)
			assert.Contains(t, got.Notes, "## ["+tt.wantNext+"] - 2026-10-14")
		})
	}
}

func TestPrepare_Errors(t *testing.T) {
	t.Parallel()

	_, err := Prepare(context.Background(), Input{})
	assert.Error(t, err)

	boom := errors.New("boom")
	_, err = Prepare(context.Background(), Input{Source: &staticSource{err: boom}})
	assert.ErrorIs(t, err, boom)
}

func TestPrepare_EmptyHistoryIsStub(t *testing.T) {
	t.Parallel()

	got, err := Prepare(context.Background(), Input{Source: &staticSource{}, Current: "0.1.0", Date: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	assert.Equal(t, semver.Patch, got.Type)
	assert.Equal(t, "0.1.1", got.Next)
	assert.True(t, got.Info.IsEmpty())
	assert.Equal(t, "## [0.1.1] - 2026-01-02 (PATCH RELEASE)\n\n", got.Notes)
}
