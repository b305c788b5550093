package semver

import (
	"testing"

	"github.com/ariel-frischer/semrel/internal/commit"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		commits []commit.Commit
		want    ReleaseType
	}{
		"no commits": {
			commits: nil,
			want:    Patch,
		},
		"only fixes": {
			commits: []commit.Commit{{Type: commit.TypeFix}, {Type: commit.TypeChore}},
			want:    Patch,
		},
		"one feature among many": {
			commits: []commit.Commit{{Type: commit.TypeFix}, {Type: commit.TypeDocs}, {Type: commit.TypeFeat}},
			want:    Minor,
		},
		"breaking fix": {
			commits: []commit.Commit{{Type: commit.TypeFix, Breaking: true}},
			want:    Major,
		},
		"breaking feature before fix": {
			commits: []commit.Commit{
				{Type: commit.TypeFeat, Breaking: true, Subject: "change api"},
				{Type: commit.TypeFix, Subject: "fix login"},
			},
			want: Major,
		},
		"unknown type": {
			commits: []commit.Commit{{Type: commit.Type("wip")}},
			want:    Patch,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Resolve(tt.commits))
		})
	}
}

func TestParseReleaseType(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"major", "MINOR", " patch "} {
		_, err := ParseReleaseType(in)
		assert.NoError(t, err, in)
	}

	got, err := ParseReleaseType("Major")
	require.NoError(t, err)
	assert.Equal(t, Major, got)

	_, err = ParseReleaseType("huge")
	assert.Error(t, err)
}

// genCommit generates commits drawn from a small type set with an optional
// breaking marker.
func genCommit() gopter.Gen {
	return gopter.CombineGens(
		gen.OneConstOf(commit.TypeFeat, commit.TypeFix, commit.TypeDocs, commit.TypeChore, commit.Type("wip")),
		gen.Weighted([]gen.WeightedGen{
			{Weight: 9, Gen: gen.Const(false)},
			{Weight: 1, Gen: gen.Const(true)},
		}),
	).Map(func(values []interface{}) commit.Commit {
		return commit.Commit{
			Type:     values[0].(commit.Type),
			Breaking: values[1].(bool),
		}
	})
}

func expectedRelease(commits []commit.Commit) ReleaseType {
	breaking, feat := 0, 0
	for _, c := range commits {
		if c.Breaking {
			breaking++
		}
		if c.Type == commit.TypeFeat {
			feat++
		}
	}
	switch {
	case breaking > 0:
		return Major
	case feat > 0:
		return Minor
	default:
		return Patch
	}
}

func TestResolve_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("matches the priority rule", prop.ForAll(
		func(commits []commit.Commit) bool {
			return Resolve(commits) == expectedRelease(commits)
		},
		gen.SliceOf(genCommit()),
	))

	properties.Property("order independent", prop.ForAll(
		func(commits []commit.Commit) bool {
			reversed := make([]commit.Commit, len(commits))
			for i, c := range commits {
				reversed[len(commits)-1-i] = c
			}
			rotated := commits
			if len(commits) > 1 {
				rotated = append(append([]commit.Commit{}, commits[1:]...), commits[0])
			}
			want := Resolve(commits)
			return Resolve(reversed) == want && Resolve(rotated) == want
		},
		gen.SliceOf(genCommit()),
	))

	properties.TestingRun(t)
}
