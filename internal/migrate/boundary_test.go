package migrate

import (
	"testing"

	"github.com/ariel-frischer/semrel/internal/commit"
	"github.com/stretchr/testify/assert"
)

func TestSinceBoundary(t *testing.T) {
	t.Parallel()

	commits := []commit.Commit{
		{Hash: "cccc3333", Subject: "newest"},
		{Hash: "bbbb2222", Subject: "boundary"},
		{Hash: "aaaa1111", Subject: "oldest"},
	}

	tests := map[string]struct {
		hash      string
		wantLen   int
		wantFound bool
	}{
		"full hash":        {hash: "bbbb2222deadbeefdeadbeefdeadbeefdeadbeef", wantLen: 1, wantFound: true},
		"abbreviated hash": {hash: "BBBB222", wantLen: 1, wantFound: true},
		"newest commit":    {hash: "cccc3333", wantLen: 0, wantFound: true},
		"unknown hash":     {hash: "ffff0000", wantLen: 3, wantFound: false},
		"too short":        {hash: "c", wantLen: 3, wantFound: false},
		"below minimum":    {hash: "cccc33", wantLen: 3, wantFound: false},
		"empty":            {hash: "", wantLen: 3, wantFound: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			since, found := SinceBoundary(commits, tt.hash)
			assert.Equal(t, tt.wantFound, found)
			assert.Len(t, since, tt.wantLen)
		})
	}
}

func TestSinceBoundary_Ambiguous(t *testing.T) {
	t.Parallel()

	commits := []commit.Commit{
		{Hash: "abcdef1111111111"},
		{Hash: "abcdef1222222222"},
		{Hash: "0000000000000000"},
	}

	since, found := SinceBoundary(commits, "abcdef1")
	assert.False(t, found)
	assert.Len(t, since, 3)

	since, found = SinceBoundary(commits, "abcdef12")
	assert.True(t, found)
	assert.Len(t, since, 1)
}

func TestBoundaryApply(t *testing.T) {
	t.Parallel()

	commits := []commit.Commit{{Hash: "cccc3333"}, {Hash: "bbbb2222"}}

	assert.False(t, Boundary{}.IsSet())
	assert.Len(t, Boundary{}.Apply(commits), 2)

	b := Boundary{Hash: "bbbb2222"}
	assert.True(t, b.IsSet())
	assert.Equal(t, []commit.Commit{{Hash: "cccc3333"}}, b.Apply(commits))
}
