package changelog

import (
	"testing"

	"github.com/ariel-frischer/semrel/internal/commit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionTypes(sections []Section) []commit.Type {
	types := make([]commit.Type, len(sections))
	for i, s := range sections {
		types[i] = s.Type
	}
	return types
}

func TestBuild_FirstSeenOrder(t *testing.T) {
	t.Parallel()

	commits := []commit.Commit{
		{Type: commit.TypeChore, Subject: "a"},
		{Type: commit.TypeFeat, Subject: "b"},
		{Type: commit.TypeChore, Subject: "c"},
		{Type: commit.Type("wip"), Subject: "d"},
		{Type: commit.TypeFix, Subject: "e"},
	}

	sections := Build(commits, OrderFirstSeen)
	assert.Equal(t, []commit.Type{commit.TypeChore, commit.TypeFeat, "", commit.TypeFix}, sectionTypes(sections))
	require.Len(t, sections[0].Commits, 2)
	assert.Equal(t, "a", sections[0].Commits[0].Subject)
	assert.Equal(t, "c", sections[0].Commits[1].Subject)
	assert.Equal(t, "📝 Other Changes", sections[2].Title)
}

func TestBuild_CanonicalOrder(t *testing.T) {
	t.Parallel()

	commits := []commit.Commit{
		{Type: commit.Type("wip")},
		{Type: commit.TypeChore},
		{Type: commit.TypeFix},
		{Type: commit.TypeFeat},
	}

	sections := Build(commits, OrderCanonical)
	assert.Equal(t, []commit.Type{commit.TypeFeat, commit.TypeFix, commit.TypeChore, ""}, sectionTypes(sections))
}

func TestBuild_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Build(nil, OrderFirstSeen))
}

func TestParseSectionOrder(t *testing.T) {
	t.Parallel()

	got, err := ParseSectionOrder("")
	require.NoError(t, err)
	assert.Equal(t, OrderFirstSeen, got)

	got, err = ParseSectionOrder("canonical")
	require.NoError(t, err)
	assert.Equal(t, OrderCanonical, got)

	_, err = ParseSectionOrder("alphabetical")
	assert.Error(t, err)
}
