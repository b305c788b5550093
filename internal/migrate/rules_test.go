package migrate

import (
	"strings"
	"testing"

	"github.com/ariel-frischer/semrel/internal/commit"
	"github.com/stretchr/testify/assert"
)

func TestMappingRules(t *testing.T) {
	t.Parallel()

	rules := MappingRules([]Pattern{
		{Pattern: "add", SuggestedType: commit.TypeFeat},
		{Pattern: "", SuggestedType: commit.TypeChore},
		{Pattern: "bug", SuggestedType: commit.TypeFix},
	})

	assert.Equal(t, map[string]commit.Type{"add": commit.TypeFeat, "bug": commit.TypeFix}, rules)
}

func TestRewriteMessage(t *testing.T) {
	t.Parallel()

	rules := map[string]commit.Type{"add": commit.TypeFeat, "fixed": commit.TypeFix}

	tests := map[string]struct {
		msg  string
		want string
	}{
		"rule applies":         {msg: "Add dark mode", want: "feat: Add dark mode"},
		"body preserved":       {msg: "Fixed crash\n\nDetails", want: "fix: Fixed crash\n\nDetails"},
		"no rule":              {msg: "Merge branch", want: "Merge branch"},
		"already conventional": {msg: "docs: add guide", want: "docs: add guide"},
		"surrounding space":    {msg: "  add thing ", want: "feat: add thing"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, RewriteMessage(tt.msg, rules))
		})
	}
}

func TestFilterBranchCommand(t *testing.T) {
	t.Parallel()

	cmd := FilterBranchCommand(map[string]commit.Type{
		"update": commit.TypeChore,
		"add":    commit.TypeFeat,
		"it's":   commit.TypeChore,
	}, "")

	assert.Contains(t, cmd, "git filter-branch --msg-filter '")
	assert.Contains(t, cmd, `-e "1s/^\(add\)\([[:space:]]\|$\)/feat: \1\2/I"`)
	assert.Contains(t, cmd, `-e "1s/^\(update\)\([[:space:]]\|$\)/chore: \1\2/I"`)
	assert.NotContains(t, cmd, "it's")
	assert.Less(t, strings.Index(cmd, "(add"), strings.Index(cmd, "(update"), "rules are sorted")
	assert.Contains(t, cmd, "-- --all")

	ranged := FilterBranchCommand(map[string]commit.Type{"add": commit.TypeFeat}, "v1.0.0..HEAD")
	assert.Contains(t, ranged, "' v1.0.0..HEAD")
}
