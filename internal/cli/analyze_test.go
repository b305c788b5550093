// Package cli tests the analyze migration command.
// Related: internal/cli/analyze.go
// Tags: cli, analyze, migration, legacy-history

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ariel-frischer/semrel/internal/cli/shared"
	"github.com/ariel-frischer/semrel/internal/commit"
	"github.com/ariel-frischer/semrel/internal/migrate"
)

const legacyLog = `d4e5f6a7b8c9|feat: add export|Ann|2026-10-04
c3d4e5f6a7b8|Update readme|Bob|2026-10-03
b2c3d4e5f6a7|Fix crash on start|Bob|2026-10-02
a1b2c3d4e5f6|update deps|Ann|2026-10-01
`

func TestAnalyzeCmd_YAML(t *testing.T) {
	isolateConfig(t)

	out, err := executeCommand(t, legacyLog, "analyze", "--format", "yaml", "--from-file", "-")
	require.NoError(t, err)

	var report migrate.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))

	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 1, report.Conventional)
	assert.Equal(t, 3, report.Legacy)
	assert.Equal(t, migrate.StrategyBulk, report.Strategy)
	require.Len(t, report.Patterns, 2)
	assert.Equal(t, "update", report.Patterns[0].Pattern)
	assert.Equal(t, 2, report.Patterns[0].Count)
	assert.Equal(t, commit.TypeChore, report.Patterns[0].SuggestedType)
	assert.Equal(t, []string{"Update readme", "update deps"}, report.Patterns[0].Examples)
	assert.Equal(t, "fix", report.Patterns[1].Pattern)
	assert.Equal(t, commit.TypeFix, report.Patterns[1].SuggestedType)
}

func TestAnalyzeCmd_Text(t *testing.T) {
	isolateConfig(t)

	out, err := executeCommand(t, legacyLog, "analyze", "--from-file", "-", "--limit", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "History: 4 commits (1 conventional, 3 legacy)")
	assert.Contains(t, out, "Strategy: bulk")
	assert.Contains(t, out, `e.g. "Update readme"`)
	assert.Contains(t, out, "(1 of 2 patterns shown")
	assert.Contains(t, out, "adopt a hybrid strategy")
	assert.NotContains(t, out, "Mapping rules:")
}

func TestAnalyzeCmd_Rules(t *testing.T) {
	isolateConfig(t)

	out, err := executeCommand(t, legacyLog, "analyze", "--from-file", "-", "--rules")
	require.NoError(t, err)

	assert.Contains(t, out, "Mapping rules:")
	assert.Contains(t, out, "update         -> chore")
	assert.Contains(t, out, "git filter-branch --msg-filter")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "-- --all"), out)
}

func TestAnalyzeCmd_LineInTheSand(t *testing.T) {
	isolateConfig(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("migration:\n  line_in_the_sand: c3d4e5f6\n"), 0o644))

	out, err := executeCommand(t, legacyLog, "analyze", "--config", cfgPath, "--from-file", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Line in the sand: c3d4e5f6 (1 commits since)")
}

func TestAnalyzeCmd_InvalidFlags(t *testing.T) {
	tests := map[string][]string{
		"bad format":     {"analyze", "--format", "json"},
		"negative limit": {"analyze", "--limit", "-1"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			isolateConfig(t)

			_, err := executeCommand(t, legacyLog, append(args, "--from-file", "-")...)
			require.Error(t, err)
			assert.Equal(t, shared.ExitInvalidArguments, ExitCode(err))
		})
	}
}
