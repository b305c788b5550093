// Package cli tests the next and changelog commands against file-based history.
// Related: internal/cli/next.go, internal/cli/changelog.go, internal/cli/pending.go
// Tags: cli, next, changelog, versioning

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/semrel/internal/changelog"
	"github.com/ariel-frischer/semrel/internal/cli/shared"
)

func TestNextCmd(t *testing.T) {
	tests := map[string]struct {
		log      string
		version  string
		args     []string
		want     string
		wantCode int
	}{
		"feature makes minor": {
			log:     sampleLog,
			version: "1.2.3",
			want:    "1.3.0\n",
		},
		"breaking makes major": {
			log:     "c3d4e5f6a7b8|feat!: drop v1 api|Cy|2026-10-03\n" + sampleLog,
			version: "1.2.3",
			want:    "2.0.0\n",
		},
		"fixes only make patch": {
			log:     "b2c3d4e5f6a7|fix: crash|Bob|2026-10-02\n",
			version: "v0.4.9",
			want:    "0.4.10\n",
		},
		"release-as overrides": {
			log:     sampleLog,
			version: "1.2.3",
			args:    []string{"--release-as", "MAJOR"},
			want:    "2.0.0\n",
		},
		"empty history is a patch": {
			log:     "",
			version: "1.0.0",
			want:    "1.0.1\n",
		},
		"invalid release-as": {
			log:      sampleLog,
			version:  "1.2.3",
			args:     []string{"--release-as", "huge"},
			wantCode: shared.ExitInvalidArguments,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			isolateConfig(t)
			dir, cfgPath := writeProject(t, tt.version, "")

			args := append([]string{"next", "--repo", dir, "--config", cfgPath, "--from-file", "-"}, tt.args...)
			out, err := executeCommand(t, tt.log, args...)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, ExitCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestNextCmd_Verbose(t *testing.T) {
	isolateConfig(t)
	dir, cfgPath := writeProject(t, "1.2.3", "")

	out, err := executeCommand(t, sampleLog, "next", "-v", "--repo", dir, "--config", cfgPath, "--from-file", "-")
	require.NoError(t, err)

	assert.Contains(t, out, "current: 1.2.3 (from manifest)")
	assert.Contains(t, out, "commits: 2")
	assert.Contains(t, out, "type:    minor")
	assert.True(t, strings.HasSuffix(out, "1.3.0\n"))
}

func TestNextCmd_MissingManifestDefaults(t *testing.T) {
	isolateConfig(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("manifest: does-not-exist.json\n"), 0o644))

	out, err := executeCommand(t, sampleLog, "next", "--config", cfgPath, "--from-file", "-")
	require.NoError(t, err)
	assert.Equal(t, "0.1.0\n", out)
}

func TestChangelogCmd_Stdout(t *testing.T) {
	isolateConfig(t)
	dir, cfgPath := writeProject(t, "1.2.3", "")

	out, err := executeCommand(t, sampleLog, "changelog", "--repo", dir, "--config", cfgPath, "--from-file", "-")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "## [1.3.0] - "), out)
	assert.Contains(t, out, "(MINOR RELEASE)")
	assert.Contains(t, out, "### ✨ Features")
	assert.Contains(t, out, "### 🐛 Bug Fixes")
	assert.Contains(t, out, "add login page")
	assert.Less(t, strings.Index(out, "Bug Fixes"), strings.Index(out, "Features"),
		"sections follow the order types first appear in the log")
}

func TestChangelogCmd_VersionOverride(t *testing.T) {
	isolateConfig(t)
	dir, cfgPath := writeProject(t, "1.2.3", "")

	out, err := executeCommand(t, sampleLog, "changelog", "--repo", dir, "--config", cfgPath,
		"--from-file", "-", "--version", "2.0.0-rc.1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "## [2.0.0-rc.1] - "), out)
}

func TestChangelogCmd_Output(t *testing.T) {
	isolateConfig(t)
	dir, cfgPath := writeProject(t, "1.2.3", "changelog:\n  placement: prepend\n")

	out, err := executeCommand(t, sampleLog, "changelog", "--repo", dir, "--config", cfgPath,
		"--from-file", "-", "--output", "CHANGELOG.md")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 1.3.0 (2 commits)")

	content, err := changelog.Read(filepath.Join(dir, "CHANGELOG.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(content, changelog.DefaultTitle), content)
	assert.True(t, changelog.HasVersion(content, "1.3.0"))
}

func TestChangelogCmd_DryRunPlain(t *testing.T) {
	isolateConfig(t)
	dir, cfgPath := writeProject(t, "1.2.3", "")

	out, err := executeCommand(t, sampleLog, "changelog", "--repo", dir, "--config", cfgPath,
		"--from-file", "-", "--dry-run", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "1.3.0")
	assert.Contains(t, out, "add login page")
	assert.NotContains(t, out, "\x1b[")
}

func TestChangelogCmd_DryRunAndOutputConflict(t *testing.T) {
	isolateConfig(t)

	_, err := executeCommand(t, sampleLog, "changelog", "--from-file", "-", "--dry-run", "--output", "x.md")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dry-run")
}
