// Package cli tests root command, global flags and exit code mapping for semrel.
// Related: internal/cli/root.go, internal/cli/exit_codes.go
// Tags: cli, root, commands, global-flags, exit-codes

package cli

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/semrel/internal/cli/shared"
	clierrors "github.com/ariel-frischer/semrel/internal/errors"
)

func TestRootCmd_Structure(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "semrel", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.NotEmpty(t, rootCmd.Example)
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		flagName  string
		shorthand string
	}{
		"config flag":  {flagName: "config", shorthand: "c"},
		"debug flag":   {flagName: "debug", shorthand: "d"},
		"verbose flag": {flagName: "verbose", shorthand: "v"},
		"repo flag":    {flagName: "repo"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			flag := rootCmd.PersistentFlags().Lookup(tt.flagName)
			require.NotNil(t, flag, "Flag %s should exist", tt.flagName)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
		})
	}
}

func TestRootCmd_SubcommandGroups(t *testing.T) {
	t.Parallel()

	groupIDs := make(map[string]bool)
	for _, g := range rootCmd.Groups() {
		groupIDs[g.ID] = true
	}
	for _, id := range []string{GroupGettingStarted, GroupRelease, GroupCommits, GroupMigration, GroupConfiguration} {
		assert.True(t, groupIDs[id], "Should have %s group", id)
	}

	for _, cmd := range rootCmd.Commands() {
		if cmd.Hidden || cmd.Name() == "help" || cmd.Name() == "completion" {
			continue
		}
		assert.True(t, groupIDs[cmd.GroupID], "command %s should belong to a known group", cmd.Name())
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	t.Parallel()

	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"version", "doctor", "next", "changelog", "release", "commit", "lint", "analyze", "config"} {
		assert.True(t, names[want], "Should have %q command", want)
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want int
	}{
		"nil":                  {err: nil, want: shared.ExitSuccess},
		"plain error":          {err: stderrors.New("boom"), want: shared.ExitValidationFailed},
		"argument error":       {err: clierrors.InvalidReleaseType("huge"), want: shared.ExitInvalidArguments},
		"prerequisite error":   {err: clierrors.DirtyWorktree(), want: shared.ExitMissingDependency},
		"configuration error":  {err: clierrors.NewConfigError("bad"), want: shared.ExitValidationFailed},
		"explicit exit code":   {err: shared.NewExitError(shared.ExitReleaseFailed), want: shared.ExitReleaseFailed},
		"wrapped exit code":    {err: fmt.Errorf("ctx: %w", shared.NewExitError(4)), want: 4},
		"exit code over error": {err: shared.WithExitCode(6, clierrors.DirtyWorktree()), want: 6},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestReportError(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want string
	}{
		"categorized error": {
			err:  clierrors.NewArgumentError("bad flag"),
			want: "Error [Argument Error]: bad flag\n",
		},
		"uncategorized error": {
			err:  stderrors.New("boom"),
			want: "Error [Runtime Error]: boom\n",
		},
		"exit code with cause": {
			err:  shared.WithExitCode(shared.ExitReleaseFailed, stderrors.New("push rejected")),
			want: "Error [Runtime Error]: push rejected\n",
		},
		"silent exit": {
			err:  shared.NewExitError(shared.ExitValidationFailed),
			want: "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			reportError(&buf, tt.err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestUnknownFlagIsArgumentError(t *testing.T) {
	isolateConfig(t)

	_, err := executeCommand(t, "", "next", "--no-such-flag")
	require.Error(t, err)
	assert.Equal(t, shared.ExitInvalidArguments, ExitCode(err))
}
