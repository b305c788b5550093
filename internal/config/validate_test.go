package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateYAMLSyntax(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content  string
		create   bool
		wantErr  bool
		wantLine int
	}{
		"missing file": {},
		"empty file":   {create: true, content: "  \n"},
		"valid":        {create: true, content: "branch: main\n"},
		"tab indentation": {
			create:   true,
			content:  "changelog:\n\tfile: a\n",
			wantErr:  true,
			wantLine: 2,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "config.yml")
			if tt.create {
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			}

			err := ValidateYAMLSyntax(path)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantLine, vErr.Line)
		})
	}
}

func TestValidateConfigValues(t *testing.T) {
	t.Parallel()

	valid := func() *Configuration {
		return &Configuration{
			TagPrefix: "v",
			Branch:    "main",
			Remote:    "origin",
			Changelog: ChangelogConfig{File: "CHANGELOG.md", SectionOrder: "canonical", Placement: "append"},
			Release:   ReleaseConfig{CommitMessage: "chore(release): {{.Version}}"},
			Lint:      LintConfig{MaxHeaderLength: 72},
		}
	}

	tests := map[string]struct {
		mutate    func(c *Configuration)
		wantField string
	}{
		"valid":           {mutate: func(*Configuration) {}},
		"bad placement":   {mutate: func(c *Configuration) { c.Changelog.Placement = "top" }, wantField: "placement"},
		"too long header": {mutate: func(c *Configuration) { c.Lint.MaxHeaderLength = 500 }, wantField: "max_header_length"},
		"spaced prefix":   {mutate: func(c *Configuration) { c.TagPrefix = "release v" }, wantField: "tag_prefix"},
		"no commit msg":   {mutate: func(c *Configuration) { c.Release.CommitMessage = "" }, wantField: "commit_message"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tt.mutate(cfg)

			err := ValidateConfigValues(cfg, "config.yml")
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}
