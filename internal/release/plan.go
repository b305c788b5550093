// Package release runs the release pipeline: bump the manifest, write the
// changelog, commit, tag, push, publish and create a GitHub release.
//
// Every external command goes through a Runner so the pipeline can be
// exercised without git, npm or gh installed.
package release

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/google/shlex"

	"github.com/ariel-frischer/semrel/internal/changelog"
	"github.com/ariel-frischer/semrel/internal/manifest"
	"github.com/ariel-frischer/semrel/internal/semver"
)

// DefaultCommitMessage is the release commit template.
const DefaultCommitMessage = "chore(release): {{.Version}}"

// Plan is everything the pipeline needs to cut one release.
type Plan struct {
	Version  string
	Previous string
	Tag      string
	Type     semver.ReleaseType

	// Notes is the rendered changelog entry for this release.
	Notes            string
	ChangelogPath    string
	ChangelogOptions changelog.FileOptions

	// Manifest is optional; without one no version file is updated.
	Manifest      manifest.Manifest
	CommitMessage string

	Remote string
	Branch string

	// PublishCommand is argv for the publish step, e.g. ["npm", "publish"].
	PublishCommand []string

	SkipPush    bool
	SkipPublish bool
	SkipGitHub  bool
}

// TemplateData is available to the commit message template.
type TemplateData struct {
	Version  string
	Previous string
	Tag      string
	Type     string
}

// RenderCommitMessage executes tmpl with the plan's version data. An empty
// tmpl uses DefaultCommitMessage.
func RenderCommitMessage(tmpl string, data TemplateData) (string, error) {
	if tmpl == "" {
		tmpl = DefaultCommitMessage
	}
	t, err := template.New("commit").Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parsing commit message template: %w", err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering commit message template: %w", err)
	}
	return buf.String(), nil
}

// SplitCommand splits a shell-style command line into argv.
func SplitCommand(line string) ([]string, error) {
	parts, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("parsing command %q: %w", line, err)
	}
	return parts, nil
}
