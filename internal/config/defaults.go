package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options
func GetDefaultConfigTemplate() string {
	return `# semrel configuration
# See 'semrel config -h' for commands, 'semrel config keys' for all options

tag_prefix: v                         # Prefix for version tags (v1.2.3)
branch: main                          # Release branch
remote: origin                        # Remote to push the release to
manifest: package.json                # package.json or a plain VERSION file

# Changelog settings
changelog:
  file: CHANGELOG.md                  # Changelog file to write releases to
  title: "# Changelog"                # Written at the top of a new changelog
  section_order: first-seen           # first-seen | canonical
  placement: append                   # append | prepend (newest first under the title)

# Release pipeline
release:
  publish: true                       # Run publish_cmd after tagging
  publish_cmd: npm publish            # Publish command (shell-style quoting allowed)
  github_release: true                # Create a GitHub release with gh
  commit_message: "chore(release): {{.Version}}"

# Commit message lint ('semrel lint')
lint:
  max_header_length: 72               # Warn above this header length (20-200)
  allow_unknown_types: false          # Accept types outside the conventional set

# Legacy history
migration:
  line_in_the_sand: ""                # Commits at or before this hash are not linted or analyzed
`
}

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		// tag_prefix: Prepended to versions to build tag names.
		"tag_prefix": "v",
		// branch: The release branch. Releasing elsewhere requires confirmation.
		"branch": "main",
		// remote: Remote used by the push step.
		"remote": "origin",
		// manifest: File holding the current version. A missing manifest falls
		// back to the latest tag, then 0.0.0.
		"manifest": "package.json",
		"changelog": map[string]interface{}{
			"file":          "CHANGELOG.md",
			"title":         "# Changelog",
			"section_order": "first-seen",
			"placement":     "append",
		},
		// release: Pipeline steps after tagging. publish_cmd is split with
		// shell quoting rules, it is never run through a shell.
		"release": map[string]interface{}{
			"publish":        true,
			"publish_cmd":    "npm publish",
			"github_release": true,
			"commit_message": "chore(release): {{.Version}}",
		},
		"lint": map[string]interface{}{
			"max_header_length":   72,
			"allow_unknown_types": false,
		},
		// migration.line_in_the_sand: Empty means all history is enforced.
		"migration": map[string]interface{}{
			"line_in_the_sand": "",
		},
		"skip_confirmations": false,
	}
}
