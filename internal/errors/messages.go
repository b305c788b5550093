package errors

import (
	"fmt"
	"strings"
)

// Common error messages for the semrel CLI.

// NotGitRepository creates an error when not in a git repository.
func NotGitRepository(path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("not a git repository: %s", path),
		"Initialize with: git init",
		"Or pass --repo <path> to point at an existing repository",
		"Or read history from a file with --from-file <log.txt>",
	)
}

// InvalidReleaseType creates an error for an unknown --release-as value.
func InvalidReleaseType(value string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("invalid release type: %s", value),
		"semrel next --release-as <major|minor|patch>",
		"Valid release types: major, minor, patch",
	)
}

// InvalidCommitType creates an error for an unknown --type value.
func InvalidCommitType(value string, known []string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("invalid commit type: %s", value),
		"semrel commit --type <type> \"<message>\"",
		"Valid types: "+strings.Join(known, ", "),
	)
}

// MissingCommitMessage creates an error when commit is run without a message.
func MissingCommitMessage() *CLIError {
	return NewArgumentErrorWithUsage(
		"commit message is required",
		"semrel commit \"<message>\"",
		"Provide the message in quotes",
		"Or run 'semrel commit --interactive' to be prompted",
	)
}

// ConfigParseError creates an error for an invalid config file.
func ConfigParseError(err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		"failed to load configuration",
		"Check the YAML syntax of .semrel/config.yml",
		"Show the effective configuration with: semrel config show",
		"Write a fresh template with: semrel config init --force",
	)
}

// ToolNotFound creates an error when required external commands are missing.
func ToolNotFound(tools ...string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("required command not found: %s", strings.Join(tools, ", ")),
		"Install the missing commands and make sure they are in your PATH",
		"Or turn off the step that needs them: release.github_release, release.publish",
	)
}

// DirtyWorktree creates an error when the release would include uncommitted changes.
func DirtyWorktree() *CLIError {
	return NewPrerequisiteError(
		"working tree has uncommitted changes",
		"Commit or stash your changes before releasing",
		"Preview the release without touching the tree with: semrel release --dry-run",
	)
}

// WrongBranch creates an error when releasing from a non-release branch.
func WrongBranch(current, want string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("releases are cut from %s, current branch is %s", want, current),
		"Check out the release branch: git checkout "+want,
		"Or change the release branch: semrel config set branch "+current,
		"Or pass --yes to release anyway",
	)
}

// VersionAlreadyReleased creates an error when the changelog already holds version.
func VersionAlreadyReleased(version, path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("version %s is already in %s", version, path),
		"Check that a tag for the previous release exists: git tag --list",
		"Or force a different version with --release-as",
	)
}

// ReleaseStepFailed creates an error when a pipeline step fails.
func ReleaseStepFailed(step string, err error) *CLIError {
	return WrapWithMessage(err, Runtime,
		fmt.Sprintf("release step %q failed", step),
		"Steps before the failure were already applied; inspect with: git log -1 && git tag --list",
		"Re-run the remaining steps manually or skip them with --skip-push, --skip-publish, --skip-github",
		"Run 'semrel doctor' to verify git, gh and the publish command",
	)
}

// InvalidFlagCombination creates an error for incompatible flag combinations.
func InvalidFlagCombination(flags string, reason string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("invalid flag combination: %s", flags),
		reason,
		"Use 'semrel <command> --help' to see valid options",
	)
}

// FileNotWritable creates an error when a file cannot be written.
func FileNotWritable(path string, err error) *CLIError {
	return WrapWithMessage(err, Runtime,
		fmt.Sprintf("cannot write to file: %s", path),
		"Check file permissions: ls -la "+path,
		"Ensure parent directory exists and is writable",
	)
}
