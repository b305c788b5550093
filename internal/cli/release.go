package cli

import (
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/semrel/internal/changelog"
	"github.com/ariel-frischer/semrel/internal/cli/shared"
	"github.com/ariel-frischer/semrel/internal/config"
	clierrors "github.com/ariel-frischer/semrel/internal/errors"
	"github.com/ariel-frischer/semrel/internal/manifest"
	"github.com/ariel-frischer/semrel/internal/progress"
	"github.com/ariel-frischer/semrel/internal/release"
)

var (
	releaseFlags       pendingFlags
	releaseDryRun      bool
	releaseSkipPush    bool
	releaseSkipPublish bool
	releaseSkipGitHub  bool
	releaseYes         bool
)

// newRunner creates the runner for external release commands. Tests replace it.
var newRunner = func(dir string) release.Runner {
	return &release.ExecRunner{Dir: dir}
}

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Cut a release from the commits since the last tag",
	Long: `Cut a release from the commits since the latest version tag.

Steps, in order:
  1. update manifest    set the new version in the configured manifest
  2. write changelog    add the rendered entry to the changelog file
  3. commit release     commit the manifest and changelog
  4. tag release        create an annotated tag
  5. push               push the branch and tag to the remote
  6. publish            run release.publish_cmd (when release.publish is set)
  7. github release     gh release create (when release.github_release is set)

The release stops at the first failing step. Steps that already ran are not
rolled back.`,
	Example: `  semrel release --dry-run
  semrel release
  semrel release --skip-push --skip-publish
  semrel release --release-as major --yes`,
	Args: cobra.NoArgs,
	RunE: runRelease,
}

func init() {
	releaseCmd.GroupID = GroupRelease
	releaseCmd.Flags().StringVar(&releaseFlags.releaseAs, "release-as", "", "Force the release type (major, minor, patch)")
	releaseCmd.Flags().StringVar(&releaseFlags.from, "from", "", "Start of the commit range (default: latest version tag)")
	releaseCmd.Flags().BoolVar(&releaseDryRun, "dry-run", false, "Print the steps without running them")
	releaseCmd.Flags().BoolVar(&releaseSkipPush, "skip-push", false, "Do not push the release commit and tag")
	releaseCmd.Flags().BoolVar(&releaseSkipPublish, "skip-publish", false, "Do not run the publish command")
	releaseCmd.Flags().BoolVar(&releaseSkipGitHub, "skip-github", false, "Do not create a GitHub release")
	releaseCmd.Flags().BoolVarP(&releaseYes, "yes", "y", false, "Release from a branch other than the configured one")
	rootCmd.AddCommand(releaseCmd)
}

func runRelease(cmd *cobra.Command, _ []string) error {
	cfg, err := shared.LoadConfig(cmd)
	if err != nil {
		return err
	}

	hist, pending, err := resolvePending(cmd, cfg, &releaseFlags)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(pending.Commits) == 0 && releaseFlags.releaseAs == "" {
		fmt.Fprintf(out, "No commits in %s; nothing to release.\n", hist.Range)
		return nil
	}

	branch, err := checkReleasePrerequisites(cmd, cfg, hist)
	if err != nil {
		return err
	}

	plan, err := buildPlan(cmd, cfg, hist, pending, branch)
	if err != nil {
		return err
	}

	if err := checkNotReleased(plan); err != nil {
		return err
	}

	fmt.Fprintf(out, "Releasing %s -> %s (%s, %d commits)\n", pending.Current, pending.Next, pending.Type, len(pending.Commits))

	display := progress.NewDisplay(out, progress.DetectTerminalCapabilities())
	pipeline := release.New(newRunner(shared.RepoDir(cmd)),
		release.WithReporter(display),
		release.WithDryRun(releaseDryRun),
		release.WithOutput(out),
	)

	res, err := pipeline.Run(cmd.Context(), plan)
	if err != nil {
		var stepErr *release.StepError
		if stderrors.As(err, &stepErr) {
			return shared.WithExitCode(shared.ExitReleaseFailed, clierrors.ReleaseStepFailed(stepErr.Step, stepErr.Err))
		}
		return err
	}

	if releaseDryRun {
		fmt.Fprintf(out, "\nDry run: %d steps would run, %d skipped\n", len(res.Completed), len(res.Skipped))
		return nil
	}
	fmt.Fprintf(out, "\nReleased %s\n", plan.Tag)
	return nil
}

// checkReleasePrerequisites verifies the branch and worktree and returns the
// branch to push.
func checkReleasePrerequisites(cmd *cobra.Command, cfg *config.Configuration, hist *shared.History) (string, error) {
	branch, err := hist.Repo.CurrentBranch()
	if err != nil {
		return "", fmt.Errorf("reading current branch: %w", err)
	}

	if branch != cfg.Branch && !releaseYes && !cfg.SkipConfirmations {
		return "", clierrors.WrongBranch(branch, cfg.Branch)
	}

	clean, err := hist.Repo.IsClean()
	if err != nil {
		return "", fmt.Errorf("checking worktree: %w", err)
	}
	if !clean {
		if !releaseDryRun {
			return "", clierrors.DirtyWorktree()
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning: working tree has uncommitted changes")
	}
	return branch, nil
}

// buildPlan turns the pending release and configuration into a pipeline plan.
func buildPlan(cmd *cobra.Command, cfg *config.Configuration, hist *shared.History, pending release.Pending, branch string) (release.Plan, error) {
	tag := cfg.Tag(pending.Next)

	message, err := release.RenderCommitMessage(cfg.Release.CommitMessage, release.TemplateData{
		Version:  pending.Next,
		Previous: pending.Current,
		Tag:      tag,
		Type:     pending.Type.String(),
	})
	if err != nil {
		return release.Plan{}, clierrors.Wrap(err, clierrors.Configuration,
			"Check release.commit_message; available fields: .Version .Previous .Tag .Type")
	}

	plan := release.Plan{
		Version:          pending.Next,
		Previous:         pending.Current,
		Tag:              tag,
		Type:             pending.Type,
		Notes:            pending.Notes,
		ChangelogPath:    shared.RepoPath(cmd, cfg.Changelog.File),
		ChangelogOptions: changelogFileOptions(cfg),
		CommitMessage:    message,
		Remote:           cfg.Remote,
		Branch:           branch,
		SkipPush:         releaseSkipPush,
		SkipPublish:      releaseSkipPublish || !cfg.Release.Publish,
		SkipGitHub:       releaseSkipGitHub || !cfg.Release.GitHubRelease,
	}

	// Only a manifest that already holds the version is bumped.
	if hist.CurrentSource == manifest.SourceManifest {
		plan.Manifest = hist.Manifest
	}

	if !plan.SkipPublish && cfg.Release.PublishCmd != "" {
		argv, err := release.SplitCommand(cfg.Release.PublishCmd)
		if err != nil {
			return release.Plan{}, clierrors.Wrap(err, clierrors.Configuration)
		}
		plan.PublishCommand = argv
	}
	return plan, nil
}

// checkNotReleased fails when the changelog already has the version.
func checkNotReleased(plan release.Plan) error {
	content, err := changelog.Read(plan.ChangelogPath)
	if err != nil {
		return fmt.Errorf("reading changelog: %w", err)
	}
	if changelog.HasVersion(content, plan.Version) {
		return clierrors.VersionAlreadyReleased(plan.Version, plan.ChangelogPath)
	}
	return nil
}
