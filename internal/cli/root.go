// Package cli implements the semrel command line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/semrel/internal/cli/config"
	"github.com/ariel-frischer/semrel/internal/cli/shared"
	"github.com/ariel-frischer/semrel/internal/cli/util"
	clierrors "github.com/ariel-frischer/semrel/internal/errors"
	"github.com/ariel-frischer/semrel/internal/git"
	"github.com/ariel-frischer/semrel/internal/manifest"
	"github.com/ariel-frischer/semrel/internal/release"
)

// Command group IDs, re-exported for commands in this package.
const (
	GroupGettingStarted = shared.GroupGettingStarted
	GroupRelease        = shared.GroupRelease
	GroupCommits        = shared.GroupCommits
	GroupMigration      = shared.GroupMigration
	GroupConfiguration  = shared.GroupConfiguration
)

var rootCmd = &cobra.Command{
	Use:   "semrel",
	Short: "Conventional commit release automation",
	Long: `semrel turns conventional commit history into releases.

It classifies commits since the last version tag, picks the next semantic
version, renders a Markdown changelog entry, and runs the release steps:
bump the manifest, append the changelog, commit, tag, push, publish and
create a GitHub release.

Repositories with pre-convention history can be analyzed with 'semrel analyze'
and released from a line in the sand.`,
	Example: `  # Show the next version
  semrel next

  # Preview the release notes
  semrel changelog --dry-run

  # Cut a release without publishing
  semrel release --skip-publish

  # Format a commit message
  semrel commit "add login page"`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupDebugLogging,
}

func init() {
	rootCmd.PersistentFlags().StringP(shared.ConfigFlag, "c", "", "Path to config file (default: .semrel/config.yml)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show additional detail")
	rootCmd.PersistentFlags().String(shared.RepoFlag, "", "Repository directory (default: current directory)")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupGettingStarted, Title: "Getting Started:"},
		&cobra.Group{ID: GroupRelease, Title: "Release:"},
		&cobra.Group{ID: GroupCommits, Title: "Commits:"},
		&cobra.Group{ID: GroupMigration, Title: "Migration:"},
		&cobra.Group{ID: GroupConfiguration, Title: "Configuration:"},
	)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return shared.WithExitCode(shared.ExitInvalidArguments,
			clierrors.NewArgumentError(err.Error(), fmt.Sprintf("Run '%s --help' for usage", cmd.CommandPath())))
	})

	config.Register(rootCmd)
	util.Register(rootCmd)
}

// setupDebugLogging installs stderr debug loggers when --debug is set.
func setupDebugLogging(cmd *cobra.Command, _ []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	if !debug {
		return nil
	}
	w := cmd.ErrOrStderr()
	logger := func(format string, args ...any) {
		fmt.Fprintf(w, "[DEBUG] "+format+"\n", args...)
	}
	git.SetDebugLogger(logger)
	manifest.SetDebugLogger(logger)
	release.SetDebugLogger(logger)
	return nil
}

// isVerbose reports whether --verbose was passed.
func isVerbose(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("verbose")
	return v
}

// Execute runs the root command with a context cancelled on SIGINT/SIGTERM.
// Errors are printed to stderr; the caller maps them to an exit code with
// ExitCode.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
	}
	return err
}
