package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/semrel/internal/changelog"
	"github.com/ariel-frischer/semrel/internal/cli/shared"
	"github.com/ariel-frischer/semrel/internal/config"
	clierrors "github.com/ariel-frischer/semrel/internal/errors"
)

var (
	changelogFlags      pendingFlags
	changelogDryRunFlag bool
	changelogPlainFlag  bool
	changelogOutputFlag string
	changelogVersion    string
)

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Render the changelog entry for the pending release",
	Long: `Render the Markdown changelog entry for the commits since the latest tag.

By default the entry is written to stdout. Use --output to add it to a
changelog file (placement follows changelog.placement), or --dry-run for a
color preview in the terminal.

Commits are grouped into sections by type. Breaking changes are listed first
under a dedicated heading, and each section lists its commits newest first.`,
	Example: `  semrel changelog                      # Markdown to stdout
  semrel changelog --dry-run            # Terminal preview
  semrel changelog --dry-run --plain    # Preview without colors
  semrel changelog --output CHANGELOG.md
  semrel changelog --version 2.0.0-rc.1`,
	Args: cobra.NoArgs,
	RunE: runChangelog,
}

func init() {
	changelogCmd.GroupID = GroupRelease
	changelogFlags.register(changelogCmd)
	changelogCmd.Flags().BoolVar(&changelogDryRunFlag, "dry-run", false, "Preview the entry in the terminal")
	changelogCmd.Flags().BoolVar(&changelogPlainFlag, "plain", false, "Plain text preview (no colors/icons)")
	changelogCmd.Flags().StringVarP(&changelogOutputFlag, "output", "o", "", "Write the entry to this changelog file")
	changelogCmd.Flags().StringVar(&changelogVersion, "version", "", "Version label for the entry (default: next version)")
	changelogCmd.MarkFlagsMutuallyExclusive("dry-run", "output")
	rootCmd.AddCommand(changelogCmd)
}

func runChangelog(cmd *cobra.Command, _ []string) error {
	cfg, err := shared.LoadConfig(cmd)
	if err != nil {
		return err
	}

	_, pending, err := resolvePending(cmd, cfg, &changelogFlags)
	if err != nil {
		return err
	}

	info := pending.Info
	if changelogVersion != "" {
		info.Version = changelogVersion
	}

	if changelogDryRunFlag {
		opts := changelog.FormatOptions{Plain: changelogPlainFlag}
		if err := changelog.FormatTerminal(info, cmd.OutOrStdout(), opts); err != nil {
			return fmt.Errorf("formatting preview: %w", err)
		}
		return nil
	}

	rendered := changelog.Render(info)
	if changelogOutputFlag == "" {
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	}

	path := shared.RepoPath(cmd, changelogOutputFlag)
	if err := changelog.WriteRelease(path, rendered, changelogFileOptions(cfg)); err != nil {
		return clierrors.FileNotWritable(path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d commits) to %s\n", info.Version, info.Count(), path)
	return nil
}

// changelogFileOptions maps the changelog config onto file options.
func changelogFileOptions(cfg *config.Configuration) changelog.FileOptions {
	return changelog.FileOptions{
		Title:     cfg.Changelog.Title,
		Placement: changelog.Placement(cfg.Changelog.Placement),
	}
}
