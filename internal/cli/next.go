package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/semrel/internal/cli/shared"
)

var nextFlags pendingFlags

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Print the next version",
	Long: `Print the version the next release would get.

Commits since the latest version tag are classified: any breaking change
makes a major release, any feature a minor release, anything else a patch.
The current version comes from the configured manifest, falling back to the
latest tag and then 0.0.0.`,
	Example: `  semrel next
  semrel next --release-as major
  semrel next --from v1.2.0
  git log --format='%H|%s|%an|%ad' --date=short | semrel next --from-file -`,
	Args: cobra.NoArgs,
	RunE: runNext,
}

func init() {
	nextCmd.GroupID = GroupRelease
	nextFlags.register(nextCmd)
	rootCmd.AddCommand(nextCmd)
}

func runNext(cmd *cobra.Command, _ []string) error {
	cfg, err := shared.LoadConfig(cmd)
	if err != nil {
		return err
	}

	hist, pending, err := resolvePending(cmd, cfg, &nextFlags)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if isVerbose(cmd) {
		fmt.Fprintf(out, "current: %s (from %s)\n", pending.Current, hist.CurrentSource)
		fmt.Fprintf(out, "range:   %s\n", hist.Range)
		fmt.Fprintf(out, "commits: %d\n", len(pending.Commits))
		fmt.Fprintf(out, "type:    %s\n", pending.Type)
	}
	fmt.Fprintln(out, pending.Next)
	return nil
}
