package util

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/semrel/internal/cli/shared"
	clierrors "github.com/ariel-frischer/semrel/internal/errors"
	"github.com/ariel-frischer/semrel/internal/health"
	"github.com/ariel-frischer/semrel/internal/release"
)

// newChecker builds the health checker. Tests replace it.
var newChecker = health.NewChecker

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the tools a release needs are installed",
	Long: `Check that the external tools used by 'semrel release' are installed.

git is always required. gh is required when release.github_release is
enabled, and the first word of release.publish_cmd is required when
release.publish is enabled.`,
	Example: `  semrel doctor`,
	Args:    cobra.NoArgs,
	RunE:    runDoctor,
}

func init() {
	doctorCmd.GroupID = shared.GroupGettingStarted
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	cfg, err := shared.LoadConfig(cmd)
	if err != nil {
		return err
	}

	req := health.Requirements{GitHubRelease: cfg.Release.GitHubRelease}
	if cfg.Release.Publish && cfg.Release.PublishCmd != "" {
		argv, err := release.SplitCommand(cfg.Release.PublishCmd)
		if err != nil {
			return err
		}
		if len(argv) > 0 {
			req.PublishBinary = argv[0]
		}
	}

	report := newChecker().RunHealthChecks(cmd.Context(), health.DefaultProbes(req))
	fmt.Fprint(cmd.OutOrStdout(), health.FormatReport(report))

	if !report.Passed {
		return shared.WithExitCode(shared.ExitMissingDependency, clierrors.ToolNotFound(missing(report)...))
	}
	return nil
}

// missing lists the required checks that failed.
func missing(report *health.HealthReport) []string {
	var names []string
	for _, check := range report.Checks {
		if check.Required && !check.Passed {
			names = append(names, check.Name)
		}
	}
	return names
}
