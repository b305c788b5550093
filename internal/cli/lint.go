package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/semrel/internal/cli/shared"
	"github.com/ariel-frischer/semrel/internal/commit"
	"github.com/ariel-frischer/semrel/internal/config"
	clierrors "github.com/ariel-frischer/semrel/internal/errors"
	"github.com/ariel-frischer/semrel/internal/message"
	"github.com/ariel-frischer/semrel/internal/migrate"
)

var (
	lintRangeFlag    bool
	lintFromFlag     string
	lintFromFileFlag string
)

var lintCmd = &cobra.Command{
	Use:   "lint [file]",
	Short: "Check commit messages against the convention",
	Long: `Check a commit message, or every commit in a range, against the
conventional commit format.

With a file argument (or '-' for stdin) the message is checked the way a
commit-msg hook would: comment lines are ignored, and merge, revert and
fixup messages pass. With --range every commit since the latest version tag
is checked, skipping history at or before migration.line_in_the_sand.

Exits 1 when any message has an error. Warnings do not fail.`,
	Example: `  # As a commit-msg hook (.git/hooks/commit-msg)
  semrel lint "$1"

  # Check everything since the last release
  semrel lint --range

  # Check a range explicitly
  semrel lint --range --from v1.0.0`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLint,
}

func init() {
	lintCmd.GroupID = GroupCommits
	lintCmd.Flags().BoolVar(&lintRangeFlag, "range", false, "Lint every commit since the latest version tag")
	lintCmd.Flags().StringVar(&lintFromFlag, "from", "", "Start of the range for --range (default: latest version tag)")
	lintCmd.Flags().StringVar(&lintFromFileFlag, "from-file", "", "Read the range from a file of hash|message|author|date lines")
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	if lintRangeFlag && len(args) > 0 {
		return clierrors.InvalidFlagCombination("--range with a file argument",
			"Pass either a message file or --range, not both")
	}

	cfg, err := shared.LoadConfig(cmd)
	if err != nil {
		return err
	}
	rules := message.LintRules{
		MaxHeaderLength:   cfg.Lint.MaxHeaderLength,
		AllowUnknownTypes: cfg.Lint.AllowUnknownTypes,
	}

	if lintRangeFlag {
		return lintRange(cmd, cfg, rules)
	}

	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	msg, err := readMessage(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	problems := message.Lint(msg, rules)
	out := cmd.OutOrStdout()
	for _, p := range problems {
		fmt.Fprintln(out, p)
	}
	if message.HasErrors(problems) {
		fmt.Fprintln(out, "\nSee 'semrel commit --help' to format a conventional message.")
		return shared.NewExitError(shared.ExitValidationFailed)
	}
	return nil
}

func lintRange(cmd *cobra.Command, cfg *config.Configuration, rules message.LintRules) error {
	hist, err := shared.OpenHistory(cmd, cfg, shared.HistoryOptions{From: lintFromFlag, FromFile: lintFromFileFlag})
	if err != nil {
		return err
	}
	records, err := hist.Source.Log(cmd.Context(), hist.Range)
	if err != nil {
		return fmt.Errorf("reading commits %s: %w", hist.Range, err)
	}
	boundary := migrate.Boundary{Hash: cfg.Migration.LineInTheSand}
	commits := boundary.Apply(commit.FromRecords(records))

	out := cmd.OutOrStdout()
	failed := 0
	for _, c := range commits {
		problems := message.Lint(c.Raw, rules)
		if len(problems) == 0 {
			continue
		}
		if message.HasErrors(problems) {
			failed++
		}
		fmt.Fprintf(out, "%s %s\n", c.Hash, c.Raw)
		for _, p := range problems {
			fmt.Fprintf(out, "  %s\n", p)
		}
	}

	fmt.Fprintf(out, "%d of %d commits in %s failed lint\n", failed, len(commits), hist.Range)
	if failed > 0 {
		return shared.NewExitError(shared.ExitValidationFailed)
	}
	return nil
}

// readMessage reads a commit message from path, or from stdin for "-".
func readMessage(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading message from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", clierrors.WrapWithMessage(err, clierrors.Argument, "cannot read commit message file",
			"Pass the message file path, e.g. semrel lint .git/COMMIT_EDITMSG")
	}
	return string(data), nil
}
