package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ariel-frischer/semrel/internal/cli/shared"
	"github.com/ariel-frischer/semrel/internal/commit"
	clierrors "github.com/ariel-frischer/semrel/internal/errors"
	"github.com/ariel-frischer/semrel/internal/migrate"
)

var (
	analyzeFormatFlag   string
	analyzeLimitFlag    int
	analyzeRulesFlag    bool
	analyzeFromFlag     string
	analyzeFromFileFlag string
)

var (
	cBold  = color.New(color.Bold).SprintFunc()
	cCyan  = color.New(color.FgCyan).SprintFunc()
	cDim   = color.New(color.Faint).SprintFunc()
	cGreen = color.New(color.FgGreen).SprintFunc()
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze legacy commit history for migration",
	Long: `Analyze a repository's history to plan adoption of conventional commits.

Commits that do not follow the convention are grouped by their first word.
Each pattern gets a suggested type, and the report recommends a migration
strategy:
  bulk     rewrite the legacy messages at once (small histories)
  hybrid   keep history, enforce the format from now on
  gradual  set migration.line_in_the_sand and migrate over time

With --rules the suggested first-word mappings are printed together with a
git filter-branch command that would apply them. The command is printed for
review only and never run.`,
	Example: `  semrel analyze
  semrel analyze --limit 20
  semrel analyze --format yaml > migration.yaml
  semrel analyze --rules`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.GroupID = GroupMigration
	analyzeCmd.Flags().StringVarP(&analyzeFormatFlag, "format", "f", "text", "Output format (text, yaml)")
	analyzeCmd.Flags().IntVarP(&analyzeLimitFlag, "limit", "n", 10, "Number of patterns to show in text output (0 for all)")
	analyzeCmd.Flags().BoolVar(&analyzeRulesFlag, "rules", false, "Print mapping rules and a filter-branch command")
	analyzeCmd.Flags().StringVar(&analyzeFromFlag, "from", "", "Only analyze commits after this revision (default: all history)")
	analyzeCmd.Flags().StringVar(&analyzeFromFileFlag, "from-file", "", "Read commits from a file of hash|message|author|date lines")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if analyzeFormatFlag != "text" && analyzeFormatFlag != "yaml" {
		return clierrors.NewArgumentErrorWithUsage(
			fmt.Sprintf("invalid format: %s", analyzeFormatFlag),
			"semrel analyze --format <text|yaml>")
	}
	if analyzeLimitFlag < 0 {
		return clierrors.NewArgumentError("--limit must not be negative")
	}

	cfg, err := shared.LoadConfig(cmd)
	if err != nil {
		return err
	}
	hist, err := shared.OpenHistory(cmd, cfg, shared.HistoryOptions{
		From:       analyzeFromFlag,
		FromFile:   analyzeFromFileFlag,
		AllHistory: true,
	})
	if err != nil {
		return err
	}

	records, err := hist.Source.Log(cmd.Context(), hist.Range)
	if err != nil {
		return fmt.Errorf("reading commits %s: %w", hist.Range, err)
	}
	commits := commit.FromRecords(records)
	report := migrate.BuildReport(commits)

	out := cmd.OutOrStdout()
	if analyzeFormatFlag == "yaml" {
		return writeYAMLReport(out, report)
	}

	writeTextReport(out, report, analyzeLimitFlag)

	boundary := migrate.Boundary{Hash: cfg.Migration.LineInTheSand}
	if boundary.IsSet() {
		since, found := migrate.SinceBoundary(commits, boundary.Hash)
		if found {
			fmt.Fprintf(out, "\nLine in the sand: %s (%d commits since)\n", boundary.Hash, len(since))
		} else {
			fmt.Fprintf(out, "\nLine in the sand: %s (not found in history)\n", boundary.Hash)
		}
	}

	if analyzeRulesFlag {
		writeRules(out, report.Patterns, analyzeFromFlag)
	}
	return nil
}

func writeYAMLReport(w io.Writer, report migrate.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return enc.Close()
}

func writeTextReport(w io.Writer, r migrate.Report, limit int) {
	fmt.Fprintf(w, "%s %d commits (%d conventional, %d legacy)\n",
		cBold("History:"), r.Total, r.Conventional, r.Legacy)
	fmt.Fprintf(w, "%s %s\n", cBold("Strategy:"), cCyan(string(r.Strategy)))

	if len(r.Patterns) > 0 {
		shown := r.Patterns
		if limit > 0 && len(shown) > limit {
			shown = shown[:limit]
		}
		fmt.Fprintf(w, "\n%s\n", cBold("Legacy patterns:"))
		for _, p := range shown {
			example := ""
			if len(p.Examples) > 0 {
				example = cDim(fmt.Sprintf("e.g. %q", p.Examples[0]))
			}
			fmt.Fprintf(w, "  %5d  %-14s -> %-9s %s\n", p.Count, p.Pattern, p.SuggestedType, example)
		}
		if len(shown) < len(r.Patterns) {
			fmt.Fprintf(w, "  %s\n", cDim(fmt.Sprintf("(%d of %d patterns shown, use --limit 0 to see all)", len(shown), len(r.Patterns))))
		}
	}

	if len(r.Recommendations) > 0 {
		fmt.Fprintf(w, "\n%s\n", cBold("Recommendations:"))
		for _, rec := range r.Recommendations {
			fmt.Fprintf(w, "  %s %s\n", cGreen("•"), rec)
		}
	}
}

func writeRules(w io.Writer, patterns []migrate.Pattern, revRange string) {
	rules := migrate.MappingRules(patterns)
	if len(rules) == 0 {
		fmt.Fprintf(w, "\nNo legacy patterns; no mapping rules needed.\n")
		return
	}

	words := make([]string, 0, len(rules))
	for word := range rules {
		words = append(words, word)
	}
	sort.Strings(words)

	fmt.Fprintf(w, "\n%s\n", cBold("Mapping rules:"))
	for _, word := range words {
		fmt.Fprintf(w, "  %-14s -> %s\n", word, rules[word])
	}

	if revRange != "" {
		revRange += "..HEAD"
	}
	fmt.Fprintf(w, "\n%s\n", cBold("Rewrite command (review before running, rewrites history):"))
	fmt.Fprintf(w, "  %s\n", migrate.FilterBranchCommand(rules, revRange))
}
