package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/semrel/internal/cli/shared"
	"github.com/ariel-frischer/semrel/internal/commit"
	clierrors "github.com/ariel-frischer/semrel/internal/errors"
	"github.com/ariel-frischer/semrel/internal/message"
	"github.com/ariel-frischer/semrel/internal/release"
)

var (
	commitTypeFlag        string
	commitScopeFlag       string
	commitBreakingFlag    bool
	commitInteractiveFlag bool
	commitExecFlag        bool
)

var commitCmd = &cobra.Command{
	Use:   "commit [message]",
	Short: "Format a commit message in conventional form",
	Long: `Turn a free-text description into a conventional commit header.

The type is inferred from keywords in the message ("add" is a feature, "fix"
a bug fix, and so on) unless --type is given. A scope in parentheses, or a
well-known area name such as "api" or "cli", becomes the scope. The subject
is trimmed, capitalized and loses a trailing period.

The formatted message is printed; --exec commits staged changes with it.`,
	Example: `  semrel commit "add login page"          # feat: Add login page
  semrel commit "fix crash in (parser)"   # fix(parser): Fix crash in
  semrel commit --type perf "cache tags"  # perf: Cache tags
  semrel commit --interactive
  semrel commit --exec "update docs for api"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCommit,
}

func init() {
	commitCmd.GroupID = GroupCommits
	commitCmd.Flags().StringVarP(&commitTypeFlag, "type", "t", "", "Commit type (default: inferred from the message)")
	commitCmd.Flags().StringVarP(&commitScopeFlag, "scope", "s", "", "Commit scope (default: inferred from the message)")
	commitCmd.Flags().BoolVarP(&commitBreakingFlag, "breaking", "b", false, "Mark the change as breaking")
	commitCmd.Flags().BoolVarP(&commitInteractiveFlag, "interactive", "i", false, "Prompt for type, scope and summary")
	commitCmd.Flags().BoolVar(&commitExecFlag, "exec", false, "Run git commit with the formatted message")
	rootCmd.AddCommand(commitCmd)
}

func runCommit(cmd *cobra.Command, args []string) error {
	typ := commit.Type(commitTypeFlag)
	if typ != "" && !typ.Known() {
		return clierrors.InvalidCommitType(commitTypeFlag, typeNames())
	}

	var text string
	if len(args) == 1 {
		text = args[0]
	}

	var formatted string
	switch {
	case commitInteractiveFlag:
		answers, err := promptCommit(commitAnswers{
			Type:     string(typ),
			Scope:    commitScopeFlag,
			Subject:  text,
			Breaking: commitBreakingFlag,
		})
		if err != nil {
			return err
		}
		formatted = message.Compose(commit.Type(answers.Type), strings.TrimSpace(answers.Scope),
			answers.Breaking, message.CleanSubject(answers.Subject))
	case strings.TrimSpace(text) == "":
		return clierrors.MissingCommitMessage()
	default:
		formatted = message.Format(text, message.Options{
			Type:     typ,
			Scope:    commitScopeFlag,
			Breaking: commitBreakingFlag,
		})
		if isVerbose(cmd) {
			if s := message.Suggest(text); len(s.Hints) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "hints: %s\n", strings.Join(s.Hints, ", "))
			}
		}
	}

	if !commitExecFlag {
		fmt.Fprintln(cmd.OutOrStdout(), formatted)
		return nil
	}

	runner := &release.ExecRunner{Dir: shared.RepoDir(cmd)}
	output, err := runner.Run(cmd.Context(), "git", "commit", "-m", formatted)
	if err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "git commit failed",
			"Stage your changes first: git add <files>",
			"Or print the message only by dropping --exec")
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}

func typeNames() []string {
	types := commit.AllTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}
