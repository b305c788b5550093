package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/ariel-frischer/semrel/internal/commit"
)

// commitAnswers are the parts of a commit message collected interactively.
type commitAnswers struct {
	Type     string
	Scope    string
	Subject  string
	Breaking bool
}

// promptCommit asks for the message parts. Tests replace it.
var promptCommit = runCommitForm

// runCommitForm shows the interactive commit form, prefilled with defaults.
func runCommitForm(defaults commitAnswers) (commitAnswers, error) {
	answers := defaults
	if answers.Type == "" {
		answers.Type = string(commit.TypeFeat)
	}

	options := make([]huh.Option[string], 0, len(commit.AllTypes()))
	for _, t := range commit.AllTypes() {
		meta := t.Meta()
		options = append(options, huh.NewOption(fmt.Sprintf("%-9s %s %s", t, meta.Emoji, meta.Title), string(t)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Type").
				Description("What kind of change is this?").
				Options(options...).
				Value(&answers.Type),
			huh.NewInput().
				Title("Scope").
				Description("Optional area of the codebase, e.g. api or cli").
				Value(&answers.Scope),
			huh.NewInput().
				Title("Summary").
				Description("Short imperative description of the change").
				Value(&answers.Subject).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("summary cannot be empty")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Breaking change?").
				Value(&answers.Breaking),
		),
	)
	if err := form.Run(); err != nil {
		return commitAnswers{}, fmt.Errorf("commit prompt: %w", err)
	}
	return answers, nil
}
