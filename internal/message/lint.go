package message

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ariel-frischer/semrel/internal/commit"
)

// Severity of a lint problem.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Problem is a single lint finding.
type Problem struct {
	Severity Severity
	Message  string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Severity, p.Message)
}

// LintRules configures Lint.
type LintRules struct {
	// MaxHeaderLength warns on longer headers. Zero uses MaxHeaderLength.
	MaxHeaderLength int
	// AllowUnknownTypes accepts grammatical headers whose type is outside
	// the known set.
	AllowUnknownTypes bool
}

// generatedPrefixes mark headers written by git itself.
var generatedPrefixes = []string{"Merge ", "Revert \"", "fixup! ", "squash! ", "amend! "}

// Lint checks a commit message the way a commit-msg hook would. Comment
// lines starting with '#' are ignored. Messages generated by git (merges,
// reverts, fixups) pass without checks.
func Lint(message string, rules LintRules) []Problem {
	header := strings.TrimSpace(commit.FirstLine(StripComments(message)))
	if header == "" {
		return []Problem{{Severity: SeverityError, Message: "commit message is empty"}}
	}
	for _, prefix := range generatedPrefixes {
		if strings.HasPrefix(header, prefix) {
			return nil
		}
	}

	var problems []Problem
	parsed := commit.Parse(header)

	switch {
	case !parsed.Conventional:
		problems = append(problems, Problem{
			Severity: SeverityError,
			Message:  fmt.Sprintf("header is not in conventional format, try %q", Suggest(header).Suggested),
		})
	case !parsed.Type.Known() && !rules.AllowUnknownTypes:
		problems = append(problems, Problem{
			Severity: SeverityError,
			Message:  fmt.Sprintf("unknown type %q (expected one of %s)", parsed.Type, typeList()),
		})
	}
	if parsed.Conventional && parsed.Subject == "" {
		problems = append(problems, Problem{Severity: SeverityError, Message: "subject is empty"})
	}

	limit := rules.MaxHeaderLength
	if limit <= 0 {
		limit = MaxHeaderLength
	}
	if n := utf8.RuneCountInString(header); n > limit {
		problems = append(problems, Problem{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("header is %d characters, limit is %d", n, limit),
		})
	}
	if strings.HasSuffix(header, ".") {
		problems = append(problems, Problem{Severity: SeverityWarning, Message: "header ends with a period"})
	}
	return problems
}

// HasErrors reports whether any problem is an error.
func HasErrors(problems []Problem) bool {
	for _, p := range problems {
		if p.Severity == SeverityError {
			return true
		}
	}
	return false
}

// StripComments drops lines starting with '#', as git does for a commit
// message file.
func StripComments(message string) string {
	lines := strings.Split(message, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimLeft(strings.Join(kept, "\n"), "\n")
}

func typeList() string {
	types := commit.AllTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
