package migrate

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ariel-frischer/semrel/internal/commit"
)

// MappingRules derives first-word → type rules from analyzed patterns.
// Patterns with an empty leading word are skipped.
func MappingRules(patterns []Pattern) map[string]commit.Type {
	rules := make(map[string]commit.Type, len(patterns))
	for _, p := range patterns {
		if p.Pattern == "" {
			continue
		}
		rules[p.Pattern] = p.SuggestedType
	}
	return rules
}

// RewriteMessage reclassifies a legacy message using rules. Conventional
// messages and messages whose first word has no rule are returned unchanged.
func RewriteMessage(msg string, rules map[string]commit.Type) string {
	if commit.IsConventional(msg) {
		return msg
	}
	header := strings.TrimSpace(commit.FirstLine(msg))
	t, ok := rules[commit.FirstWord(header)]
	if !ok {
		return msg
	}
	rewritten := fmt.Sprintf("%s: %s", t, header)
	if rest := msg[len(commit.FirstLine(msg)):]; rest != "" {
		rewritten += rest
	}
	return rewritten
}

// safeWordPattern limits the words FilterBranchCommand places in shell text.
var safeWordPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// FilterBranchCommand returns a `git filter-branch` invocation that applies
// rules to the first line of every legacy message in revRange (all refs when
// empty). Conventional messages pass through untouched. The command is only
// printed for review; it is never executed. Words that are not plain
// identifiers are left out.
func FilterBranchCommand(rules map[string]commit.Type, revRange string) string {
	words := make([]string, 0, len(rules))
	for w := range rules {
		if safeWordPattern.MatchString(w) {
			words = append(words, w)
		}
	}
	sort.Strings(words)

	var sed strings.Builder
	sed.WriteString("sed")
	for _, w := range words {
		fmt.Fprintf(&sed, ` -e "1s/^\(%s\)\([[:space:]]\|$\)/%s: \1\2/I"`, w, rules[w])
	}

	if revRange == "" {
		revRange = "-- --all"
	}

	filter := `msg=$(cat); ` +
		`if printf "%s\n" "$msg" | head -n1 | grep -qE "^[a-z]+(\([a-z0-9-]+\))?!?: "; ` +
		`then printf "%s\n" "$msg"; ` +
		`else printf "%s\n" "$msg" | ` + sed.String() + `; fi`

	return fmt.Sprintf("git filter-branch --msg-filter '%s' %s", filter, revRange)
}
