package commit

import (
	"regexp"
	"strings"
)

// headerPattern matches a conventional commit header: type(scope)!: subject
var headerPattern = regexp.MustCompile(`^(\w+)(?:\(([\w-]+)\))?(!)?: (.*)$`)

// breakingFooterPattern matches a BREAKING CHANGE footer at the start of a body line.
var breakingFooterPattern = regexp.MustCompile(`(?m)^BREAKING[ -]CHANGE: `)

// Parsed is the result of classifying a single commit message.
type Parsed struct {
	Type     Type
	Scope    string
	Breaking bool
	Subject  string
	// Conventional is true when the message matched the header grammar
	// rather than falling back to keyword classification.
	Conventional bool
}

// keywordRules maps a lowercase leading word to a commit type. Rules are
// evaluated in order.
var keywordRules = []struct {
	typ   Type
	words []string
}{
	{TypeFeat, []string{"add", "new", "create", "implement"}},
	{TypeFix, []string{"fix", "bug", "issue", "problem"}},
	{TypeChore, []string{"update", "upgrade", "bump"}},
	{TypeRefactor, []string{"refactor", "clean", "improve"}},
	{TypeTest, []string{"test", "spec"}},
	{TypeDocs, []string{"doc", "readme", "comment"}},
}

// Parse classifies a commit message. Only the first line is inspected.
// Messages that do not match the conventional grammar are classified by
// their first word; the whole trimmed line becomes the subject.
func Parse(message string) Parsed {
	header := FirstLine(message)

	if m := headerPattern.FindStringSubmatch(header); m != nil {
		return Parsed{
			Type:         Type(m[1]),
			Scope:        m[2],
			Breaking:     m[3] == "!",
			Subject:      strings.TrimSpace(m[4]),
			Conventional: true,
		}
	}

	subject := strings.TrimSpace(header)
	return Parsed{
		Type:    Classify(FirstWord(subject)),
		Subject: subject,
	}
}

// IsConventional reports whether the message header matches the grammar.
func IsConventional(message string) bool {
	return headerPattern.MatchString(FirstLine(message))
}

// Classify maps a single word to a commit type using the legacy keyword
// table. Matching is case-insensitive; unmatched words map to chore.
func Classify(word string) Type {
	word = strings.ToLower(word)
	for _, rule := range keywordRules {
		for _, w := range rule.words {
			if w == word {
				return rule.typ
			}
		}
	}
	return TypeChore
}

// ClassifyAny applies the legacy keyword table to every word at once. The
// first rule, in table order, with a keyword among words wins; chore
// otherwise.
func ClassifyAny(words []string) Type {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = true
	}
	for _, rule := range keywordRules {
		for _, w := range rule.words {
			if set[w] {
				return rule.typ
			}
		}
	}
	return TypeChore
}

// HasBreakingFooter reports whether a commit body carries a
// "BREAKING CHANGE:" or "BREAKING-CHANGE:" footer.
func HasBreakingFooter(body string) bool {
	return breakingFooterPattern.MatchString(body)
}

// FirstLine returns the message up to the first newline, without a trailing
// carriage return.
func FirstLine(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		message = message[:i]
	}
	return strings.TrimRight(message, "\r")
}

// FirstWord returns the lowercase first whitespace-delimited token of s, or
// an empty string if s has no tokens.
func FirstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}
