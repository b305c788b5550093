package message

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ariel-frischer/semrel/internal/commit"
)

// Options overrides the inferred parts of a formatted message.
type Options struct {
	Type     commit.Type
	Scope    string
	Breaking bool
	// NoScope keeps the header unscoped: an inline "(word)" stays in the
	// subject and no scope is inferred. Ignored when Scope is set.
	NoScope bool
}

// knownScopes is checked in order when no scope is given or written in
// parentheses.
var knownScopes = []string{
	"auth", "api", "ui", "cli", "docs", "test", "build", "ci", "deps", "config",
	"types", "utils", "core", "server", "client", "database", "cache", "logging",
	"monitoring", "security",
}

// parenScopePattern finds an inline "(scope)" in free text.
var parenScopePattern = regexp.MustCompile(`\(([\w-]+)\)`)

// Format builds a conventional header from free text. Fields set in opts
// take precedence over inferred ones. Only the first line of message is used.
func Format(message string, opts Options) string {
	text := strings.TrimSpace(commit.FirstLine(message))

	typ := opts.Type
	if typ == "" {
		typ = SuggestType(text)
	}

	scope := opts.Scope
	if scope == "" && !opts.NoScope {
		if m := parenScopePattern.FindStringSubmatchIndex(text); m != nil {
			scope = text[m[2]:m[3]]
			text = strings.Join(strings.Fields(text[:m[0]]+" "+text[m[1]:]), " ")
		} else {
			scope = InferScope(text)
		}
	}

	return Compose(typ, scope, opts.Breaking, CleanSubject(text))
}

// Compose assembles "type(scope)!: subject". Empty scope drops the
// parentheses.
func Compose(typ commit.Type, scope string, breaking bool, subject string) string {
	var b strings.Builder
	b.WriteString(string(typ))
	if scope != "" {
		b.WriteString("(" + scope + ")")
	}
	if breaking {
		b.WriteString("!")
	}
	b.WriteString(": ")
	b.WriteString(subject)
	return b.String()
}

// SuggestType scans every word of message, not just the first, against the
// legacy keyword table. Matches are case-insensitive and whole-word.
// Defaults to chore.
func SuggestType(message string) commit.Type {
	return commit.ClassifyAny(words(message))
}

// InferScope returns the first entry of the known scope list that appears in
// message as a whole word, or "".
func InferScope(message string) string {
	set := wordSet(message)
	for _, s := range knownScopes {
		if set[s] {
			return s
		}
	}
	return ""
}

// CleanSubject trims s, strips one trailing period, lowercases it and
// uppercases the first character.
func CleanSubject(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ".")
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func wordSet(s string) map[string]bool {
	fields := words(s)
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}
