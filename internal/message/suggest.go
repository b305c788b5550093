package message

import (
	"strings"
	"unicode/utf8"

	"github.com/ariel-frischer/semrel/internal/commit"
)

// MaxHeaderLength is the header length above which Suggest adds a hint.
const MaxHeaderLength = 72

// Hints reported by Suggest.
const (
	HintNotConventional = "not conventional format"
	HintTooLong         = "message >72 chars"
	HintTrailingPeriod  = "ends with period"
)

// Suggestion is an advisory rewrite of a commit message.
type Suggestion struct {
	Original  string
	Suggested string
	Hints     []string
}

// Changed reports whether the suggestion differs from the original header.
func (s Suggestion) Changed() bool {
	return s.Suggested != strings.TrimSpace(commit.FirstLine(s.Original))
}

// Suggest proposes a conventional header for message. A message that already
// parses with a known type keeps its type, scope and breaking marker and only
// has its subject cleaned; anything else goes through Format.
func Suggest(message string) Suggestion {
	header := strings.TrimSpace(commit.FirstLine(message))
	parsed := commit.Parse(header)

	s := Suggestion{Original: message}
	if parsed.Conventional && parsed.Type.Known() {
		s.Suggested = Compose(parsed.Type, parsed.Scope, parsed.Breaking, CleanSubject(parsed.Subject))
	} else {
		s.Suggested = Format(header, Options{})
	}

	if !parsed.Conventional {
		s.Hints = append(s.Hints, HintNotConventional)
	}
	if utf8.RuneCountInString(header) > MaxHeaderLength {
		s.Hints = append(s.Hints, HintTooLong)
	}
	if strings.HasSuffix(header, ".") {
		s.Hints = append(s.Hints, HintTrailingPeriod)
	}
	return s
}
