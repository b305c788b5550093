package migrate

import (
	"sort"
	"strings"

	"github.com/ariel-frischer/semrel/internal/commit"
)

// maxExamples is the number of example messages kept per pattern.
const maxExamples = 3

// Pattern groups legacy messages that share a leading word.
type Pattern struct {
	Pattern       string      `yaml:"pattern"`
	Count         int         `yaml:"count"`
	Examples      []string    `yaml:"examples"`
	SuggestedType commit.Type `yaml:"suggested_type"`
}

// SplitByConvention partitions commits into conventional and legacy
// commits, preserving order within each group.
func SplitByConvention(commits []commit.Commit) (conventional, legacy []commit.Commit) {
	for _, c := range commits {
		if c.Conventional {
			conventional = append(conventional, c)
		} else {
			legacy = append(legacy, c)
		}
	}
	return conventional, legacy
}

// FilterLegacy returns only the legacy commits.
func FilterLegacy(commits []commit.Commit) []commit.Commit {
	_, legacy := SplitByConvention(commits)
	return legacy
}

// Analyze groups legacy commits by their lowercase first word. Patterns are
// sorted by count, most frequent first; equal counts keep the order in which
// the pattern was first encountered.
func Analyze(legacy []commit.Commit) []Pattern {
	index := make(map[string]int)
	var patterns []Pattern

	for _, c := range legacy {
		msg := message(c)
		word := commit.FirstWord(msg)

		i, ok := index[word]
		if !ok {
			i = len(patterns)
			index[word] = i
			patterns = append(patterns, Pattern{Pattern: word})
		}

		p := &patterns[i]
		p.Count++
		if len(p.Examples) < maxExamples {
			p.Examples = append(p.Examples, msg)
		}
		p.SuggestedType = commit.Classify(word)
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].Count > patterns[j].Count
	})
	return patterns
}

// message returns the original header of c, falling back to its subject
// for commits constructed without one.
func message(c commit.Commit) string {
	if c.Raw != "" {
		return strings.TrimSpace(c.Raw)
	}
	return c.Subject
}
