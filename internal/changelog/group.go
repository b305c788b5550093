package changelog

import (
	"fmt"
	"sort"

	"github.com/ariel-frischer/semrel/internal/commit"
)

// SectionOrder controls the order in which sections are emitted.
type SectionOrder string

const (
	// OrderFirstSeen emits sections in the order their type first occurs in
	// the commit list.
	OrderFirstSeen SectionOrder = "first-seen"
	// OrderCanonical emits sections in the fixed type-table order, with
	// "Other Changes" last.
	OrderCanonical SectionOrder = "canonical"
)

// ParseSectionOrder parses a configured section order. Empty means first-seen.
func ParseSectionOrder(s string) (SectionOrder, error) {
	switch SectionOrder(s) {
	case "", OrderFirstSeen:
		return OrderFirstSeen, nil
	case OrderCanonical:
		return OrderCanonical, nil
	default:
		return "", fmt.Errorf("invalid section order %q (expected: first-seen, canonical)", s)
	}
}

// sectionKey maps every unknown type onto the shared "Other Changes" key.
func sectionKey(t commit.Type) commit.Type {
	if t.Known() {
		return t
	}
	return ""
}

// Build groups commits into sections. The input slice is not modified and
// the returned sections own their commit slices.
func Build(commits []commit.Commit, order SectionOrder) []Section {
	index := make(map[commit.Type]int)
	var sections []Section

	for _, c := range commits {
		key := sectionKey(c.Type)
		i, ok := index[key]
		if !ok {
			i = len(sections)
			index[key] = i
			sections = append(sections, Section{Type: key, Title: key.SectionTitle()})
		}
		sections[i].Commits = append(sections[i].Commits, c)
	}

	if order == OrderCanonical {
		sort.SliceStable(sections, func(i, j int) bool {
			return sections[i].Type.Rank() < sections[j].Type.Rank()
		})
	}

	return sections
}
