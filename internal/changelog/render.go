package changelog

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ariel-frischer/semrel/internal/commit"
)

// Render returns the Markdown for a single release.
//
// The output is deterministic: given the same ReleaseInfo it produces
// identical text. A release with no sections renders as the header only.
func Render(info ReleaseInfo) string {
	var b strings.Builder
	// strings.Builder never returns a write error.
	_ = RenderTo(info, &b)
	return b.String()
}

// RenderTo writes the Markdown for a single release to w.
func RenderTo(info ReleaseInfo, w io.Writer) error {
	if err := renderHeader(info, w); err != nil {
		return fmt.Errorf("rendering header: %w", err)
	}

	if err := renderBreaking(info.Breaking(), w); err != nil {
		return fmt.Errorf("rendering breaking changes: %w", err)
	}

	for _, s := range info.Sections {
		if len(s.Commits) == 0 {
			continue
		}
		if err := renderSection(s, w); err != nil {
			return fmt.Errorf("rendering section %s: %w", s.Title, err)
		}
	}

	if err := renderContributors(info.Contributors(), w); err != nil {
		return fmt.Errorf("rendering contributors: %w", err)
	}

	return nil
}

// FormatHeader formats the version header line.
func FormatHeader(info ReleaseInfo) string {
	return fmt.Sprintf("## [%s] - %s (%s RELEASE)", info.Version, info.Date, strings.ToUpper(info.Type.String()))
}

func renderHeader(info ReleaseInfo, w io.Writer) error {
	_, err := io.WriteString(w, FormatHeader(info)+"\n\n")
	return err
}

// renderBreaking writes the breaking-changes block, or nothing when there
// are no breaking commits.
func renderBreaking(breaking []commit.Commit, w io.Writer) error {
	if len(breaking) == 0 {
		return nil
	}

	if _, err := io.WriteString(w, "### ⚠ BREAKING CHANGES\n\n"); err != nil {
		return err
	}
	for _, c := range breaking {
		if _, err := io.WriteString(w, formatBreakingBullet(c)+"\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func renderSection(s Section, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "### %s\n\n", s.Title); err != nil {
		return err
	}
	for _, c := range sortByDateDesc(s.Commits) {
		if _, err := io.WriteString(w, formatBullet(c)+"\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func renderContributors(authors []string, w io.Writer) error {
	if len(authors) == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "### 👥 Contributors\n\nThanks to %s for contributing to this release!\n\n",
		strings.Join(authors, ", "))
	return err
}

// formatBullet formats a section entry: "- **scope:** subject (hash)".
func formatBullet(c commit.Commit) string {
	if c.Scope == "" {
		return fmt.Sprintf("- %s (%s)", c.Subject, c.Hash)
	}
	return fmt.Sprintf("- **%s:** %s (%s)", c.Scope, c.Subject, c.Hash)
}

// formatBreakingBullet formats a breaking entry: "- **scope: subject** (hash)".
func formatBreakingBullet(c commit.Commit) string {
	text := c.Subject
	if c.Scope != "" {
		text = c.Scope + ": " + c.Subject
	}
	return fmt.Sprintf("- **%s** (%s)", text, c.Hash)
}

// sortByDateDesc returns a copy of commits ordered most recent first.
// Commits sharing a date keep their relative order.
func sortByDateDesc(commits []commit.Commit) []commit.Commit {
	sorted := make([]commit.Commit, len(commits))
	copy(sorted, commits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}
