package changelog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ariel-frischer/semrel/internal/commit"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// impactColors maps a commit type's version impact to its terminal color.
var impactColors = map[commit.Impact]*color.Color{
	commit.ImpactMinor: color.New(color.FgGreen),
	commit.ImpactPatch: color.New(color.FgYellow),
	commit.ImpactNone:  color.New(color.FgBlue),
}

var (
	breakingColor = color.New(color.FgRed, color.Bold)
	hashColor     = color.New(color.Faint)
)

// FormatOptions controls the terminal output formatting.
type FormatOptions struct {
	Plain    bool // Disable colors
	MaxWidth int  // Maximum line width (0 = auto-detect)
}

// FormatTerminal writes a preview of the release to w for dry runs.
// Sections are color-coded by version impact and long subjects are wrapped.
func FormatTerminal(info ReleaseInfo, w io.Writer, opts FormatOptions) error {
	width := resolveWidth(opts.MaxWidth)

	if err := writeReleaseHeader(info, w, opts); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	if info.IsEmpty() {
		_, err := fmt.Fprintln(w, "\nNo commits found for this release.")
		return err
	}

	if breaking := info.Breaking(); len(breaking) > 0 {
		if err := writeGroup("⚠ BREAKING CHANGES", breaking, breakingColor, w, opts, width); err != nil {
			return err
		}
	}

	for _, s := range info.Sections {
		if len(s.Commits) == 0 {
			continue
		}
		c := impactColors[s.Type.Meta().Impact]
		if err := writeGroup(s.Title, sortByDateDesc(s.Commits), c, w, opts, width); err != nil {
			return fmt.Errorf("formatting section %s: %w", s.Title, err)
		}
	}

	if authors := info.Contributors(); len(authors) > 0 {
		_, err := fmt.Fprintf(w, "\nContributors: %s\n", strings.Join(authors, ", "))
		return err
	}
	return nil
}

// writeReleaseHeader writes the version line.
func writeReleaseHeader(info ReleaseInfo, w io.Writer, opts FormatOptions) error {
	header := fmt.Sprintf("v%s (%s) %s release", info.Version, info.Date, info.Type)
	if opts.Plain {
		_, err := fmt.Fprintf(w, "## %s\n", header)
		return err
	}

	bold := color.New(color.Bold).SprintFunc()
	_, err := fmt.Fprintf(w, "## %s\n", bold(header))
	return err
}

// writeGroup writes a titled list of commits.
func writeGroup(title string, commits []commit.Commit, c *color.Color, w io.Writer, opts FormatOptions, width int) error {
	if opts.Plain {
		if _, err := fmt.Fprintf(w, "\n### %s\n", title); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "\n%s\n", c.Sprint(title)); err != nil {
			return err
		}
	}

	for _, cm := range commits {
		if err := writeEntry(cm, w, opts, width); err != nil {
			return err
		}
	}
	return nil
}

// writeEntry writes a single commit with optional wrapping.
func writeEntry(c commit.Commit, w io.Writer, opts FormatOptions, width int) error {
	prefix := "  - "
	text := c.Subject
	if c.Scope != "" {
		text = c.Scope + ": " + text
	}

	if opts.Plain {
		_, err := fmt.Fprintf(w, "%s%s (%s)\n", prefix, text, c.Hash)
		return err
	}

	wrapped := wrapText(text, width-len(prefix)-len(c.Hash)-3, "    ")
	_, err := fmt.Fprintf(w, "%s%s %s\n", prefix, wrapped, hashColor.Sprintf("(%s)", c.Hash))
	return err
}

// resolveWidth determines the terminal width to use.
func resolveWidth(maxWidth int) int {
	if maxWidth > 0 {
		return maxWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// wrapText wraps text to fit within maxWidth, using indent for continuation lines.
func wrapText(text string, maxWidth int, indent string) string {
	if maxWidth <= 0 || len(text) <= maxWidth {
		return text
	}

	var lines []string
	remaining := text

	for len(remaining) > maxWidth {
		// Find the last space within maxWidth
		breakPoint := maxWidth
		for i := maxWidth - 1; i > 0; i-- {
			if remaining[i] == ' ' {
				breakPoint = i
				break
			}
		}

		lines = append(lines, remaining[:breakPoint])
		remaining = strings.TrimLeft(remaining[breakPoint:], " ")
	}

	if len(remaining) > 0 {
		lines = append(lines, remaining)
	}

	return strings.Join(lines, "\n"+indent)
}
