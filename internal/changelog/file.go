package changelog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Placement controls where a new release is written in an existing file.
type Placement string

const (
	// PlacementAppend writes the release at the end of the file.
	PlacementAppend Placement = "append"
	// PlacementPrepend writes the release directly under the title line.
	PlacementPrepend Placement = "prepend"
)

// DefaultTitle is written at the top of a new changelog file.
const DefaultTitle = "# Changelog"

// FileOptions configures WriteRelease.
type FileOptions struct {
	// Title is written at the top of a missing or empty file (default: DefaultTitle).
	Title     string
	Placement Placement
}

// Read returns the content of the changelog at path. A missing file reads as
// empty content.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading changelog %s: %w", path, err)
	}
	return string(data), nil
}

// WriteRelease adds rendered release notes to the changelog at path.
// Existing content is never merged or deduplicated, so repeated runs
// accumulate entries.
func WriteRelease(path, rendered string, opts FileOptions) error {
	existing, err := Read(path)
	if err != nil {
		return err
	}

	content := Insert(existing, rendered, opts)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating changelog directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing changelog %s: %w", path, err)
	}
	return nil
}

// AppendRelease appends rendered release notes to the end of the changelog
// at path, creating it with the default title if needed.
func AppendRelease(path, rendered string) error {
	return WriteRelease(path, rendered, FileOptions{Placement: PlacementAppend})
}

// Insert returns existing with rendered added according to opts.
func Insert(existing, rendered string, opts FileOptions) string {
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}
	rendered = strings.TrimRight(rendered, "\n") + "\n"

	if strings.TrimSpace(existing) == "" {
		return title + "\n\n" + rendered
	}

	if opts.Placement == PlacementPrepend {
		return prepend(existing, rendered)
	}
	return strings.TrimRight(existing, "\n") + "\n\n" + rendered
}

// prepend inserts rendered after a leading "# " title line and the blank
// lines following it, or at the very top when there is no title.
func prepend(existing, rendered string) string {
	if !strings.HasPrefix(existing, "# ") {
		return rendered + "\n" + existing
	}

	end := strings.IndexByte(existing, '\n')
	if end < 0 {
		return existing + "\n\n" + rendered
	}
	head := existing[:end+1]
	rest := strings.TrimLeft(existing[end+1:], "\n")
	if rest == "" {
		return head + "\n" + rendered
	}
	return head + "\n" + rendered + "\n" + rest
}
