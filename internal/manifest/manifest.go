// Package manifest reads and writes the project's current version.
//
// Two formats are supported: an npm style package.json, whose top-level
// "version" field is rewritten in place so the rest of the file keeps its
// formatting, and a plain VERSION file holding nothing but the version.
package manifest

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when the manifest file does not exist.
var ErrNotFound = errors.New("manifest not found")

// DefaultVersion is used when neither a manifest nor a tag provides one.
const DefaultVersion = "0.0.0"

// Manifest stores the project's current version.
type Manifest interface {
	Version() (string, error)
	SetVersion(version string) error
	Path() string
}

// TagLookup finds the latest version tag.
type TagLookup interface {
	LatestTag(prefix string) (string, error)
}

// debugLogger is a function that logs debug messages when debug mode is enabled.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for manifest operations.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// ForPath picks the implementation from the file name: *.json files are
// treated as package.json, anything else as a plain version file.
func ForPath(path string) Manifest {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return &PackageJSON{path: path}
	}
	return &VersionFile{path: path}
}

// Source describes where CurrentVersion found the version.
type Source string

const (
	SourceManifest Source = "manifest"
	SourceTag      Source = "tag"
	SourceDefault  Source = "default"
)

// CurrentVersion returns the manifest version. When the manifest is missing
// or has no version it falls back to the latest tag (prefix stripped) and
// then to DefaultVersion. tags may be nil.
func CurrentVersion(m Manifest, tags TagLookup, prefix string) (string, Source, error) {
	if m != nil {
		v, err := m.Version()
		switch {
		case err == nil && v != "":
			logDebug("[manifest] version %s from %s", v, m.Path())
			return v, SourceManifest, nil
		case err != nil && !errors.Is(err, ErrNotFound):
			return "", "", err
		}
	}

	if tags != nil {
		tag, err := tags.LatestTag(prefix)
		if err == nil {
			logDebug("[manifest] version from tag %s", tag)
			return strings.TrimPrefix(tag, prefix), SourceTag, nil
		}
		logDebug("[manifest] no tag version: %v", err)
	}

	return DefaultVersion, SourceDefault, nil
}

func notFound(path string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, path)
}
