package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// VersionFile is a plain text file containing only the version.
type VersionFile struct {
	path string
}

// NewVersionFile returns a manifest for the version file at path.
func NewVersionFile(path string) *VersionFile {
	return &VersionFile{path: path}
}

func (v *VersionFile) Path() string { return v.path }

func (v *VersionFile) Version() (string, error) {
	data, err := os.ReadFile(v.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", notFound(v.path)
		}
		return "", fmt.Errorf("reading %s: %w", v.path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// SetVersion replaces the file content, creating it if needed.
func (v *VersionFile) SetVersion(version string) error {
	if err := os.WriteFile(v.path, []byte(version+"\n"), filePerm(v.path)); err != nil {
		return fmt.Errorf("writing %s: %w", v.path, err)
	}
	logDebug("[manifest] set %s version to %s", v.path, version)
	return nil
}
