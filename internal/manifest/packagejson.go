package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// versionFieldPattern matches the first "version": "..." pair.
var versionFieldPattern = regexp.MustCompile(`("version"\s*:\s*")([^"]*)(")`)

// PackageJSON is an npm package.json manifest.
type PackageJSON struct {
	path string
}

// NewPackageJSON returns a manifest for the package.json at path.
func NewPackageJSON(path string) *PackageJSON {
	return &PackageJSON{path: path}
}

func (p *PackageJSON) Path() string { return p.path }

// Version returns the top-level "version" field.
func (p *PackageJSON) Version() (string, error) {
	if _, err := os.Stat(p.path); errors.Is(err, fs.ErrNotExist) {
		return "", notFound(p.path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(p.path), json.Parser()); err != nil {
		return "", fmt.Errorf("parsing %s: %w", p.path, err)
	}
	return k.String("version"), nil
}

// SetVersion rewrites the version field in place. The file must already
// contain a version field.
func (p *PackageJSON) SetVersion(version string) error {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return notFound(p.path)
		}
		return fmt.Errorf("reading %s: %w", p.path, err)
	}

	loc := versionFieldPattern.FindSubmatchIndex(data)
	if loc == nil {
		return fmt.Errorf("no version field in %s", p.path)
	}

	out := make([]byte, 0, len(data)+len(version))
	out = append(out, data[:loc[4]]...)
	out = append(out, version...)
	out = append(out, data[loc[5]:]...)

	if err := os.WriteFile(p.path, out, filePerm(p.path)); err != nil {
		return fmt.Errorf("writing %s: %w", p.path, err)
	}
	logDebug("[manifest] set %s version to %s", p.path, version)
	return nil
}

func filePerm(path string) fs.FileMode {
	if info, err := os.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return 0o644
}
