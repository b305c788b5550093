package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const packageJSON = `{
  "name": "demo",
  "version": "1.2.3",
  "dependencies": {
    "left-pad": "^1.0.0"
  }
}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPackageJSON(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "package.json", packageJSON)
	m := NewPackageJSON(path)

	v, err := m.Version()
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", v)

	require.NoError(t, m.SetVersion("2.0.0"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{
  "name": "demo",
  "version": "2.0.0",
  "dependencies": {
    "left-pad": "^1.0.0"
  }
}
`, string(data))
}

func TestPackageJSON_Errors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content string
		create  bool
		op      func(m *PackageJSON) error
		wantNF  bool
	}{
		"missing file version": {
			op:     func(m *PackageJSON) error { _, err := m.Version(); return err },
			wantNF: true,
		},
		"missing file set": {
			op:     func(m *PackageJSON) error { return m.SetVersion("1.0.0") },
			wantNF: true,
		},
		"invalid json": {
			content: "{not json",
			create:  true,
			op:      func(m *PackageJSON) error { _, err := m.Version(); return err },
		},
		"no version field": {
			content: `{"name": "x"}`,
			create:  true,
			op:      func(m *PackageJSON) error { return m.SetVersion("1.0.0") },
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "package.json")
			if tt.create {
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			}

			err := tt.op(NewPackageJSON(path))
			require.Error(t, err)
			assert.Equal(t, tt.wantNF, errors.Is(err, ErrNotFound))
		})
	}
}

func TestVersionFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "VERSION", "0.4.1\n")
	m := NewVersionFile(path)

	v, err := m.Version()
	require.NoError(t, err)
	assert.Equal(t, "0.4.1", v)

	require.NoError(t, m.SetVersion("0.5.0"))
	v, err = m.Version()
	require.NoError(t, err)
	assert.Equal(t, "0.5.0", v)
}

func TestForPath(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &PackageJSON{}, ForPath("package.json"))
	assert.IsType(t, &PackageJSON{}, ForPath("sub/Package.JSON"))
	assert.IsType(t, &VersionFile{}, ForPath("VERSION"))
}

type fakeTags struct {
	tag string
	err error
}

func (f fakeTags) LatestTag(string) (string, error) { return f.tag, f.err }

func TestCurrentVersion(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	present := filepath.Join(dir, "VERSION")
	require.NoError(t, os.WriteFile(present, []byte("3.1.4\n"), 0o644))
	missing := filepath.Join(dir, "missing.json")

	tests := map[string]struct {
		manifest   Manifest
		tags       TagLookup
		want       string
		wantSource Source
	}{
		"manifest wins": {
			manifest:   NewVersionFile(present),
			tags:       fakeTags{tag: "v9.0.0"},
			want:       "3.1.4",
			wantSource: SourceManifest,
		},
		"falls back to tag": {
			manifest:   NewPackageJSON(missing),
			tags:       fakeTags{tag: "v1.4.0"},
			want:       "1.4.0",
			wantSource: SourceTag,
		},
		"falls back to default": {
			manifest:   NewPackageJSON(missing),
			tags:       fakeTags{err: errors.New("no tags")},
			want:       DefaultVersion,
			wantSource: SourceDefault,
		},
		"nil inputs": {
			want:       DefaultVersion,
			wantSource: SourceDefault,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, source, err := CurrentVersion(tt.manifest, tt.tags, "v")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSource, source)
		})
	}
}
